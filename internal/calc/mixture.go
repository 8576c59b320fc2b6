package calc

import (
	"errors"
	"fmt"
)

// MediaComponent is one stock solution added to the media volume.
type MediaComponent struct {
	Name               string `json:"name"`
	StockConcentration any    `json:"stock_concentration"`
	StockUnit          string `json:"stock_unit"`
	Volume             any    `json:"volume"`
	VolumeUnit         string `json:"volume_unit"`
}

// MixtureRequest carries the raw actual-concentration inputs.
type MixtureRequest struct {
	MediaVolume any              `json:"media_volume"`
	Components  []MediaComponent `json:"components"`
}

// ComponentResult is the per-component outcome, in input order.
type ComponentResult struct {
	Name               string  `json:"name"`
	StockConcentration float64 `json:"stock_concentration"`
	StockUnit          string  `json:"stock_unit"`
	VolumeAdded        float64 `json:"volume_added"`
	VolumeUnit         string  `json:"volume_unit"`
	FinalConcentration float64 `json:"final_concentration"`
	FinalVolume        float64 `json:"final_volume"`
}

type MixtureResult struct {
	Success     bool              `json:"success"`
	MediaVolume float64           `json:"media_volume"`
	Results     []ComponentResult `json:"results"`
}

// ActualConcentration computes, for each component, the concentration it
// reaches once its volume is added to the media volume. Component errors
// are reported with the component's 1-based position and abort the whole
// batch; a request never yields partial results.
func ActualConcentration(req MixtureRequest) (*MixtureResult, error) {
	if missing(req.MediaVolume) {
		return nil, errors.New("Media volume is required")
	}
	mediaVolume, ok := parseNumber(req.MediaVolume)
	if !ok {
		return nil, errors.New("Media volume must be a valid number")
	}
	if mediaVolume <= 0 {
		return nil, errors.New("Media volume must be a positive number")
	}
	if mediaVolume > MaxValue {
		return nil, fmt.Errorf("Media volume cannot exceed %g", MaxValue)
	}
	if mediaVolume < MinValue {
		return nil, fmt.Errorf("Media volume cannot be less than %g", MinValue)
	}

	if len(req.Components) == 0 {
		return nil, errors.New("At least one component is required")
	}

	results := make([]ComponentResult, 0, len(req.Components))
	for i, comp := range req.Components {
		idx := i + 1
		if missing(comp.StockConcentration) {
			return nil, fmt.Errorf("Component %d: Stock concentration is required", idx)
		}
		if missing(comp.Volume) {
			return nil, fmt.Errorf("Component %d: Volume is required", idx)
		}

		stockConc, okStock := parseNumber(comp.StockConcentration)
		volume, okVolume := parseNumber(comp.Volume)
		if !okStock || !okVolume {
			return nil, fmt.Errorf("Component %d: Stock concentration and volume must be valid numbers", idx)
		}
		if stockConc <= 0 {
			return nil, fmt.Errorf("Component %d: Stock concentration must be a positive number", idx)
		}
		if volume <= 0 {
			return nil, fmt.Errorf("Component %d: Volume must be a positive number", idx)
		}
		if stockConc > MaxValue || volume > MaxValue {
			return nil, fmt.Errorf("Component %d: Values cannot exceed %g", idx, MaxValue)
		}
		if stockConc < MinValue || volume < MinValue {
			return nil, fmt.Errorf("Component %d: Values cannot be less than %g", idx, MinValue)
		}

		volumeUnit := comp.VolumeUnit
		if volumeUnit == "" {
			volumeUnit = DefaultVolumeUnit
		}
		// Only µL triggers a conversion; any other unit string is taken
		// as milliliters.
		volumeML := volume
		if volumeUnit == "µL" {
			volumeML = volume / 1000.0
		}

		finalVolume := mediaVolume + volumeML
		finalConc := (stockConc * volumeML) / finalVolume

		name := comp.Name
		if name == "" {
			name = fmt.Sprintf("Component %d", idx)
		}

		results = append(results, ComponentResult{
			Name:               name,
			StockConcentration: stockConc,
			StockUnit:          comp.StockUnit,
			VolumeAdded:        volume,
			VolumeUnit:         volumeUnit,
			FinalConcentration: roundTo(finalConc, 6),
			FinalVolume:        roundTo(finalVolume, 4),
		})
	}

	return &MixtureResult{Success: true, MediaVolume: mediaVolume, Results: results}, nil
}
