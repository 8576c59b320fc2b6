package calc

import (
	"errors"
	"fmt"
)

// DilutionRequest carries the raw dilution inputs. Magnitudes stay untyped
// because callers may send them as JSON numbers or numeric strings;
// validation owns the interpretation.
type DilutionRequest struct {
	StockConcentration any    `json:"stock_concentration"`
	FinalConcentration any    `json:"final_concentration"`
	FinalVolume        any    `json:"final_volume"`
	StockUnit          string `json:"stock_unit"`
	FinalUnit          string `json:"final_unit"`
}

// DilutionResult echoes the parsed inputs and units alongside the derived
// volumes so callers can render them without re-deriving anything.
type DilutionResult struct {
	Success                     bool    `json:"success"`
	VolumeStock                 float64 `json:"volume_stock"`
	VolumeSolvent               float64 `json:"volume_solvent"`
	StockConcentration          float64 `json:"stock_concentration"`
	FinalConcentration          float64 `json:"final_concentration"`
	FinalConcentrationConverted float64 `json:"final_concentration_converted"`
	FinalVolume                 float64 `json:"final_volume"`
	StockUnit                   string  `json:"stock_unit"`
	FinalUnit                   string  `json:"final_unit"`
}

// Dilution solves C1V1 = C2V2 for the stock volume needed to reach the
// requested final concentration and volume, converting the final
// concentration into the stock unit first. Validation fails fast: the first
// violated rule becomes the returned error.
func Dilution(req DilutionRequest) (*DilutionResult, error) {
	fields := []struct {
		label string
		value any
	}{
		{"Stock Concentration", req.StockConcentration},
		{"Final Concentration", req.FinalConcentration},
		{"Final Volume", req.FinalVolume},
	}
	for _, f := range fields {
		if missing(f.value) {
			return nil, fmt.Errorf("%s is required", f.label)
		}
	}

	stockConc, okStock := parseNumber(req.StockConcentration)
	finalConc, okFinal := parseNumber(req.FinalConcentration)
	finalVolume, okVolume := parseNumber(req.FinalVolume)
	if !okStock || !okFinal || !okVolume {
		return nil, errors.New("All concentration and volume values must be valid numbers")
	}

	if stockConc <= 0 {
		return nil, errors.New("Stock concentration must be a positive number")
	}
	if finalConc <= 0 {
		return nil, errors.New("Final concentration must be a positive number")
	}
	if finalVolume <= 0 {
		return nil, errors.New("Final volume must be a positive number")
	}

	if stockConc > MaxValue || finalConc > MaxValue || finalVolume > MaxValue {
		return nil, fmt.Errorf("Values cannot exceed %g", MaxValue)
	}
	if stockConc < MinValue || finalConc < MinValue || finalVolume < MinValue {
		return nil, fmt.Errorf("Values cannot be less than %g", MinValue)
	}

	stockUnit := req.StockUnit
	if stockUnit == "" {
		stockUnit = DefaultConcentrationUnit
	}
	finalUnit := req.FinalUnit
	if finalUnit == "" {
		finalUnit = DefaultConcentrationUnit
	}

	factor, ok := ConversionFactor(finalUnit, stockUnit)
	if !ok {
		return nil, fmt.Errorf("Cannot convert between %s and %s. Units must be compatible (e.g., both molar or both mass/volume).", finalUnit, stockUnit)
	}

	finalConcConverted := finalConc * factor
	if finalConcConverted > stockConc {
		return nil, fmt.Errorf("Final concentration (%s %s) cannot exceed stock concentration (%s %s) - cannot concentrate by dilution",
			formatNumber(finalConc), finalUnit, formatNumber(stockConc), stockUnit)
	}

	volumeStock := (finalConcConverted * finalVolume) / stockConc
	volumeSolvent := finalVolume - volumeStock

	return &DilutionResult{
		Success:                     true,
		VolumeStock:                 roundTo(volumeStock, 6),
		VolumeSolvent:               roundTo(volumeSolvent, 6),
		StockConcentration:          stockConc,
		FinalConcentration:          finalConc,
		FinalConcentrationConverted: roundTo(finalConcConverted, 6),
		FinalVolume:                 finalVolume,
		StockUnit:                   stockUnit,
		FinalUnit:                   finalUnit,
	}, nil
}
