package calc

import (
	"fmt"
	"testing"
)

func TestActualConcentration_SingleComponent(t *testing.T) {
	res, err := ActualConcentration(MixtureRequest{
		MediaVolume: 10.0,
		Components: []MediaComponent{
			{Name: "Glucose", StockConcentration: 100.0, StockUnit: "mM", Volume: 1.0, VolumeUnit: "mL"},
		},
	})
	if err != nil {
		t.Fatalf("ActualConcentration: %v", err)
	}
	if !res.Success {
		t.Fatal("success flag not set")
	}
	if res.MediaVolume != 10.0 {
		t.Fatalf("media_volume = %v, want 10", res.MediaVolume)
	}
	if len(res.Results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(res.Results))
	}
	got := res.Results[0]
	// 100 mM * 1 mL into 11 mL total = 9.090909 mM.
	if !almostEqual(got.FinalConcentration, 9.090909, 1e-5) {
		t.Fatalf("final_concentration = %v, want 9.090909", got.FinalConcentration)
	}
	if got.FinalVolume != 11.0 {
		t.Fatalf("final_volume = %v, want 11", got.FinalVolume)
	}
	if got.Name != "Glucose" || got.StockUnit != "mM" || got.VolumeUnit != "mL" {
		t.Fatalf("component echo wrong: %+v", got)
	}
	if got.StockConcentration != 100.0 || got.VolumeAdded != 1.0 {
		t.Fatalf("inputs not echoed: %+v", got)
	}
}

func TestActualConcentration_MicroliterVolume(t *testing.T) {
	res, err := ActualConcentration(MixtureRequest{
		MediaVolume: 10.0,
		Components: []MediaComponent{
			{Name: "Drug A", StockConcentration: 1000.0, StockUnit: "µM", Volume: 100.0, VolumeUnit: "µL"},
		},
	})
	if err != nil {
		t.Fatalf("ActualConcentration: %v", err)
	}
	got := res.Results[0]
	// 100 µL = 0.1 mL, so 1000 µM * 0.1 / 10.1 = 9.90099 µM.
	if !almostEqual(got.FinalConcentration, 9.90099, 1e-4) {
		t.Fatalf("final_concentration = %v, want 9.90099", got.FinalConcentration)
	}
	if !almostEqual(got.FinalVolume, 10.1, 1e-9) {
		t.Fatalf("final_volume = %v, want 10.1", got.FinalVolume)
	}
	if got.VolumeAdded != 100.0 {
		t.Fatalf("volume_added = %v, want the magnitude as entered", got.VolumeAdded)
	}
}

func TestActualConcentration_UnknownVolumeUnitTreatedAsMilliliters(t *testing.T) {
	res, err := ActualConcentration(MixtureRequest{
		MediaVolume: 10.0,
		Components: []MediaComponent{
			{Name: "Serum", StockConcentration: 50.0, Volume: 1.0, VolumeUnit: "L"},
		},
	})
	if err != nil {
		t.Fatalf("ActualConcentration: %v", err)
	}
	if res.Results[0].FinalVolume != 11.0 {
		t.Fatalf("final_volume = %v, want 11 (non-µL units pass through)", res.Results[0].FinalVolume)
	}
}

func TestActualConcentration_MultipleComponents(t *testing.T) {
	res, err := ActualConcentration(MixtureRequest{
		MediaVolume: 100.0,
		Components: []MediaComponent{
			{Name: "FBS", StockConcentration: 100.0, StockUnit: "%", Volume: 10.0, VolumeUnit: "mL"},
			{Name: "Pen-Strep", StockConcentration: 100.0, StockUnit: "X", Volume: 1.0, VolumeUnit: "mL"},
			{StockConcentration: 1000.0, StockUnit: "µg/mL", Volume: 0.5, VolumeUnit: "mL"},
		},
	})
	if err != nil {
		t.Fatalf("ActualConcentration: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(res.Results))
	}
	if res.Results[0].Name != "FBS" || res.Results[1].Name != "Pen-Strep" {
		t.Fatalf("component order not preserved: %+v", res.Results)
	}
	if res.Results[2].Name != "Component 3" {
		t.Fatalf("default name = %q, want %q", res.Results[2].Name, "Component 3")
	}
	// Each component is computed against its own total, not a shared one.
	if !almostEqual(res.Results[0].FinalVolume, 110.0, 1e-9) {
		t.Fatalf("first final_volume = %v, want 110", res.Results[0].FinalVolume)
	}
	if !almostEqual(res.Results[1].FinalVolume, 101.0, 1e-9) {
		t.Fatalf("second final_volume = %v, want 101", res.Results[1].FinalVolume)
	}
}

func TestActualConcentration_DefaultsForOptionalFields(t *testing.T) {
	res, err := ActualConcentration(MixtureRequest{
		MediaVolume: 5.0,
		Components: []MediaComponent{
			{StockConcentration: 10.0, Volume: 1.0},
		},
	})
	if err != nil {
		t.Fatalf("ActualConcentration: %v", err)
	}
	got := res.Results[0]
	if got.Name != "Component 1" {
		t.Fatalf("name = %q, want %q", got.Name, "Component 1")
	}
	if got.StockUnit != "" {
		t.Fatalf("stock_unit = %q, want empty", got.StockUnit)
	}
	if got.VolumeUnit != "mL" {
		t.Fatalf("volume_unit = %q, want mL", got.VolumeUnit)
	}
}

func TestActualConcentration_MediaVolumeValidation(t *testing.T) {
	component := []MediaComponent{{StockConcentration: 10.0, Volume: 1.0}}
	cases := []struct {
		media any
		want  string
	}{
		{nil, "Media volume is required"},
		{"", "Media volume is required"},
		{"abc", "Media volume must be a valid number"},
		{0.0, "Media volume must be a positive number"},
		{-5.0, "Media volume must be a positive number"},
		{1e15, fmt.Sprintf("Media volume cannot exceed %g", MaxValue)},
		{1e-15, fmt.Sprintf("Media volume cannot be less than %g", MinValue)},
	}
	for _, c := range cases {
		_, err := ActualConcentration(MixtureRequest{MediaVolume: c.media, Components: component})
		if err == nil || err.Error() != c.want {
			t.Fatalf("media %v: error = %v, want %q", c.media, err, c.want)
		}
	}
}

func TestActualConcentration_ComponentsRequired(t *testing.T) {
	want := "At least one component is required"
	for _, components := range [][]MediaComponent{nil, {}} {
		_, err := ActualConcentration(MixtureRequest{MediaVolume: 10.0, Components: components})
		if err == nil || err.Error() != want {
			t.Fatalf("error = %v, want %q", err, want)
		}
	}
}

func TestActualConcentration_ComponentValidation(t *testing.T) {
	cases := []struct {
		component MediaComponent
		want      string
	}{
		{MediaComponent{Volume: 1.0}, "Component 1: Stock concentration is required"},
		{MediaComponent{StockConcentration: 10.0}, "Component 1: Volume is required"},
		{MediaComponent{StockConcentration: "abc", Volume: 1.0}, "Component 1: Stock concentration and volume must be valid numbers"},
		{MediaComponent{StockConcentration: 10.0, Volume: "xyz"}, "Component 1: Stock concentration and volume must be valid numbers"},
		{MediaComponent{StockConcentration: 0.0, Volume: 1.0}, "Component 1: Stock concentration must be a positive number"},
		{MediaComponent{StockConcentration: 10.0, Volume: -1.0}, "Component 1: Volume must be a positive number"},
		{MediaComponent{StockConcentration: 1e15, Volume: 1.0}, fmt.Sprintf("Component 1: Values cannot exceed %g", MaxValue)},
		{MediaComponent{StockConcentration: 1e-15, Volume: 1.0}, fmt.Sprintf("Component 1: Values cannot be less than %g", MinValue)},
	}
	for _, c := range cases {
		_, err := ActualConcentration(MixtureRequest{
			MediaVolume: 10.0,
			Components:  []MediaComponent{c.component},
		})
		if err == nil || err.Error() != c.want {
			t.Fatalf("component %+v: error = %v, want %q", c.component, err, c.want)
		}
	}
}

func TestActualConcentration_ErrorNamesOffendingComponent(t *testing.T) {
	_, err := ActualConcentration(MixtureRequest{
		MediaVolume: 10.0,
		Components: []MediaComponent{
			{StockConcentration: 10.0, Volume: 1.0},
			{Volume: 1.0},
		},
	})
	want := "Component 2: Stock concentration is required"
	if err == nil || err.Error() != want {
		t.Fatalf("error = %v, want %q", err, want)
	}
}

func TestActualConcentration_NumericStrings(t *testing.T) {
	res, err := ActualConcentration(MixtureRequest{
		MediaVolume: "10",
		Components: []MediaComponent{
			{StockConcentration: "100", Volume: "1"},
		},
	})
	if err != nil {
		t.Fatalf("ActualConcentration: %v", err)
	}
	if res.MediaVolume != 10.0 || res.Results[0].VolumeAdded != 1.0 {
		t.Fatalf("string inputs not parsed: %+v", res)
	}
}
