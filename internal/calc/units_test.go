package calc

import (
	"math"
	"testing"
)

func TestConversionFactor_IdentityAlwaysHolds(t *testing.T) {
	units := []string{"M", "mM", "µM", "nM", "pM", "g/mL", "mg/µL", "U/mL", "%", "X", "parsecs", ""}
	for _, u := range units {
		factor, ok := ConversionFactor(u, u)
		if !ok || factor != 1.0 {
			t.Fatalf("ConversionFactor(%q, %q) = %v, %v, want 1, true", u, u, factor, ok)
		}
	}
}

func TestConversionFactor_WithinFamily(t *testing.T) {
	cases := []struct {
		from, to string
		want     float64
	}{
		{"mM", "µM", 1e3},
		{"µM", "mM", 1e-3},
		{"M", "nM", 1e9},
		{"pM", "M", 1e-12},
		{"mg/mL", "µg/mL", 1e3},
		{"g/mL", "pg/mL", 1e12},
		{"mg/µL", "g/mL", 1},
		{"µg/µL", "mg/mL", 1},
		{"ng/µL", "ng/mL", 1e3},
		{"U/mL", "IU/mL", 1},
		{"IU/mL", "U/mL", 1},
	}
	for _, c := range cases {
		factor, ok := ConversionFactor(c.from, c.to)
		if !ok {
			t.Fatalf("ConversionFactor(%q, %q) reported incompatible", c.from, c.to)
		}
		if math.Abs(factor-c.want) > c.want*1e-12 {
			t.Fatalf("ConversionFactor(%q, %q) = %v, want %v", c.from, c.to, factor, c.want)
		}
	}
}

func TestConversionFactor_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"M", "µM"},
		{"mM", "pM"},
		{"mg/mL", "ng/µL"},
		{"U/mL", "IU/mL"},
	}
	for _, p := range pairs {
		forward, ok1 := ConversionFactor(p[0], p[1])
		backward, ok2 := ConversionFactor(p[1], p[0])
		if !ok1 || !ok2 {
			t.Fatalf("pair %v reported incompatible", p)
		}
		if product := forward * backward; math.Abs(product-1.0) > 1e-12 {
			t.Fatalf("factor(%s,%s) * factor(%s,%s) = %v, want 1", p[0], p[1], p[1], p[0], product)
		}
	}
}

func TestConversionFactor_CrossFamilyIncompatible(t *testing.T) {
	cases := [][2]string{
		{"mM", "mg/mL"},
		{"µg/mL", "µM"},
		{"U/mL", "M"},
		{"%", "mM"},
		{"X", "g/mL"},
		{"mM", "furlongs"},
	}
	for _, c := range cases {
		if _, ok := ConversionFactor(c[0], c[1]); ok {
			t.Fatalf("ConversionFactor(%q, %q) unexpectedly compatible", c[0], c[1])
		}
	}
}

func TestConversionFactor_DimensionlessCrossIncompatible(t *testing.T) {
	if _, ok := ConversionFactor("%", "X"); ok {
		t.Fatal("%% to X should be incompatible")
	}
	if _, ok := ConversionFactor("X", "%"); ok {
		t.Fatal("X to %% should be incompatible")
	}
}
