package calc

// unitFamily groups mutually convertible units, each mapped to its
// multiplicative factor relative to the family's base unit. identityOnly
// families admit no conversion between distinct members.
type unitFamily struct {
	name         string
	identityOnly bool
	factors      map[string]float64
}

// unitFamilies is searched in fixed order; the first family containing both
// units decides the outcome.
var unitFamilies = []unitFamily{
	{
		name: "molar", // base: M
		factors: map[string]float64{
			"M":  1,
			"mM": 1e-3,
			"µM": 1e-6,
			"nM": 1e-9,
			"pM": 1e-12,
		},
	},
	{
		name: "mass/volume", // base: g/mL
		factors: map[string]float64{
			"g/mL":  1,
			"mg/mL": 1e-3,
			"µg/mL": 1e-6,
			"ng/mL": 1e-9,
			"pg/mL": 1e-12,
			"mg/µL": 1,    // 1 mg/µL = 1 g/mL
			"µg/µL": 1e-3, // 1 µg/µL = 1 mg/mL
			"ng/µL": 1e-6, // 1 ng/µL = 1 µg/mL
		},
	},
	{
		name: "activity", // base: U/mL; IU/mL treated as equivalent
		factors: map[string]float64{
			"U/mL":  1,
			"IU/mL": 1,
		},
	},
	{
		name:         "dimensionless", // % and X have no numeric relation
		identityOnly: true,
		factors: map[string]float64{
			"%": 1,
			"X": 1,
		},
	},
}

// ConversionFactor reports the factor that converts a value expressed in
// from into the equivalent value in to. Identical unit strings always
// convert with factor 1, even when neither appears in any family. Distinct
// units convert only within a single family; cross-family pairs and the
// dimensionless pair (% vs X) are incompatible.
func ConversionFactor(from, to string) (float64, bool) {
	if from == to {
		return 1.0, true
	}
	for _, fam := range unitFamilies {
		fromFactor, okFrom := fam.factors[from]
		toFactor, okTo := fam.factors[to]
		if !okFrom || !okTo {
			continue
		}
		if fam.identityOnly {
			return 0, false
		}
		return fromFactor / toFactor, true
	}
	return 0, false
}
