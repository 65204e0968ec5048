// Package params holds the fixed AGA8 DETAIL parameter tables: the 21 pure
// fluids, the binary interaction pairs, the 58 equation terms, and the
// composition independent tables derived from them.
package params

import (
	"fmt"
	"strings"
)

const (
	NumComponents = 21
	NumTerms      = 58

	// Terms [0, NumVirialTerms) carry a second virial contribution and terms
	// [FirstExpTerm, NumTerms) carry an exponential density contribution.
	NumVirialTerms = 18
	FirstExpTerm   = 12

	R       = 8.31451 // J/(mol K)
	Epsilon = 1e-15
)

// Component indexes the composition vector. The order is part of the model
// definition and must not change.
type Component int

const (
	Methane Component = iota
	Nitrogen
	CarbonDioxide
	Ethane
	Propane
	Isobutane
	NButane
	Isopentane
	NPentane
	Hexane
	Heptane
	Octane
	Nonane
	Decane
	Hydrogen
	Oxygen
	CarbonMonoxide
	Water
	HydrogenSulfide
	Helium
	Argon
)

var componentNames = [NumComponents]string{
	"Methane", "Nitrogen", "Carbon dioxide", "Ethane", "Propane",
	"Isobutane", "n-Butane", "Isopentane", "n-Pentane", "Hexane",
	"Heptane", "Octane", "Nonane", "Decane", "Hydrogen",
	"Oxygen", "Carbon monoxide", "Water", "Hydrogen sulfide", "Helium",
	"Argon",
}

var componentAliases = map[string]Component{
	"c1": Methane, "ch4": Methane,
	"n2":  Nitrogen,
	"co2": CarbonDioxide, "carbondioxide": CarbonDioxide,
	"c2": Ethane, "c2h6": Ethane,
	"c3": Propane, "c3h8": Propane,
	"ic4": Isobutane, "i-butane": Isobutane,
	"nc4": NButane, "nbutane": NButane, "butane": NButane,
	"ic5": Isopentane, "i-pentane": Isopentane,
	"nc5": NPentane, "npentane": NPentane, "pentane": NPentane,
	"c6": Hexane, "n-hexane": Hexane,
	"c7": Heptane, "n-heptane": Heptane,
	"c8": Octane, "n-octane": Octane,
	"c9": Nonane, "n-nonane": Nonane,
	"c10": Decane, "n-decane": Decane,
	"h2": Hydrogen,
	"o2": Oxygen,
	"co": CarbonMonoxide, "carbonmonoxide": CarbonMonoxide,
	"h2o": Water,
	"h2s": HydrogenSulfide, "hydrogensulfide": HydrogenSulfide, "hydrogen sulphide": HydrogenSulfide,
	"he": Helium,
	"ar": Argon,
}

func (c Component) String() string {
	if c < 0 || int(c) >= NumComponents {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// ComponentByName resolves a component from its display name or a common
// alias (formula, short hydrocarbon code), ignoring case and surrounding
// whitespace.
func ComponentByName(name string) (Component, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range componentNames {
		if strings.ToLower(n) == key {
			return Component(i), nil
		}
	}
	if c, ok := componentAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown gas component %q", name)
}

// Fluid holds the pure component parameters of one component.
type Fluid struct {
	MolarMass float64 // g/mol
	E         float64 // energy parameter, K
	K         float64 // size parameter, (m3/kmol)^(1/3)
	G         float64 // orientation parameter
	Q         float64 // quadrupole parameter
	F         float64 // high temperature parameter
	S         float64 // dipole parameter
	W         float64 // association parameter

	// Ideal gas Helmholtz coefficients. N0[0..2] are the constant, 1/T and
	// log(T) coefficients; N0[3..6] weight the four Einstein modes whose
	// characteristic temperatures are Theta0[0..3]. A zero temperature
	// disables the mode.
	N0     [7]float64
	Theta0 [4]float64
}

var fluids = [NumComponents]Fluid{
	Methane: {
		MolarMass: 16.043, E: 151.3183, K: 0.4619255,
		N0:     [7]float64{29.83843397, -15999.69151, 4.00088, 0.76315, 0.0046, 8.74432, -4.46921},
		Theta0: [4]float64{820.659, 178.41, 1062.82, 1090.53},
	},
	Nitrogen: {
		MolarMass: 28.0135, E: 99.73778, K: 0.4479153, G: 0.027815,
		N0:     [7]float64{17.56770785, -2801.729072, 3.50031, 0.13732, -0.1466, 0.90066, 0},
		Theta0: [4]float64{662.738, 680.562, 1740.06, 0},
	},
	CarbonDioxide: {
		MolarMass: 44.01, E: 241.9606, K: 0.4557489, G: 0.189065, Q: 0.69,
		N0:     [7]float64{20.65844696, -4902.171516, 3.50002, 2.04452, -1.06044, 2.03366, 0.01393},
		Theta0: [4]float64{919.306, 865.07, 483.553, 341.109},
	},
	Ethane: {
		MolarMass: 30.07, E: 244.1667, K: 0.5279209, G: 0.0793,
		N0:     [7]float64{36.73005938, -23639.65301, 4.00263, 4.33939, 1.23722, 13.1974, -6.01989},
		Theta0: [4]float64{559.314, 223.284, 1031.38, 1071.29},
	},
	Propane: {
		MolarMass: 44.097, E: 298.1183, K: 0.583749, G: 0.141239,
		N0:     [7]float64{44.70909619, -31236.63551, 4.02939, 6.60569, 3.197, 19.1921, -8.37267},
		Theta0: [4]float64{479.856, 200.893, 955.312, 1027.29},
	},
	Isobutane: {
		MolarMass: 58.123, E: 324.0689, K: 0.6406937, G: 0.256692,
		N0:     [7]float64{34.30180349, -38525.50276, 4.06714, 8.97575, 5.25156, 25.1423, 16.1388},
		Theta0: [4]float64{438.27, 198.018, 1905.02, 893.765},
	},
	NButane: {
		MolarMass: 58.123, E: 337.6389, K: 0.6341423, G: 0.281835,
		N0:     [7]float64{36.53237783, -38957.80933, 4.33944, 9.44893, 6.89406, 24.4618, 14.7824},
		Theta0: [4]float64{468.27, 183.636, 1914.1, 903.185},
	},
	Isopentane: {
		MolarMass: 72.15, E: 365.5999, K: 0.6738577, G: 0.332267,
		N0:     [7]float64{43.17218626, -51198.30946, 4, 11.7618, 20.1101, 33.1688, 0},
		Theta0: [4]float64{292.503, 910.237, 1919.37, 0},
	},
	NPentane: {
		MolarMass: 72.15, E: 370.6823, K: 0.6798307, G: 0.366911,
		N0:     [7]float64{42.67837089, -45215.83, 4, 8.95043, 21.836, 33.4032, 0},
		Theta0: [4]float64{178.67, 840.538, 1774.25, 0},
	},
	Hexane: {
		MolarMass: 86.177, E: 402.636293, K: 0.7175118, G: 0.289731,
		N0:     [7]float64{46.99717188, -52746.83318, 4, 11.6977, 26.8142, 38.6164, 0},
		Theta0: [4]float64{182.326, 859.207, 1826.59, 0},
	},
	Heptane: {
		MolarMass: 100.204, E: 427.72263, K: 0.7525189, G: 0.337542,
		N0:     [7]float64{52.07631631, -57104.81056, 4, 13.7266, 30.4707, 43.5561, 0},
		Theta0: [4]float64{169.789, 836.195, 1760.46, 0},
	},
	Octane: {
		MolarMass: 114.231, E: 450.325022, K: 0.784955, G: 0.383381,
		N0:     [7]float64{57.25830934, -60546.76385, 4, 15.6865, 33.8029, 48.1731, 0},
		Theta0: [4]float64{158.922, 815.064, 1693.07, 0},
	},
	Nonane: {
		MolarMass: 128.258, E: 470.840891, K: 0.8152731, G: 0.427354,
		N0:     [7]float64{62.09646901, -66600.12837, 4, 18.0241, 38.1235, 53.3415, 0},
		Theta0: [4]float64{156.854, 814.882, 1693.79, 0},
	},
	Decane: {
		MolarMass: 142.285, E: 489.558373, K: 0.8437826, G: 0.469659,
		N0:     [7]float64{65.93909154, -74131.45483, 4, 21.0069, 43.4931, 58.3657, 0},
		Theta0: [4]float64{164.947, 836.264, 1750.24, 0},
	},
	Hydrogen: {
		MolarMass: 2.0159, E: 26.95794, K: 0.3514916, G: 0.034369, F: 1,
		N0:     [7]float64{13.07520288, -5836.943696, 2.47906, 0.95806, 0.45444, 1.56039, -1.3756},
		Theta0: [4]float64{228.734, 326.843, 1651.71, 1671.69},
	},
	Oxygen: {
		MolarMass: 31.9988, E: 122.7667, K: 0.4186954, G: 0.021,
		N0:     [7]float64{16.8017173, -2318.32269, 3.50146, 1.07558, 1.01334, 0, 0},
		Theta0: [4]float64{2235.71, 1116.69, 0, 0},
	},
	CarbonMonoxide: {
		MolarMass: 28.01, E: 105.5348, K: 0.4533894, G: 0.038953,
		N0:     [7]float64{17.45786899, -2635.244116, 3.50055, 1.02865, 0.00493, 0, 0},
		Theta0: [4]float64{1550.45, 704.525, 0, 0},
	},
	Water: {
		MolarMass: 18.0153, E: 514.0156, K: 0.3825868, G: 0.3325, Q: 1.06775, S: 1.5822, W: 1,
		N0:     [7]float64{21.57882705, -7766.733078, 4.00392, 0.01059, 0.98763, 3.06904, 0},
		Theta0: [4]float64{268.795, 1141.41, 2507.37, 0},
	},
	HydrogenSulfide: {
		MolarMass: 34.082, E: 296.355, K: 0.4618263, G: 0.0885, Q: 0.633276, S: 0.39,
		N0:     [7]float64{21.5830944, -6069.035869, 4, 3.11942, 1.00243, 0, 0},
		Theta0: [4]float64{1833.63, 847.181, 0, 0},
	},
	Helium: {
		MolarMass: 4.0026, E: 2.610111, K: 0.3589888,
		N0:     [7]float64{10.04639507, -745.375, 2.5, 0, 0, 0, 0},
		Theta0: [4]float64{0, 0, 0, 0},
	},
	Argon: {
		MolarMass: 39.948, E: 119.6299, K: 0.4216551,
		N0:     [7]float64{10.04639507, -745.375, 2.5, 0, 0, 0, 0},
		Theta0: [4]float64{0, 0, 0, 0},
	},
}
