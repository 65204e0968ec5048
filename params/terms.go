package params

// Effect flags the molecular effects a term of the equation of state
// depends on.
type Effect uint8

const (
	Orientation     Effect = 1 << iota // g
	Quadrupole                         // q
	HighTemperature                    // f
	Dipole                             // s
	Association                        // w
)

// Term is one of the 58 terms of the DETAIL equation:
//
//	a_n * D^B * T^-U * exp(-D^K) * (effect factors)
//
// B and K are small integer density exponents. K is zero for the terms
// that have no exponential part.
type Term struct {
	A       float64
	B       int
	K       int
	U       float64
	Effects Effect
}

// Has reports whether the term includes effect e.
func (t Term) Has(e Effect) bool {
	return t.Effects&e != 0
}

// Virial reports whether term n contributes to the second virial
// coefficient.
func Virial(n int) bool { return n < NumVirialTerms }

// Exponential reports whether term n carries an exponential density part.
func Exponential(n int) bool { return n >= FirstExpTerm }

var terms = [NumTerms]Term{
	{A: 0.1538326, B: 1, K: 0, U: 0},
	{A: 1.341953, B: 1, K: 0, U: 0.5},
	{A: -2.998583, B: 1, K: 0, U: 1},
	{A: -0.04831228, B: 1, K: 0, U: 3.5},
	{A: 0.3757965, B: 1, K: 0, U: -0.5, Effects: Orientation},
	{A: -1.589575, B: 1, K: 0, U: 4.5, Effects: Orientation},
	{A: -0.05358847, B: 1, K: 0, U: 0.5, Effects: Quadrupole},
	{A: 0.88659463, B: 1, K: 0, U: 7.5, Effects: Dipole},
	{A: -0.71023704, B: 1, K: 0, U: 9.5, Effects: Dipole},
	{A: -1.471722, B: 1, K: 0, U: 6, Effects: Association},
	{A: 1.32185035, B: 1, K: 0, U: 12, Effects: Association},
	{A: -0.78665925, B: 1, K: 0, U: 12.5, Effects: Association},
	{A: 2.29129e-09, B: 1, K: 3, U: -6, Effects: HighTemperature},
	{A: 0.1576724, B: 1, K: 2, U: 2},
	{A: -0.4363864, B: 1, K: 2, U: 3},
	{A: -0.04408159, B: 1, K: 2, U: 2, Effects: Quadrupole},
	{A: -0.003433888, B: 1, K: 4, U: 2},
	{A: 0.03205905, B: 1, K: 4, U: 11},
	{A: 0.02487355, B: 2, K: 0, U: -0.5},
	{A: 0.07332279, B: 2, K: 0, U: 0.5},
	{A: -0.001600573, B: 2, K: 2, U: 0},
	{A: 0.6424706, B: 2, K: 2, U: 4},
	{A: -0.4162601, B: 2, K: 2, U: 6},
	{A: -0.06689957, B: 2, K: 4, U: 21},
	{A: 0.2791795, B: 2, K: 4, U: 23, Effects: Orientation},
	{A: -0.6966051, B: 2, K: 4, U: 22, Effects: Quadrupole},
	{A: -0.002860589, B: 2, K: 4, U: -1, Effects: HighTemperature},
	{A: -0.008098836, B: 3, K: 0, U: -0.5, Effects: Quadrupole},
	{A: 3.150547, B: 3, K: 1, U: 7, Effects: Orientation},
	{A: 0.007224479, B: 3, K: 1, U: -1, Effects: HighTemperature},
	{A: -0.7057529, B: 3, K: 2, U: 6},
	{A: 0.5349792, B: 3, K: 2, U: 4, Effects: Orientation},
	{A: -0.07931491, B: 3, K: 3, U: 1, Effects: Orientation},
	{A: -1.418465, B: 3, K: 3, U: 9, Effects: Orientation},
	{A: -5.99905e-17, B: 3, K: 4, U: -13, Effects: HighTemperature},
	{A: 0.1058402, B: 3, K: 4, U: 21},
	{A: 0.03431729, B: 3, K: 4, U: 8, Effects: Quadrupole},
	{A: -0.007022847, B: 4, K: 0, U: -0.5},
	{A: 0.02495587, B: 4, K: 0, U: 0},
	{A: 0.04296818, B: 4, K: 2, U: 2},
	{A: 0.7465453, B: 4, K: 2, U: 7},
	{A: -0.2919613, B: 4, K: 2, U: 9, Effects: Quadrupole},
	{A: 7.294616, B: 4, K: 4, U: 22},
	{A: -9.936757, B: 4, K: 4, U: 23},
	{A: -0.005399808, B: 5, K: 0, U: 1},
	{A: -0.2432567, B: 5, K: 2, U: 9},
	{A: 0.04987016, B: 5, K: 2, U: 3, Effects: Quadrupole},
	{A: 0.003733797, B: 5, K: 4, U: 8},
	{A: 1.874951, B: 5, K: 4, U: 23, Effects: Quadrupole},
	{A: 0.002168144, B: 6, K: 0, U: 1.5},
	{A: -0.6587164, B: 6, K: 2, U: 5, Effects: Orientation},
	{A: 0.000205518, B: 7, K: 0, U: -0.5, Effects: Quadrupole},
	{A: 0.009776195, B: 7, K: 2, U: 4},
	{A: -0.02048708, B: 8, K: 1, U: 7, Effects: Orientation},
	{A: 0.01557322, B: 8, K: 2, U: 3},
	{A: 0.006862415, B: 8, K: 2, U: 0, Effects: Orientation},
	{A: -0.001226752, B: 9, K: 2, U: 1},
	{A: 0.002850908, B: 9, K: 2, U: 0, Effects: Quadrupole},
}
