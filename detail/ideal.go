package detail

import (
	"math"

	"github.com/notargets/aga8/params"
)

// IdealGas returns the ideal gas Helmholtz energy of composition x at
// temperature T (K) and density D (mol/l) together with its temperature
// derivatives: a0[0] in J/mol, a0[1] = da0/dT and a0[2] = T d2a0/dT2, the
// last two in J/(mol K).
func IdealGas(x []float64, T, D float64) (a0 [3]float64) {
	t := params.Load()

	logd := math.Log(params.Epsilon)
	if D > params.Epsilon {
		logd = math.Log(D)
	}
	logt := math.Log(T)

	for i := 0; i < params.NumComponents; i++ {
		if x[i] <= 0 {
			continue
		}
		var (
			n0                        = &t.N0[i]
			theta                     = &t.Fluids[i].Theta0
			logxd                     = logd + math.Log(x[i])
			sumhyp0, sumhyp1, sumhyp2 float64
		)
		for mode := 0; mode < len(theta); mode++ {
			if theta[mode] <= 0 {
				continue
			}
			nm := n0[3+mode]
			th0t := theta[mode] / T
			ep := math.Exp(th0t)
			em := 1 / ep
			hsn := (ep - em) / 2
			hcn := (ep + em) / 2
			// Modes 0 and 2 are sinh terms, 1 and 3 cosh terms.
			if mode%2 == 0 {
				loghyp := math.Log(math.Abs(hsn))
				r := th0t / hsn
				sumhyp0 += nm * loghyp
				sumhyp1 += nm * (loghyp - th0t*hcn/hsn)
				sumhyp2 += nm * (r * r)
			} else {
				loghyp := math.Log(math.Abs(hcn))
				r := th0t / hcn
				sumhyp0 += -nm * loghyp
				sumhyp1 += -nm * (loghyp - th0t*hsn/hcn)
				sumhyp2 += nm * (r * r)
			}
		}
		a0[0] += x[i] * (logxd + n0[0] + n0[1]/T - n0[2]*logt + sumhyp0)
		a0[1] += x[i] * (logxd + n0[0] - n0[2]*(1+logt) + sumhyp1)
		a0[2] += -x[i] * (n0[2] + sumhyp2)
	}

	a0[0] = a0[0] * params.R * T
	a0[1] = a0[1] * params.R
	a0[2] = a0[2] * params.R
	return
}
