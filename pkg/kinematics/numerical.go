// Numerical inverse kinematics: Jacobian inverse (bounded-step Newton with
// noise-injection escape) and Jacobian transpose (bounded projected-gradient
// descent with epoch-level noise injection, standing in for the SLSQP
// minimizer spec.md §4.3 describes — no bounded nonlinear least-squares
// package is present in the example pack, so this repository's inner loop
// is a documented standard-library substitute; see DESIGN.md). Grounded in
// the teacher's solveJacInverse/solveJacTransposed shape, carried over from
// original_source/controllers/motor_controller/robots.py.
package kinematics

import (
	"github.com/nrodrigues64/td3-trajectory/internal/xrand"
	"github.com/nrodrigues64/td3-trajectory/pkg/mat"
)

// JacInverseParams configures SolveJacobianInverse; zero value uses the
// spec.md §4.3 defaults.
type JacInverseParams struct {
	MaxSteps    int
	Tolerance   float64
	MaxStepSize float64
	Seed        *int64
}

func (p JacInverseParams) withDefaults() JacInverseParams {
	if p.MaxSteps == 0 {
		p.MaxSteps = 500
	}
	if p.Tolerance == 0 {
		p.Tolerance = 1e-6
	}
	if p.MaxStepSize == 0 {
		p.MaxStepSize = 0.05
	}
	return p
}

// SolveJacobianInverse runs bounded-step Newton iteration on the inverse
// Jacobian, injecting uniform noise to escape a singular configuration,
// per spec.md §4.3. No convergence is guaranteed; the final q after at
// most MaxSteps iterations is returned regardless.
func SolveJacobianInverse(model Model, initial, target []float64, params JacInverseParams) []float64 {
	p := params.withDefaults()
	rng := xrand.New(p.Seed)

	q := append([]float64(nil), initial...)
	for i := 0; i < p.MaxSteps; i++ {
		pos := model.Forward(q)
		errVec := sub(target, pos)
		if mat.Norm2(errVec) < p.Tolerance {
			break
		}

		j := model.Jacobian(q)
		jInv, err := j.Inverse()
		if err != nil {
			offset := rng.UniformVector(len(q), 0.1)
			q = add(q, offset)
			continue
		}

		step, err := jInv.MulVec(errVec)
		if err != nil {
			offset := rng.UniformVector(len(q), 0.1)
			q = add(q, offset)
			continue
		}
		if size := mat.Norm2(step); size > p.MaxStepSize {
			scale := p.MaxStepSize / size
			for k := range step {
				step[k] *= scale
			}
		}
		q = add(q, step)
	}
	return q
}

// JacTransposeParams configures SolveJacobianTranspose; zero value uses the
// spec.md §4.3 defaults.
type JacTransposeParams struct {
	MaxEpochs     int
	MaxIterations int
	Seed          *int64
}

func (p JacTransposeParams) withDefaults() JacTransposeParams {
	if p.MaxEpochs == 0 {
		p.MaxEpochs = 10
	}
	if p.MaxIterations == 0 {
		p.MaxIterations = 500
	}
	return p
}

const (
	jacTransposeCostTolerance      = 1e-4
	jacTransposeJointDiffTolerance = 1e-3
	jacTransposeMinImprovement     = jacTransposeCostTolerance * 1e-2
	jacTransposeInnerLearningRate  = 0.05
)

// SolveJacobianTranspose minimizes ‖forward(q) - target‖ subject to joint
// limits with a bounded projected-gradient inner loop (the SLSQP-like
// solver of spec.md §4.3; see this file's package doc for why it is a
// stdlib substitute), restarting with injected noise between epochs when
// progress stalls. Per spec.md §4.3, it returns the best q found after at
// most MaxEpochs epochs even if cost still exceeds tolerance.
func SolveJacobianTranspose(model Model, initial, target []float64, params JacTransposeParams) []float64 {
	p := params.withDefaults()
	rng := xrand.New(p.Seed)
	limits := model.JointLimits()

	cost := func(q []float64) float64 {
		return mat.Norm2(sub(model.Forward(q), target))
	}

	q := append([]float64(nil), initial...)
	var lastQ []float64
	var lastCost float64
	haveLast := false
	var bestQ []float64
	var bestCost float64

	currentCost := cost(q)
	for epoch := 0; epoch < p.MaxEpochs && currentCost > jacTransposeCostTolerance; epoch++ {
		if haveLast {
			jointDiff := mat.Norm2(sub(lastQ, q))
			improvement := lastCost - currentCost
			if jointDiff < jacTransposeJointDiffTolerance && improvement < jacTransposeMinImprovement {
				offset := rng.UniformVector(len(q), 0.1)
				q = add(q, offset)
			}
		}

		lastQ = append([]float64(nil), q...)
		lastCost = cost(q)
		haveLast = true

		for iter := 0; iter < p.MaxIterations; iter++ {
			grad := jacobianTransposeGradient(model, q, target)
			if mat.Norm2(grad) < 1e-12 {
				break
			}
			for k := range q {
				q[k] -= jacTransposeInnerLearningRate * grad[k]
			}
			q = projectToLimits(q, limits)
			if cost(q) <= jacTransposeCostTolerance {
				break
			}
		}

		currentCost = cost(q)
		if bestQ == nil || currentCost < bestCost {
			bestQ = append([]float64(nil), q...)
			bestCost = currentCost
		}
	}

	if bestQ != nil {
		return bestQ
	}
	return q
}

// jacobianTransposeGradient computes ∇f = -2 * J^T * (target - forward(q)).
func jacobianTransposeGradient(model Model, q, target []float64) []float64 {
	j := model.Jacobian(q)
	errVec := sub(target, model.Forward(q))
	jt := j.Transpose()
	grad, err := jt.MulVec(errVec)
	if err != nil {
		return make([]float64, len(q))
	}
	for k := range grad {
		grad[k] *= -2
	}
	return grad
}

func projectToLimits(q []float64, limits []Limits) []float64 {
	out := make([]float64, len(q))
	for i, v := range q {
		out[i] = clamp(v, limits[i].Min, limits[i].Max)
	}
	return out
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
