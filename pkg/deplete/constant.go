package deplete

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hturner08/openmc/internal/metrics"
)

// ConstantOperator is a TransportOperator with a fixed eigenvalue and
// zero reaction rates. It stands in for a real transport solver in smoke
// runs and examples; the rate table it returns is shaped by the loaded
// chain so downstream indexing behaves as it would with a real solver.
type ConstantOperator struct {
	*Base

	k         float64
	materials []int
	volumes   []float64
}

// NewConstantOperator builds a constant operator over the given burnable
// materials. volumes corresponds element-wise to materials [cm^3].
func NewConstantOperator(base *Base, k float64, materials []int, volumes []float64) *ConstantOperator {
	return &ConstantOperator{
		Base:      base,
		k:         k,
		materials: materials,
		volumes:   volumes,
	}
}

// Solve returns the configured eigenvalue and a zero-filled reaction rate
// table spanning the chain's nuclides and reaction types.
func (o *ConstantOperator) Solve(ctx context.Context, n [][]float64, printOutput bool) (OperatorResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.TransportSolvesTotal.WithLabelValues("error").Inc()
		return OperatorResult{}, err
	}

	rates := NewReactionRates(o.materials, o.Chain().NuclideNames(), o.Chain().ReactionTypes())

	metrics.SolveDuration.Observe(time.Since(start).Seconds())
	metrics.TransportSolvesTotal.WithLabelValues("ok").Inc()
	metrics.LastEigenvalue.Set(o.k)

	if printOutput {
		o.Logger().Info("Transport solve complete",
			zap.Float64("k", o.k),
			zap.Int("materials", len(n)),
			zap.Duration("elapsed", time.Since(start)))
	}
	return OperatorResult{K: o.k, Rates: rates}, nil
}

// InitialCondition seeds every tracked nuclide in every burnable material
// with the dilution density, so nuclides with defined reaction rates stay
// in the decay chain from the first solve.
func (o *ConstantOperator) InitialCondition() ([][]float64, error) {
	n0 := make([][]float64, len(o.materials))
	for i := range n0 {
		vec := make([]float64, o.Chain().Len())
		for j := range vec {
			vec[j] = o.DiluteInitial
		}
		n0[i] = vec
	}
	return n0, nil
}

// ResultsInfo reports the operator's materials and the chain's nuclides
// in file order.
func (o *ConstantOperator) ResultsInfo() (ResultsInfo, error) {
	return ResultsInfo{
		Volumes:              o.volumes,
		Nuclides:             o.Chain().NuclideNames(),
		BurnableMaterials:    o.materials,
		AllBurnableMaterials: o.materials,
	}, nil
}
