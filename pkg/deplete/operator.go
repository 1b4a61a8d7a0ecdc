// Package deplete couples a neutron transport solver with a burnup/decay
// chain model over time.
//
// The package owns the TransportOperator contract and the lifecycle around
// a simulation run; the transport physics itself is supplied by concrete
// operators. A depletion integrator drives a generic operator: it hands the
// operator a vector of material compositions and receives an eigenvalue and
// reaction rates back.
package deplete

import (
	"context"
)

// OperatorResult is the result of applying a transport operator: the
// eigenvalue of the solve and the reaction rates it produced. A fresh
// value is constructed per solve.
type OperatorResult struct {
	K     float64
	Rates *ReactionRates
}

// ResultsInfo describes which materials are burned and how results are
// indexed and sorted downstream.
type ResultsInfo struct {
	// Volumes corresponds element-wise to BurnableMaterials [cm^3].
	Volumes []float64
	// Nuclides lists all tracked nuclide names, in chain order.
	Nuclides []string
	// BurnableMaterials lists the material IDs being burned.
	BurnableMaterials []int
	// AllBurnableMaterials lists every burnable material in the geometry,
	// including those outside this operator's domain.
	AllBurnableMaterials []int
}

// TransportOperator is the contract between the depletion integrator and
// a transport solver. Concrete operators embed *Base for the shared state
// (chain, dilution constant, output directory, default Finalize) and
// supply the three solver-specific methods.
type TransportOperator interface {
	// Solve runs a transport simulation for the given per-material nuclide
	// density vectors and returns the resulting eigenvalue and reaction
	// rates. printOutput controls solver console chatter.
	Solve(ctx context.Context, n [][]float64, printOutput bool) (OperatorResult, error)

	// InitialCondition performs final setup and returns the starting
	// per-material density vectors. Called exactly once, at run entry.
	InitialCondition() ([][]float64, error)

	// ResultsInfo reports the material and nuclide listings used to index
	// results. It has no side effects and is callable any time after
	// construction.
	ResultsInfo() (ResultsInfo, error)

	// Finalize releases solver resources. Called exactly once, at run
	// exit, before the working directory is restored.
	Finalize() error

	// OutputDir is the directory the run scope switches into.
	OutputDir() string
}
