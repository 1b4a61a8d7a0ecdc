package deplete

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hturner08/openmc/internal/metrics"
	apperrors "github.com/hturner08/openmc/pkg/app/errors"
	"github.com/hturner08/openmc/pkg/chain"
	"github.com/hturner08/openmc/pkg/data"
)

// EnvDepleteChain is the deprecated environment override for the chain
// file path. Registering the chain under depletion_chain in the
// cross-section registry is the preferred mechanism.
const EnvDepleteChain = "OPENMC_DEPLETE_CHAIN"

// DefaultDiluteInitial is the atom density [atom/b-cm] seeded for
// nuclides that are zero in the initial condition but have defined
// reaction rates, so they stay tracked in the decay chain.
const DefaultDiluteInitial = 1.0e3

// ErrNoChain is returned when no depletion chain is resolvable from any
// source.
var ErrNoChain = errors.New(
	"no depletion chain specified, either manually, via " + EnvDepleteChain +
		", or under depletion_chain in the registry named by " + data.EnvCrossSections)

// Settings configures construction of an operator's shared state.
type Settings struct {
	// ChainFile is an explicit chain file path. When empty the path is
	// resolved through the environment override and then the registry.
	ChainFile string
	// FissionQ overrides per-nuclide fission Q values [eV] baked into the
	// chain file.
	FissionQ map[string]float64
	// CrossSections optionally names the registry document directly,
	// bypassing OPENMC_CROSS_SECTIONS discovery.
	CrossSections string
}

// Base holds the state shared by all transport operators: the loaded
// depletion chain, the dilution constant, and the output directory.
// Concrete operators embed *Base and implement the remaining
// TransportOperator methods.
type Base struct {
	// DiluteInitial is the seed density for zero-density nuclides with
	// defined reaction rates. Defaults to DefaultDiluteInitial.
	DiluteInitial float64

	chain     *chain.Chain
	outputDir string
	logger    *zap.Logger
}

// NewBase resolves and loads the depletion chain per cfg and returns the
// shared operator state. The chain is immutable for the lifetime of the
// operator.
func NewBase(cfg Settings, logger *zap.Logger) (*Base, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	chainFile, err := ResolveChainFile(cfg, logger)
	if err != nil {
		return nil, err
	}

	c, err := chain.FromXML(chainFile, cfg.FissionQ)
	if err != nil {
		return nil, fmt.Errorf("loading depletion chain: %w", err)
	}
	if unknown := c.UnknownFissionQ(cfg.FissionQ); len(unknown) > 0 {
		logger.Warn("fission Q overrides for nuclides absent from chain",
			zap.Strings("nuclides", unknown))
	}

	logger.Info("Loaded depletion chain",
		zap.String("path", chainFile),
		zap.Int("nuclides", c.Len()))
	metrics.ChainNuclides.Set(float64(c.Len()))

	return &Base{
		DiluteInitial: DefaultDiluteInitial,
		chain:         c,
		outputDir:     ".",
		logger:        logger,
	}, nil
}

// ResolveChainFile determines the chain file path from cfg, in strict
// order: explicit path, OPENMC_DEPLETE_CHAIN environment override
// (deprecated, warns once per call and skips the registry), then the last
// depletion_chain entry of the cross-section registry.
func ResolveChainFile(cfg Settings, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.ChainFile != "" {
		return cfg.ChainFile, nil
	}

	if path := os.Getenv(EnvDepleteChain); path != "" {
		logger.Warn("Use of "+EnvDepleteChain+" is deprecated in favor of adding "+
			"depletion_chain to "+data.EnvCrossSections,
			zap.String("path", path))
		return path, nil
	}

	lib, err := loadRegistry(cfg.CrossSections)
	if err != nil {
		// Registry unavailable and no other source given.
		return "", apperrors.ConfigError(fmt.Errorf("%w: %w", ErrNoChain, err), "no depletion chain available")
	}
	path, found := lib.DepletionChain()
	if !found {
		return "", apperrors.ConfigError(ErrNoChain, "no depletion chain available")
	}
	return path, nil
}

func loadRegistry(path string) (*data.Library, error) {
	if path != "" {
		return data.FromXML(path)
	}
	return data.FromEnv()
}

// Chain returns the loaded depletion chain.
func (b *Base) Chain() *chain.Chain {
	return b.chain
}

// OutputDir returns the directory the run scope switches into. Defaults
// to the current working directory.
func (b *Base) OutputDir() string {
	return b.outputDir
}

// SetOutputDir changes the output directory. The directory is created on
// demand when a run scope is entered.
func (b *Base) SetOutputDir(dir string) {
	b.outputDir = dir
}

// Finalize is a no-op by default; concrete operators override it to
// release solver resources.
func (b *Base) Finalize() error {
	return nil
}

// Logger returns the operator's logger.
func (b *Base) Logger() *zap.Logger {
	return b.logger
}
