package deplete

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hturner08/openmc/internal/metrics"
	apperrors "github.com/hturner08/openmc/pkg/app/errors"
)

// runMu serializes run scopes. The working-directory change is
// process-global state, so only one run scope may be active at a time per
// process.
var runMu sync.Mutex

// RunContext carries the execution context of a scoped run. It is passed
// to the run body so collaborators can reference the output directory
// explicitly instead of relying on the process working directory.
type RunContext struct {
	// ID uniquely identifies this run.
	ID string
	// OutputDir is the absolute path of the directory the process was
	// switched into for the duration of the run.
	OutputDir string
	// Started is the scope entry time.
	Started time.Time
	// Logger is scoped to this run.
	Logger *zap.Logger
}

// WithRun executes body inside the operator's run scope:
//
//  1. The output directory is created if missing, parents included.
//  2. The process working directory is switched into it.
//  3. The operator's initial condition is computed and handed to body.
//  4. On exit, normal or not, Finalize runs exactly once and the original
//     working directory is restored.
//
// A body error is propagated as-is; finalize and restore failures are
// logged rather than allowed to mask it, and surface only when the body
// itself succeeded. Run scopes are serialized process-wide.
func WithRun(op TransportOperator, logger *zap.Logger, body func(rc *RunContext, n0 [][]float64) error) (err error) {
	runMu.Lock()
	defer runMu.Unlock()

	if logger == nil {
		logger = zap.NewNop()
	}

	origDir, err := os.Getwd()
	if err != nil {
		return apperrors.IOError(fmt.Errorf("recording working directory: %w", err), "run scope entry failed")
	}

	outputDir := op.OutputDir()
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return apperrors.IOError(fmt.Errorf("creating output directory %s: %w", outputDir, err), "run scope entry failed")
	}
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return apperrors.IOError(fmt.Errorf("resolving output directory %s: %w", outputDir, err), "run scope entry failed")
	}
	if err := os.Chdir(outputDir); err != nil {
		return apperrors.IOError(fmt.Errorf("entering output directory %s: %w", outputDir, err), "run scope entry failed")
	}

	rc := &RunContext{
		ID:        uuid.NewString(),
		OutputDir: absDir,
		Started:   time.Now(),
	}
	rc.Logger = logger.With(zap.String("run_id", rc.ID))

	rc.Logger.Info("Entering run scope", zap.String("output_dir", absDir))

	// Teardown runs even when the body panics: finalize first, then
	// restore the recorded working directory unconditionally.
	defer func() {
		ferr := op.Finalize()
		cerr := os.Chdir(origDir)

		metrics.RunDuration.Observe(time.Since(rc.Started).Seconds())
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.RunsTotal.WithLabelValues(status).Inc()

		if err != nil {
			if ferr != nil {
				rc.Logger.Error("Finalize failed after run error", zap.Error(ferr))
			}
			if cerr != nil {
				rc.Logger.Error("Working directory restore failed after run error", zap.Error(cerr))
			}
			return
		}
		if ferr != nil {
			err = fmt.Errorf("finalizing operator: %w", ferr)
		}
		if cerr != nil {
			if err != nil {
				rc.Logger.Error("Working directory restore failed", zap.Error(cerr))
				return
			}
			err = apperrors.IOError(fmt.Errorf("restoring working directory %s: %w", origDir, cerr), "run scope exit failed")
		}
	}()

	n0, err := op.InitialCondition()
	if err != nil {
		return fmt.Errorf("computing initial condition: %w", err)
	}

	return body(rc, n0)
}
