package deplete

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func newTestConstantOperator(t *testing.T, nuclides ...string) *ConstantOperator {
	t.Helper()
	clearChainEnv(t)
	chainPath := writeTestChain(t, t.TempDir(), "chain_test.xml", nuclides...)
	base, err := NewBase(Settings{ChainFile: chainPath}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewBase() failed: %v", err)
	}
	return NewConstantOperator(base, 1.05, []int{1, 2}, []float64{10.0, 20.0})
}

func TestConstantOperator_ResultsInfoNuclideOrder(t *testing.T) {
	op := newTestConstantOperator(t, "A", "B")

	info, err := op.ResultsInfo()
	if err != nil {
		t.Fatalf("ResultsInfo() failed: %v", err)
	}
	if len(info.Nuclides) != 2 || info.Nuclides[0] != "A" || info.Nuclides[1] != "B" {
		t.Fatalf("expected nuclides [A B] in file order, got %v", info.Nuclides)
	}
	if len(info.BurnableMaterials) != 2 || len(info.Volumes) != 2 {
		t.Fatalf("expected 2 materials with volumes, got %v / %v", info.BurnableMaterials, info.Volumes)
	}
}

func TestConstantOperator_InitialConditionSeedsDilution(t *testing.T) {
	op := newTestConstantOperator(t, "U235", "U238", "Xe135")

	n0, err := op.InitialCondition()
	if err != nil {
		t.Fatalf("InitialCondition() failed: %v", err)
	}
	if len(n0) != 2 {
		t.Fatalf("expected one vector per material, got %d", len(n0))
	}
	for i, vec := range n0 {
		if len(vec) != 3 {
			t.Fatalf("material %d: expected 3 nuclide densities, got %d", i, len(vec))
		}
		for j, v := range vec {
			if v != DefaultDiluteInitial {
				t.Fatalf("material %d nuclide %d: expected dilution density %v, got %v",
					i, j, DefaultDiluteInitial, v)
			}
		}
	}
}

func TestConstantOperator_Solve(t *testing.T) {
	op := newTestConstantOperator(t, "U235")

	n0, err := op.InitialCondition()
	if err != nil {
		t.Fatalf("InitialCondition() failed: %v", err)
	}
	result, err := op.Solve(context.Background(), n0, false)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if result.K != 1.05 {
		t.Fatalf("expected k = 1.05, got %v", result.K)
	}
	if result.Rates == nil || result.Rates.NMat() != 2 || result.Rates.NNuc() != 1 {
		t.Fatalf("unexpected rate table shape: %+v", result.Rates)
	}
}

func TestConstantOperator_SolveCancelledContext(t *testing.T) {
	op := newTestConstantOperator(t, "U235")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := op.Solve(ctx, nil, false); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
