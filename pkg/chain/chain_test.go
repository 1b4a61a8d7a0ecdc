package chain

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/hturner08/openmc/pkg/app/errors"
)

const sampleChain = `<depletion_chain>
  <nuclide name="U235" half_life="2.22e16">
    <decay type="alpha" target="Th231" branching_ratio="1.0"/>
    <reaction type="(n,gamma)" target="U236" Q="5297781.0"/>
    <reaction type="fission" Q="193405400.0"/>
  </nuclide>
  <nuclide name="U236">
    <decay type="alpha" target="Th232"/>
    <reaction type="(n,gamma)" target="U237" Q="5126000.0"/>
  </nuclide>
  <nuclide name="Xe135">
    <decay type="beta-" target="Cs135" branching_ratio="1.0"/>
    <reaction type="(n,gamma)" target="Xe136" Q="7990000.0"/>
  </nuclide>
</depletion_chain>`

func writeChain(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain_test.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing chain file: %v", err)
	}
	return path
}

func TestFromXML_FileOrderPreserved(t *testing.T) {
	c, err := FromXML(writeChain(t, sampleChain), nil)
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"U235", "U236", "Xe135"}, c.NuclideNames())

	u235, ok := c.Nuclide("U235")
	require.True(t, ok)
	require.Equal(t, 2.22e16, u235.HalfLife)
	require.Len(t, u235.DecayModes, 1)
	require.Len(t, u235.Reactions, 2)
}

func TestFromXML_BranchingRatioDefaultsToOne(t *testing.T) {
	c, err := FromXML(writeChain(t, sampleChain), nil)
	require.NoError(t, err)

	u236, ok := c.Nuclide("U236")
	require.True(t, ok)
	require.Equal(t, 1.0, u236.DecayModes[0].BranchingRatio)
	require.Equal(t, 1.0, u236.Reactions[0].BranchingRatio)
}

func TestFromXML_FissionQOverride(t *testing.T) {
	c, err := FromXML(writeChain(t, sampleChain), map[string]float64{"U235": 2.0e8})
	require.NoError(t, err)

	u235, _ := c.Nuclide("U235")
	for _, r := range u235.Reactions {
		switch r.Type {
		case ReactionFission:
			require.Equal(t, 2.0e8, r.Q, "fission Q should be overridden")
		default:
			require.Equal(t, 5297781.0, r.Q, "non-fission Q should be untouched")
		}
	}
}

func TestFromXML_DuplicateNuclide(t *testing.T) {
	doc := `<depletion_chain>
  <nuclide name="U235"/>
  <nuclide name="U235"/>
</depletion_chain>`
	_, err := FromXML(writeChain(t, doc), nil)
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestFromXML_MalformedDocument(t *testing.T) {
	_, err := FromXML(writeChain(t, "<depletion_chain><nuclide"), nil)
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestFromXML_MissingFile(t *testing.T) {
	_, err := FromXML(filepath.Join(t.TempDir(), "absent.xml"), nil)
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.CategoryIOError))
}

func TestReactionTypes_FirstAppearanceOrder(t *testing.T) {
	c, err := FromXML(writeChain(t, sampleChain), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"(n,gamma)", "fission"}, c.ReactionTypes())
}

func TestUnknownFissionQ(t *testing.T) {
	c, err := FromXML(writeChain(t, sampleChain), nil)
	require.NoError(t, err)

	unknown := c.UnknownFissionQ(map[string]float64{"U235": 1, "Pu239": 2, "Cm244": 3})
	sort.Strings(unknown)
	require.Equal(t, []string{"Cm244", "Pu239"}, unknown)
}
