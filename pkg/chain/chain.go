// Package chain loads depletion chain descriptions from XML.
//
// A chain file lists the nuclides tracked by the depletion solver together
// with their decay modes, transmutation reactions, and fission Q values.
// The document format is the one produced by the chain generation tooling;
// this package only reads it.
package chain

import (
	"encoding/xml"
	"fmt"
	"os"

	apperrors "github.com/hturner08/openmc/pkg/app/errors"
)

// ReactionFission is the reaction type whose Q value can be overridden
// by a caller-supplied fission energy map.
const ReactionFission = "fission"

// DecayMode describes a single decay pathway of a nuclide.
type DecayMode struct {
	Type           string
	Target         string
	BranchingRatio float64
}

// Reaction describes a transmutation reaction of a nuclide.
type Reaction struct {
	Type           string
	Target         string
	Q              float64 // energy release [eV]
	BranchingRatio float64
}

// Nuclide is one entry of the depletion chain.
type Nuclide struct {
	Name       string
	HalfLife   float64 // seconds, zero for stable nuclides
	DecayModes []DecayMode
	Reactions  []Reaction
}

// Chain is an immutable depletion chain description. Nuclides keep the
// order they appear in the source document, which downstream result
// indexing relies on.
type Chain struct {
	Nuclides []*Nuclide

	index map[string]int
}

type chainXML struct {
	XMLName  xml.Name     `xml:"depletion_chain"`
	Nuclides []nuclideXML `xml:"nuclide"`
}

type nuclideXML struct {
	Name      string        `xml:"name,attr"`
	HalfLife  float64       `xml:"half_life,attr"`
	Decay     []decayXML    `xml:"decay"`
	Reactions []reactionXML `xml:"reaction"`
}

type decayXML struct {
	Type           string   `xml:"type,attr"`
	Target         string   `xml:"target,attr"`
	BranchingRatio *float64 `xml:"branching_ratio,attr"`
}

type reactionXML struct {
	Type           string   `xml:"type,attr"`
	Target         string   `xml:"target,attr"`
	Q              float64  `xml:"Q,attr"`
	BranchingRatio *float64 `xml:"branching_ratio,attr"`
}

// FromXML reads a depletion chain from path. If fissionQ is non-nil, its
// entries override the Q value of the fission reaction of the named
// nuclides; names not present in the chain are ignored (callers may
// report them via UnknownFissionQ).
func FromXML(path string, fissionQ map[string]float64) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.IOError(fmt.Errorf("reading chain file %s: %w", path, err), "chain file unreadable")
	}

	var doc chainXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.DataError(fmt.Errorf("parsing chain file %s: %w", path, err), "malformed chain file")
	}

	c := &Chain{index: make(map[string]int, len(doc.Nuclides))}
	for _, n := range doc.Nuclides {
		if n.Name == "" {
			return nil, apperrors.DataError(fmt.Errorf("chain file %s: nuclide with empty name", path), "malformed chain file")
		}
		if _, dup := c.index[n.Name]; dup {
			return nil, apperrors.DataError(fmt.Errorf("chain file %s: duplicate nuclide %s", path, n.Name), "malformed chain file")
		}

		nuc := &Nuclide{
			Name:     n.Name,
			HalfLife: n.HalfLife,
		}
		for _, d := range n.Decay {
			nuc.DecayModes = append(nuc.DecayModes, DecayMode{
				Type:           d.Type,
				Target:         d.Target,
				BranchingRatio: ratioOrOne(d.BranchingRatio),
			})
		}
		for _, r := range n.Reactions {
			rx := Reaction{
				Type:           r.Type,
				Target:         r.Target,
				Q:              r.Q,
				BranchingRatio: ratioOrOne(r.BranchingRatio),
			}
			if q, ok := fissionQ[nuc.Name]; ok && rx.Type == ReactionFission {
				rx.Q = q
			}
			nuc.Reactions = append(nuc.Reactions, rx)
		}

		c.index[nuc.Name] = len(c.Nuclides)
		c.Nuclides = append(c.Nuclides, nuc)
	}

	return c, nil
}

func ratioOrOne(v *float64) float64 {
	if v == nil {
		return 1.0
	}
	return *v
}

// Len returns the number of nuclides in the chain.
func (c *Chain) Len() int {
	return len(c.Nuclides)
}

// Nuclide returns the named nuclide, if present.
func (c *Chain) Nuclide(name string) (*Nuclide, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.Nuclides[i], true
}

// NuclideNames returns all nuclide names in file order.
func (c *Chain) NuclideNames() []string {
	names := make([]string, len(c.Nuclides))
	for i, n := range c.Nuclides {
		names[i] = n.Name
	}
	return names
}

// ReactionTypes returns the distinct reaction types appearing anywhere in
// the chain, in first-appearance order.
func (c *Chain) ReactionTypes() []string {
	seen := make(map[string]struct{})
	var types []string
	for _, n := range c.Nuclides {
		for _, r := range n.Reactions {
			if _, ok := seen[r.Type]; !ok {
				seen[r.Type] = struct{}{}
				types = append(types, r.Type)
			}
		}
	}
	return types
}

// UnknownFissionQ returns the keys of fissionQ that name nuclides absent
// from the chain. Overrides for such nuclides have no effect; callers
// typically log them.
func (c *Chain) UnknownFissionQ(fissionQ map[string]float64) []string {
	var unknown []string
	for name := range fissionQ {
		if _, ok := c.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
