package deplete

import (
	"fmt"
)

// ReactionRates is a dense [material, nuclide, reaction] table of reaction
// rates produced by a transport solve. Rows are addressed through index
// maps so integrators can look up rates by material ID, nuclide name, and
// reaction name without caring about storage order.
type ReactionRates struct {
	matIndex  map[int]int
	nucIndex  map[string]int
	reacIndex map[string]int

	materials []int
	nuclides  []string
	reactions []string

	data []float64
}

// NewReactionRates creates a zero-filled table for the given materials,
// nuclides, and reactions. The listings fix the table's index order.
func NewReactionRates(materials []int, nuclides []string, reactions []string) *ReactionRates {
	r := &ReactionRates{
		matIndex:  make(map[int]int, len(materials)),
		nucIndex:  make(map[string]int, len(nuclides)),
		reacIndex: make(map[string]int, len(reactions)),
		materials: append([]int(nil), materials...),
		nuclides:  append([]string(nil), nuclides...),
		reactions: append([]string(nil), reactions...),
		data:      make([]float64, len(materials)*len(nuclides)*len(reactions)),
	}
	for i, m := range r.materials {
		r.matIndex[m] = i
	}
	for i, n := range r.nuclides {
		r.nucIndex[n] = i
	}
	for i, rx := range r.reactions {
		r.reacIndex[rx] = i
	}
	return r
}

// NMat returns the number of materials in the table.
func (r *ReactionRates) NMat() int { return len(r.materials) }

// NNuc returns the number of nuclides in the table.
func (r *ReactionRates) NNuc() int { return len(r.nuclides) }

// NReac returns the number of reactions in the table.
func (r *ReactionRates) NReac() int { return len(r.reactions) }

// Materials returns the material IDs in index order.
func (r *ReactionRates) Materials() []int { return r.materials }

// Nuclides returns the nuclide names in index order.
func (r *ReactionRates) Nuclides() []string { return r.nuclides }

// Reactions returns the reaction names in index order.
func (r *ReactionRates) Reactions() []string { return r.reactions }

func (r *ReactionRates) offset(material int, nuclide, reaction string) (int, error) {
	mi, ok := r.matIndex[material]
	if !ok {
		return 0, fmt.Errorf("material %d not in reaction rate table", material)
	}
	ni, ok := r.nucIndex[nuclide]
	if !ok {
		return 0, fmt.Errorf("nuclide %s not in reaction rate table", nuclide)
	}
	ri, ok := r.reacIndex[reaction]
	if !ok {
		return 0, fmt.Errorf("reaction %s not in reaction rate table", reaction)
	}
	return (mi*len(r.nuclides)+ni)*len(r.reactions) + ri, nil
}

// Get returns the stored rate for the given material, nuclide, and reaction.
func (r *ReactionRates) Get(material int, nuclide, reaction string) (float64, error) {
	off, err := r.offset(material, nuclide, reaction)
	if err != nil {
		return 0, err
	}
	return r.data[off], nil
}

// Set stores a rate for the given material, nuclide, and reaction.
func (r *ReactionRates) Set(material int, nuclide, reaction string, value float64) error {
	off, err := r.offset(material, nuclide, reaction)
	if err != nil {
		return err
	}
	r.data[off] = value
	return nil
}
