package derive

import (
	"fmt"
	"maps"

	"github.com/Handfish/drizzle-effect/pkg/apperrors"
	"github.com/Handfish/drizzle-effect/pkg/schema"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// RefineFunc derives a column's validator from the complete auto-derived
// mapping. The mapping holds every column's pre-refinement, pre-mode
// validator, so a refinement can build on its own column's default type
// or a sibling's.
type RefineFunc func(fields map[string]schema.Schema) schema.Schema

// Refinement overrides the derived validator for one column: either a
// fixed schema that replaces the derived one outright, or a function
// that computes the replacement from the derived mapping.
//
// Mode wrapping (optional/nullable) is still applied on top of a Fixed
// refinement; a Derived refinement owns the full field shape and is
// used as-is.
type Refinement struct {
	fixed schema.Schema
	fn    RefineFunc
}

// Fixed returns a refinement that replaces the column's derived
// validator with s.
func Fixed(s schema.Schema) Refinement { return Refinement{fixed: s} }

// Derived returns a refinement computed from the auto-derived mapping.
func Derived(fn RefineFunc) Refinement { return Refinement{fn: fn} }

// mergeRefinements overlays refinements onto the auto-derived mapping.
// It returns the merged mapping and the set of function-refined columns,
// which are exempt from mode wrapping.
//
// Misuse fails fast: keys naming columns the table does not declare, and
// refinements contributing no validator, are programmer errors surfaced
// at derivation time.
func mergeRefinements(t *table.Table, auto map[string]schema.Schema, refinements map[string]Refinement) (map[string]schema.Schema, map[string]bool, error) {
	merged := maps.Clone(auto)

	// Every refinement function sees the same snapshot of the derived
	// mapping, never another refinement's output.
	view := maps.Clone(auto)

	funcRefined := make(map[string]bool, len(refinements))
	for name, ref := range refinements {
		if !t.Has(name) {
			return nil, nil, fmt.Errorf("table %s: refine %q: %w", t.Name(), name, apperrors.ErrUnknownColumn)
		}
		switch {
		case ref.fn != nil:
			s := ref.fn(view)
			if s == nil {
				return nil, nil, fmt.Errorf("table %s: refine %q: %w", t.Name(), name, apperrors.ErrNilRefinement)
			}
			merged[name] = s
			funcRefined[name] = true
		case ref.fixed != nil:
			merged[name] = ref.fixed
		default:
			return nil, nil, fmt.Errorf("table %s: refine %q: %w", t.Name(), name, apperrors.ErrNilRefinement)
		}
	}

	return merged, funcRefined, nil
}
