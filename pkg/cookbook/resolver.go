package cookbook

import (
	"math"
	"time"

	"github.com/devdonalds/cookbook/pkg/defaults"
	"github.com/devdonalds/cookbook/pkg/errors"
)

// Resolver flattens a recipe's requirement graph into base-ingredient
// totals. Expansion is depth-first with a running multiplier; quantities
// for the same ingredient are summed across all paths.
type Resolver struct {
	store    *Store
	maxDepth int
	maxOps   int
}

// ResolverOption is a functional option for configuring Resolver instances.
type ResolverOption func(*Resolver)

// WithMaxDepth returns an option that overrides the maximum recipe nesting
// depth.
func WithMaxDepth(depth int) ResolverOption {
	return func(r *Resolver) {
		r.maxDepth = depth
	}
}

// WithMaxOps returns an option that overrides the maximum number of
// required-item expansions for a single query.
func WithMaxOps(ops int) ResolverOption {
	return func(r *Resolver) {
		r.maxOps = ops
	}
}

// NewResolver creates a Resolver over the given store with the provided
// options.
func NewResolver(store *Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:    store,
		maxDepth: defaults.ResolverMaxDepth,
		maxOps:   defaults.ResolverMaxOps,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// expansion carries the mutable state of one resolve call.
type expansion struct {
	// totals is the insert-or-add accumulator of base-ingredient quantities.
	totals map[string]int64

	// path holds the recipe names on the current expansion path, used to
	// reject cyclic references.
	path map[string]struct{}

	ops int
}

// Resolve expands a recipe into its base-ingredient totals.
//
// Failure modes, each carrying a distinct code and leaving no partial
// result: a required item with no store entry (MISSING_DEPENDENCY), a
// requirement path that revisits a recipe (CYCLIC_DEPENDENCY), and
// exceeding the depth, operation, or arithmetic ceilings
// (EXPANSION_LIMIT_EXCEEDED).
func (r *Resolver) Resolve(recipe *Recipe) (map[string]int64, error) {
	if recipe == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "recipe is nil")
	}

	start := time.Now()

	exp := &expansion{
		totals: make(map[string]int64),
		path:   map[string]struct{}{recipe.Name: {}},
	}

	if err := r.expand(recipe, 1, 0, exp); err != nil {
		return nil, err
	}

	resolveDuration.Observe(time.Since(start).Seconds())
	expansionOps.Observe(float64(exp.ops))
	return exp.totals, nil
}

// expand walks one recipe's required items at the given multiplier,
// accumulating into exp.
func (r *Resolver) expand(recipe *Recipe, multiplier int64, depth int, exp *expansion) error {
	if depth > r.maxDepth {
		return errors.Newf(errors.ErrCodeExpansionLimit,
			"recipe nesting exceeds %d levels", r.maxDepth)
	}

	for _, item := range recipe.RequiredItems {
		exp.ops++
		if exp.ops > r.maxOps {
			return errors.Newf(errors.ErrCodeExpansionLimit,
				"expansion exceeds %d operations", r.maxOps)
		}

		entry, ok := r.store.Get(item.Name)
		if !ok {
			return errors.Newf(errors.ErrCodeMissingDependency,
				"required item %q is not in the cookbook", item.Name)
		}

		effective, ok := mulInt64(item.Quantity, multiplier)
		if !ok {
			return errors.Newf(errors.ErrCodeExpansionLimit,
				"quantity overflow expanding %q", item.Name)
		}

		switch e := entry.(type) {
		case *Ingredient:
			total, ok := addInt64(exp.totals[e.Name], effective)
			if !ok {
				return errors.Newf(errors.ErrCodeExpansionLimit,
					"quantity overflow accumulating %q", e.Name)
			}
			exp.totals[e.Name] = total

		case *Recipe:
			if _, onPath := exp.path[e.Name]; onPath {
				return errors.Newf(errors.ErrCodeCyclicDependency,
					"recipe %q is part of a requirement cycle", e.Name)
			}
			exp.path[e.Name] = struct{}{}
			if err := r.expand(e, effective, depth+1, exp); err != nil {
				return err
			}
			delete(exp.path, e.Name)

		default:
			return errors.Newf(errors.ErrCodeInternal,
				"unknown entry variant for %q", item.Name)
		}
	}

	return nil
}

// mulInt64 multiplies two non-negative quantities, reporting overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a < 0 || b < 0 {
		// Quantities are non-negative by contract; treat anything else as
		// out of range rather than guessing at semantics.
		return 0, false
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// addInt64 adds two non-negative quantities, reporting overflow.
func addInt64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}
