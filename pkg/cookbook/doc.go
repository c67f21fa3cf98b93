// Package cookbook implements the cookbook model and recipe resolution
// engine: named entries (base ingredients and composite recipes), the
// admission rules for new entries, and the recursive expansion of a recipe
// into base-ingredient totals with a summed cook time.
//
// # Core Types
//
// Entry: a named object, either an *Ingredient or a *Recipe
//
//	type Ingredient struct {
//	    Name     string
//	    CookTime int64  // non-negative, unit-less
//	}
//
//	type Recipe struct {
//	    Name          string
//	    RequiredItems []RequiredItem  // (name, quantity) references
//	}
//
// Store: the append-only, name-keyed registry. Names are globally unique
// and matched case-sensitively. Required-item names need not exist at
// creation time; existence is checked lazily during resolution.
//
// Resolver: depth-first expansion with a running multiplier. A recipe
// reference is replaced by its required items scaled by quantity until only
// base ingredients remain, with per-ingredient quantities summed across all
// paths. Cyclic references are rejected via a visited set of names on the
// current path, and depth/operation ceilings bound adversarial inputs.
//
// # Usage
//
//	store := cookbook.NewStore()
//	resolver := cookbook.NewResolver(store)
//
//	err := cookbook.CreateEntry(store, &cookbook.EntryPayload{
//	    Type:     "ingredient",
//	    Name:     "Flour",
//	    CookTime: &flourTime,
//	})
//
//	summary, err := cookbook.Summarize(store, resolver, "Bread")
//
// # Error Handling
//
// Every failure carries a distinct code from pkg/errors (INVALID_TYPE,
// MISSING_FIELD, INVALID_COOK_TIME, DUPLICATE_NAME, DUPLICATE_REQUIRED_ITEM,
// NOT_FOUND, WRONG_TYPE, MISSING_DEPENDENCY, CYCLIC_DEPENDENCY,
// EXPANSION_LIMIT_EXCEEDED). All errors are deterministic content errors:
// a failed operation leaves the store unchanged and is never retried.
//
// # Observability
//
// The package exports Prometheus metrics: entries admitted by type,
// rejections by code, resolve duration, and expansion operation counts.
package cookbook
