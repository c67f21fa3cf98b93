package cookbook

import (
	"github.com/devdonalds/cookbook/pkg/errors"
)

// TotalCookTime derives the total preparation time from a flattened
// ingredient multiset: the sum of cookTime * quantity over every pair.
// Returns 0 for an empty mapping.
//
// Every key is expected to resolve to an existing ingredient; the resolver
// already validated existence, so a miss here means the store mutated in a
// way the core forbids and is reported as internal.
func TotalCookTime(store *Store, ingredients map[string]int64) (int64, error) {
	var total int64
	for name, quantity := range ingredients {
		entry, ok := store.Get(name)
		if !ok {
			return 0, errors.Newf(errors.ErrCodeInternal,
				"resolved ingredient %q disappeared from the store", name)
		}
		ing, ok := entry.(*Ingredient)
		if !ok {
			return 0, errors.Newf(errors.ErrCodeInternal,
				"resolved entry %q is not an ingredient", name)
		}

		contribution, ok := mulInt64(ing.CookTime, quantity)
		if !ok {
			return 0, errors.Newf(errors.ErrCodeExpansionLimit,
				"cook time overflow for %q", name)
		}
		total, ok = addInt64(total, contribution)
		if !ok {
			return 0, errors.New(errors.ErrCodeExpansionLimit,
				"total cook time overflow")
		}
	}
	return total, nil
}

// Summarize flattens the named recipe into its base ingredients and total
// cook time.
//
// Fails with NOT_FOUND when no entry has that name and WRONG_TYPE when the
// entry is an ingredient; resolution errors propagate unchanged. Reads do
// not mutate the store, so repeated calls on an unchanged store yield
// identical results.
func Summarize(store *Store, resolver *Resolver, name string) (*Summary, error) {
	entry, ok := store.Get(name)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeNotFound,
			"no entry named %q in the cookbook", name)
	}

	recipe, ok := entry.(*Recipe)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeWrongType,
			"entry %q is an ingredient, summaries are defined only for recipes", name)
	}

	ingredients, err := resolver.Resolve(recipe)
	if err != nil {
		return nil, err
	}

	cookTime, err := TotalCookTime(store, ingredients)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Name:        name,
		CookTime:    cookTime,
		Ingredients: ingredients,
	}, nil
}
