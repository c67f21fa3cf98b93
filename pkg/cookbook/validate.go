package cookbook

import (
	"github.com/devdonalds/cookbook/pkg/errors"
)

// ValidateEntry applies the admission checks to a proposed entry and, on
// success, returns the constructed Entry ready for Store.Put. It is a pure
// decision function: the store is only consulted, never modified.
//
// Checks are applied in order, first failure wins:
//  1. the declared type is a supported variant
//  2. recipes carry a requiredItems field (an empty list is fine)
//  3. ingredients carry a cookTime, and it is not negative
//  4. the name is not already taken
//  5. a recipe's required items contain no duplicate names
func ValidateEntry(store *Store, p *EntryPayload) (Entry, error) {
	if p == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "entry payload is empty")
	}

	t := EntryType(p.Type)
	if !t.IsValid() {
		return nil, errors.Newf(errors.ErrCodeInvalidType,
			"entry type must be one of %v, got %q", SupportedEntryTypes(), p.Type)
	}

	if t == EntryTypeRecipe && p.RequiredItems == nil {
		return nil, errors.New(errors.ErrCodeMissingField,
			"a recipe requires a requiredItems field")
	}

	if t == EntryTypeIngredient {
		if p.CookTime == nil {
			return nil, errors.New(errors.ErrCodeMissingField,
				"an ingredient requires a cookTime field")
		}
		if *p.CookTime < 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidCookTime,
				"cookTime must be greater or equal to 0, got %d", *p.CookTime)
		}
	}

	if store.Contains(p.Name) {
		return nil, errors.Newf(errors.ErrCodeDuplicateName,
			"an entry named %q already exists", p.Name)
	}

	if t == EntryTypeRecipe {
		if dup, ok := firstDuplicateName(*p.RequiredItems); ok {
			return nil, errors.Newf(errors.ErrCodeDuplicateRequiredItem,
				"requiredItems lists %q more than once", dup)
		}
	}

	switch t {
	case EntryTypeIngredient:
		return &Ingredient{Name: p.Name, CookTime: *p.CookTime}, nil
	case EntryTypeRecipe:
		items := make([]RequiredItem, len(*p.RequiredItems))
		copy(items, *p.RequiredItems)
		return &Recipe{Name: p.Name, RequiredItems: items}, nil
	default:
		// Unreachable: IsValid covers the variants above.
		return nil, errors.Newf(errors.ErrCodeInvalidType, "unsupported entry type %q", t)
	}
}

// firstDuplicateName returns the first required-item name that appears more
// than once, by exact string equality.
func firstDuplicateName(items []RequiredItem) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Name]; ok {
			return item.Name, true
		}
		seen[item.Name] = struct{}{}
	}
	return "", false
}

// CreateEntry validates a proposed entry and admits it into the store.
// The store is left unchanged when validation fails.
func CreateEntry(store *Store, p *EntryPayload) error {
	entry, err := ValidateEntry(store, p)
	if err != nil {
		entryRejections.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return err
	}

	// Put re-checks uniqueness under the write lock, so a concurrent
	// admission of the same name still fails cleanly.
	if err := store.Put(entry); err != nil {
		entryRejections.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return err
	}

	entriesAdmitted.WithLabelValues(string(entry.EntryType())).Inc()
	return nil
}
