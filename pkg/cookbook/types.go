package cookbook

// EntryType identifies the variant of a cookbook entry.
type EntryType string

const (
	// EntryTypeIngredient is a base ingredient, a resolution leaf with a
	// fixed cook time and no further requirements.
	EntryTypeIngredient EntryType = "ingredient"

	// EntryTypeRecipe is a composite entry built from required items.
	EntryTypeRecipe EntryType = "recipe"
)

// IsValid reports whether the entry type is a supported variant.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeIngredient, EntryTypeRecipe:
		return true
	default:
		return false
	}
}

// String returns the string representation of the entry type.
func (t EntryType) String() string {
	return string(t)
}

// SupportedEntryTypes returns a list of all supported entry types.
func SupportedEntryTypes() []string {
	return []string{
		string(EntryTypeIngredient),
		string(EntryTypeRecipe),
	}
}

// Entry is a named cookbook object, either an *Ingredient or a *Recipe.
// The name is the sole identity key, matched case-sensitively.
type Entry interface {
	EntryName() string
	EntryType() EntryType
}

// Ingredient is a terminal node in the resolution graph.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	CookTime int64  `json:"cookTime" yaml:"cookTime"`
}

// EntryName implements Entry.
func (i *Ingredient) EntryName() string { return i.Name }

// EntryType implements Entry.
func (i *Ingredient) EntryType() EntryType { return EntryTypeIngredient }

// RequiredItem is a (name, quantity) reference from a recipe to another
// entry. The name is resolved at query time, not at creation time.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// Recipe is a composite entry whose required items may reference both
// ingredients and other recipes, nested arbitrarily.
type Recipe struct {
	Name          string         `json:"name" yaml:"name"`
	RequiredItems []RequiredItem `json:"requiredItems" yaml:"requiredItems"`
}

// EntryName implements Entry.
func (r *Recipe) EntryName() string { return r.Name }

// EntryType implements Entry.
func (r *Recipe) EntryType() EntryType { return EntryTypeRecipe }

// EntryPayload is the wire shape of a proposed entry before admission.
// CookTime and RequiredItems are pointers so an absent field can be
// distinguished from a zero value during validation.
type EntryPayload struct {
	Type          string          `json:"type" yaml:"type"`
	Name          string          `json:"name" yaml:"name"`
	CookTime      *int64          `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	RequiredItems *[]RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
}

// Summary is the flattened view of a recipe: total cook time and the
// multiset of base ingredients required to make it.
type Summary struct {
	Name        string           `json:"name" yaml:"name"`
	CookTime    int64            `json:"cookTime" yaml:"cookTime"`
	Ingredients map[string]int64 `json:"ingredients" yaml:"ingredients"`
}
