package cookbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdonalds/cookbook/pkg/errors"
)

func int64Ptr(v int64) *int64 { return &v }

func itemsPtr(items ...RequiredItem) *[]RequiredItem { return &items }

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		seed    []Entry
		payload *EntryPayload
		wantErr errors.ErrorCode
	}{
		{
			name:    "valid ingredient",
			payload: &EntryPayload{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(1)},
		},
		{
			name:    "zero cook time accepted",
			payload: &EntryPayload{Type: "ingredient", Name: "Water", CookTime: int64Ptr(0)},
		},
		{
			name:    "valid recipe",
			payload: &EntryPayload{Type: "recipe", Name: "Dough", RequiredItems: itemsPtr(RequiredItem{Name: "Flour", Quantity: 2})},
		},
		{
			name:    "recipe with empty required items",
			payload: &EntryPayload{Type: "recipe", Name: "Air", RequiredItems: itemsPtr()},
		},
		{
			name: "recipe may reference names not yet registered",
			payload: &EntryPayload{Type: "recipe", Name: "Bread",
				RequiredItems: itemsPtr(RequiredItem{Name: "NotYetThere", Quantity: 1})},
		},
		{
			name:    "unknown type",
			payload: &EntryPayload{Type: "pan", Name: "Flour", CookTime: int64Ptr(1)},
			wantErr: errors.ErrCodeInvalidType,
		},
		{
			name:    "empty type",
			payload: &EntryPayload{Name: "Flour", CookTime: int64Ptr(1)},
			wantErr: errors.ErrCodeInvalidType,
		},
		{
			name:    "recipe without requiredItems",
			payload: &EntryPayload{Type: "recipe", Name: "Dough"},
			wantErr: errors.ErrCodeMissingField,
		},
		{
			name:    "ingredient without cookTime",
			payload: &EntryPayload{Type: "ingredient", Name: "Flour"},
			wantErr: errors.ErrCodeMissingField,
		},
		{
			name:    "negative cook time",
			payload: &EntryPayload{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(-1)},
			wantErr: errors.ErrCodeInvalidCookTime,
		},
		{
			name:    "duplicate name",
			seed:    []Entry{&Ingredient{Name: "Flour", CookTime: 1}},
			payload: &EntryPayload{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(2)},
			wantErr: errors.ErrCodeDuplicateName,
		},
		{
			name: "duplicate required item names",
			payload: &EntryPayload{Type: "recipe", Name: "Mash",
				RequiredItems: itemsPtr(
					RequiredItem{Name: "potato", Quantity: 1},
					RequiredItem{Name: "potato", Quantity: 2},
				)},
			wantErr: errors.ErrCodeDuplicateRequiredItem,
		},
		{
			name:    "nil payload",
			payload: nil,
			wantErr: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			for _, e := range tt.seed {
				require.NoError(t, store.Put(e))
			}

			entry, err := ValidateEntry(store, tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, errors.CodeOf(err))
				assert.Nil(t, entry)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, entry)
			assert.Equal(t, tt.payload.Name, entry.EntryName())
		})
	}
}

func TestValidateEntryCheckOrder(t *testing.T) {
	// An entry with several violations reports the first failing check.
	store := NewStore()
	require.NoError(t, store.Put(&Ingredient{Name: "Flour", CookTime: 1}))

	// Invalid type wins over everything else.
	_, err := ValidateEntry(store, &EntryPayload{Type: "bogus", Name: "Flour"})
	assert.Equal(t, errors.ErrCodeInvalidType, errors.CodeOf(err))

	// Missing requiredItems wins over the duplicate name.
	_, err = ValidateEntry(store, &EntryPayload{Type: "recipe", Name: "Flour"})
	assert.Equal(t, errors.ErrCodeMissingField, errors.CodeOf(err))

	// Duplicate name wins over duplicate required items.
	_, err = ValidateEntry(store, &EntryPayload{Type: "recipe", Name: "Flour",
		RequiredItems: itemsPtr(
			RequiredItem{Name: "x", Quantity: 1},
			RequiredItem{Name: "x", Quantity: 1},
		)})
	assert.Equal(t, errors.ErrCodeDuplicateName, errors.CodeOf(err))
}

func TestValidateEntryIsPure(t *testing.T) {
	store := NewStore()

	_, err := ValidateEntry(store, &EntryPayload{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(1)})
	require.NoError(t, err)

	// Validation alone must not admit anything.
	assert.Equal(t, 0, store.Len())
}

func TestCreateEntry(t *testing.T) {
	store := NewStore()

	require.NoError(t, CreateEntry(store, &EntryPayload{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(1)}))
	assert.True(t, store.Contains("Flour"))

	// Second registration of the same name always fails.
	err := CreateEntry(store, &EntryPayload{Type: "recipe", Name: "Flour", RequiredItems: itemsPtr()})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateName, errors.CodeOf(err))
	assert.Equal(t, 1, store.Len())
}

func TestCreateEntryRejectionLeavesStoreUnchanged(t *testing.T) {
	store := NewStore()

	err := CreateEntry(store, &EntryPayload{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(-5)})
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}
