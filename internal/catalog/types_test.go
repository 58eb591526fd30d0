package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	require.True(t, CategoryResin.Valid())
	require.True(t, CategoryFilament.Valid())
	require.False(t, Category("metal").Valid())

	require.Equal(t, "Standard", CategoryResin.DefaultType())
	require.Equal(t, "PLA", CategoryFilament.DefaultType())

	require.Equal(t, "resins_db.json", CategoryResin.FileName())
	require.Equal(t, "filaments_db.json", CategoryFilament.FileName())
}

func TestKeyOfIsCaseInsensitive(t *testing.T) {
	require.Equal(t, KeyOf("Anycubic", "Standard Resin"), KeyOf("ANYCUBIC", "standard resin"))
	require.NotEqual(t, KeyOf("Anycubic", "Standard Resin"), KeyOf("Anycubic", "Standard Resin V2"))

	e := Entry{Brand: "ELEGOO", Name: "Mars Resin"}
	require.Equal(t, KeyOf("elegoo", "mars resin"), e.Key())
}

func TestMaterialType(t *testing.T) {
	require.Equal(t, "Tough", Entry{Type: "Tough"}.MaterialType(CategoryResin))
	require.Equal(t, "PETG", Entry{Material: "PETG"}.MaterialType(CategoryFilament))
	require.Equal(t, "Standard", Entry{}.MaterialType(CategoryResin))
	require.Equal(t, "PLA", Entry{}.MaterialType(CategoryFilament))
}
