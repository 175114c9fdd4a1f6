package basket_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basketsplit/basket"
)

func TestLoadConfig_Flat(t *testing.T) {
	cfg, err := basket.LoadConfig("testdata/config.json")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Courier", "Express Collection", "In-store pick-up", "Mailbox delivery",
		"Next day shipping", "Pick-up point", "Same day delivery",
	}, cfg.Labels())
	// Products are inverted in sorted order.
	assert.Equal(t, []string{"Carrots (1kg)", "Cocoa Butter", "Steak (Porterhouse)", "Tart - Raisin And Pecan"},
		cfg.Groups["Express Collection"])

	category, ok := cfg.CategoryOf("Gift Card")
	assert.True(t, ok, "products without groups stay known")
	assert.Equal(t, "Gift Card", category)
}

func TestLoadConfig_StructuredShapesAgree(t *testing.T) {
	fromYAML, err := basket.LoadConfig("testdata/config.yaml")
	require.NoError(t, err)
	fromJSON, err := basket.LoadConfig("testdata/config-structured.json")
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, []string{"dairy", "bakery", "snacks"}, fromYAML.Groups["Express Collection"])

	category, ok := fromYAML.CategoryOf("Cola")
	assert.True(t, ok)
	assert.Equal(t, "beverages", category)

	// A category name resolves to itself.
	category, ok = fromYAML.CategoryOf("snacks")
	assert.True(t, ok)
	assert.Equal(t, "snacks", category)

	_, ok = fromYAML.CategoryOf("Caviar")
	assert.False(t, ok)
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := basket.LoadConfig("testdata/notFound.json")
	require.ErrorIs(t, err, basket.ErrConfigNotFound)
	assert.NotErrorIs(t, err, basket.ErrConfigInvalid)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for _, name := range []string{"invalid.json", "wrong-shape.json"} {
		t.Run(name, func(t *testing.T) {
			_, err := basket.LoadConfig(filepath.Join("testdata", name))
			require.ErrorIs(t, err, basket.ErrConfigInvalid)
			assert.NotErrorIs(t, err, basket.ErrConfigNotFound)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format basket.Format
	}{
		{name: "top-level array", doc: `["Courier"]`, format: basket.FormatJSON},
		{name: "null", doc: `null`, format: basket.FormatJSON},
		{name: "empty object", doc: `{}`, format: basket.FormatJSON},
		{name: "empty yaml", doc: ``, format: basket.FormatYAML},
		{name: "group not a list", doc: `{"groups": {"Courier": "snacks"}}`, format: basket.FormatJSON},
		{name: "numeric category", doc: "groups:\n  Courier: [1, 2]\n", format: basket.FormatYAML},
		{name: "empty category", doc: `{"groups": {"Courier": [""]}}`, format: basket.FormatJSON},
		{name: "blank label", doc: `{"groups": {" ": ["snacks"]}}`, format: basket.FormatJSON},
		{name: "catalog not an object", doc: `{"groups": {"Courier": ["snacks"]}, "catalog": ["Chips"]}`, format: basket.FormatJSON},
		{name: "catalog value not a string", doc: `{"groups": {"Courier": ["snacks"]}, "catalog": {"Chips": 1}}`, format: basket.FormatJSON},
		{name: "empty catalog category", doc: `{"groups": {"Courier": ["snacks"]}, "catalog": {"Chips": ""}}`, format: basket.FormatJSON},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := basket.ParseConfig([]byte(tc.doc), tc.format)
			assert.ErrorIs(t, err, basket.ErrConfigInvalid)
		})
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, basket.FormatYAML, basket.FormatOf("a/b/config.YML"))
	assert.Equal(t, basket.FormatYAML, basket.FormatOf("config.yaml"))
	assert.Equal(t, basket.FormatJSON, basket.FormatOf("config.json"))
	assert.Equal(t, basket.FormatJSON, basket.FormatOf("config"))
}

func TestLoadConfig_ReadError(t *testing.T) {
	// A directory exists but cannot be read as a file.
	dir := t.TempDir()
	_, err := basket.LoadConfig(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, basket.ErrConfigNotFound)
}

func TestParseConfig_YAMLNumericKeys(t *testing.T) {
	flat, err := basket.ParseConfig([]byte("\"Milk\": [Courier]\n12345: [Courier, Pick-up point]\n"), basket.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"12345", "Milk"}, flat.Groups["Courier"])
	assert.Equal(t, []string{"12345"}, flat.Groups["Pick-up point"])
	category, ok := flat.CategoryOf("12345")
	assert.True(t, ok)
	assert.Equal(t, "12345", category)

	structured, err := basket.ParseConfig([]byte("groups:\n  1: [a]\n  Courier: [b]\ncatalog:\n  42: a\n"), basket.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"1": {"a"}, "Courier": {"b"}}, structured.Groups)
	assert.Equal(t, map[string]string{"42": "a"}, structured.Catalog)

	// The same flat document as JSON loads identically.
	fromJSON, err := basket.ParseConfig([]byte(`{"Milk": ["Courier"], "12345": ["Courier", "Pick-up point"]}`), basket.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, flat)
}
