package scenario_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/scenario"
)

// TestDecode_YAMLAssignsIDs fills missing IDs with UUIDs and keeps given ones.
func TestDecode_YAMLAssignsIDs(t *testing.T) {
	src := `
name: Heist
capacity: 10
items:
  - {id: vase, name: Vase, weight: 4, value: 40}
  - {name: Painting, weight: 6, value: 30}
`
	sc, err := scenario.Decode(strings.NewReader(src), scenario.YAML)
	require.NoError(t, err)

	assert.Equal(t, "Heist", sc.Name)
	assert.Equal(t, 10, sc.Capacity)
	require.Len(t, sc.Items, 2)
	assert.Equal(t, "vase", sc.Items[0].ID)
	_, err = uuid.Parse(sc.Items[1].ID)
	assert.NoError(t, err, "missing ID becomes a UUID")
	assert.Equal(t, 30.0, sc.Items[1].Value)
}

// TestDecode_JSONFieldNames reads the interoperable item field names.
func TestDecode_JSONFieldNames(t *testing.T) {
	src := `{"capacity": 5, "items": [{"id": "a", "name": "Apple", "weight": 1, "value": 2.5}]}`

	sc, err := scenario.Decode(strings.NewReader(src), scenario.JSON)
	require.NoError(t, err)
	assert.Equal(t, []core.Item{{ID: "a", Name: "Apple", Weight: 1, Value: 2.5}}, sc.Items)
}

// TestDecode_Invalid rejects malformed documents and invalid instances.
func TestDecode_Invalid(t *testing.T) {
	_, err := scenario.Decode(strings.NewReader(`capacity: -4`), scenario.YAML)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = scenario.Decode(strings.NewReader(`{"capacity":`), scenario.JSON)
	assert.Error(t, err)

	_, err = scenario.Decode(strings.NewReader(``), scenario.Format("toml"))
	assert.ErrorIs(t, err, scenario.ErrUnknownFormat)
}

// TestSaveLoad writes the default scenario in both formats and reads it back.
func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"demo.yaml", "demo.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, scenario.Save(path, scenario.Default()))

		got, err := scenario.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, scenario.Default(), got, name)
	}
}

// TestEncode_JSONShape keeps the documented field names on the wire.
func TestEncode_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scenario.Encode(&buf, scenario.JSON, scenario.Default()))

	for _, field := range []string{`"capacity"`, `"items"`, `"id"`, `"name"`, `"weight"`, `"value"`} {
		assert.Contains(t, buf.String(), field)
	}
}

// TestLoad_Errors covers unknown extensions and missing files.
func TestLoad_Errors(t *testing.T) {
	_, err := scenario.Load("items.csv")
	assert.ErrorIs(t, err, scenario.ErrUnknownFormat)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.ErrorIs(t, scenario.Save(filepath.Join(t.TempDir(), "x.txt"), scenario.Default()), scenario.ErrUnknownFormat)
}
