package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/workbench/tokens"
)

func TestDefaultEngine(t *testing.T) {
	e := DefaultEngine()

	assert.Equal(t, []string{"One Dark", "One Light"}, e.Names())
	assert.Equal(t, 2, e.Len())

	active, err := e.Active()
	require.NoError(t, err)
	assert.Equal(t, "One Dark", active.Name)
	assert.Equal(t, tokens.Dark, active.Appearance)
}

func TestEngineSwitch(t *testing.T) {
	e := DefaultEngine()

	require.NoError(t, e.Switch("One Light"))
	active, err := e.Active()
	require.NoError(t, err)
	assert.Equal(t, "One Light", active.Name)

	err = e.Switch("Solarized")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngineNoActiveTheme(t *testing.T) {
	e := NewEngine()

	_, err := e.Active()
	assert.ErrorIs(t, err, ErrNoActiveTheme)

	err = e.SetToken("text.default", "#ffffff")
	assert.ErrorIs(t, err, ErrNoActiveTheme)

	_, err = e.ExportJSON()
	assert.ErrorIs(t, err, ErrNoActiveTheme)
}

func TestEngineRegisterOverwrites(t *testing.T) {
	e := NewEngine()

	custom := tokens.OneDark()
	custom.Name = "Custom"
	e.Register(custom)

	custom2 := tokens.OneLight()
	custom2.Name = "Custom"
	e.Register(custom2)

	assert.Equal(t, 1, e.Len())
	got, err := e.Get("Custom")
	require.NoError(t, err)
	assert.Equal(t, tokens.Light, got.Appearance)
}

func TestEngineRegisterIsolation(t *testing.T) {
	e := NewEngine()
	set := tokens.OneDark()
	e.Register(set)

	// Mutating the caller's set must not leak into the engine.
	set.Text.Default = tokens.MustColor("#000000ff")

	got, err := e.Get("One Dark")
	require.NoError(t, err)
	assert.NotEqual(t, set.Text.Default, got.Text.Default)
}

func TestEngineRemove(t *testing.T) {
	e := DefaultEngine()

	assert.True(t, e.Remove("One Light"))
	assert.False(t, e.Remove("One Light"))
	assert.Equal(t, []string{"One Dark"}, e.Names())

	// Removing the active theme's entry keeps the active snapshot alive.
	assert.True(t, e.Remove("One Dark"))
	active, err := e.Active()
	require.NoError(t, err)
	assert.Equal(t, "One Dark", active.Name)
}

func TestEngineSetToken(t *testing.T) {
	e := DefaultEngine()

	require.NoError(t, e.SetToken("text.default", "#ff0000"))
	active, err := e.Active()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000ff", active.Text.Default.Hex())

	// The registered One Dark entry is untouched.
	stored, err := e.Get("One Dark")
	require.NoError(t, err)
	assert.NotEqual(t, "#ff0000ff", stored.Text.Default.Hex())

	err = e.SetToken("text.bogus", "#ff0000")
	assert.ErrorIs(t, err, tokens.ErrUnknownPath)
}

func TestEngineImportExport(t *testing.T) {
	e := DefaultEngine()

	data, err := e.ExportJSON()
	require.NoError(t, err)

	set, err := e.ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "One Dark", set.Name)

	yamlData, err := e.ExportYAML()
	require.NoError(t, err)
	set, err = e.ImportYAML(yamlData)
	require.NoError(t, err)
	assert.Equal(t, "One Dark", set.Name)

	_, err = e.ImportJSON([]byte(`{"appearance":"dark"}`))
	assert.Error(t, err)

	_, err = e.ImportJSON([]byte(`not json`))
	assert.Error(t, err)
}
