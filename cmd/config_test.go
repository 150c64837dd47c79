package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
schema:
  - schema/**/*.graphql
headers:
  Authorization: Bearer abc
generators:
  tsmock:
    out: ./src/mocks
    options:
      typesFile: ../types
      listElementCount: 2
      scalars:
        Date: date.past
`

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tsmock.yaml", []byte(testConfig), 0644))
	require.NoError(t, afero.WriteFile(fs, "/tsmock.json", []byte(`{"generators": {"tsmock": {"out": "mocks"}}}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/empty.yaml", nil, 0644))
	require.NoError(t, afero.WriteFile(fs, "/unknown.yaml", []byte("generate: {}"), 0644))

	t.Run("YAML", func(subT *testing.T) {
		cfg, err := loadConfig(fs, "/tsmock.yaml")
		require.NoError(subT, err)

		assert.Equal(subT, []string{"schema/**/*.graphql"}, cfg.Schema)
		assert.Equal(subT, map[string]string{"Authorization": "Bearer abc"}, cfg.Headers)

		gc := cfg.Generators["tsmock"]
		require.NotNil(subT, gc)
		assert.Equal(subT, "./src/mocks", gc.Out)
		assert.Equal(subT, map[string]interface{}{
			"typesFile":        "../types",
			"listElementCount": 2,
			"scalars":          map[string]interface{}{"Date": "date.past"},
		}, gc.Options)
	})

	t.Run("JSON", func(subT *testing.T) {
		cfg, err := loadConfig(fs, "/tsmock.json")
		require.NoError(subT, err)
		assert.Equal(subT, "mocks", cfg.Generators["tsmock"].Out)
	})

	t.Run("Empty", func(subT *testing.T) {
		cfg, err := loadConfig(fs, "/empty.yaml")
		require.NoError(subT, err)
		assert.Empty(subT, cfg.Generators)
	})

	t.Run("UnknownField", func(subT *testing.T) {
		_, err := loadConfig(fs, "/unknown.yaml")
		require.Error(subT, err)
		assert.Contains(subT, err.Error(), "invalid config /unknown.yaml")
	})

	t.Run("Missing", func(subT *testing.T) {
		_, err := loadConfig(fs, "/missing.yaml")
		assert.Error(subT, err)
	})
}

func TestConfig_Apply(t *testing.T) {
	fromFlags := newGenerator(nil, "tsmock_out", "tsmock_opt", "")
	fromFlags.outDir, fromFlags.enabled = "flagdir", true
	other := newGenerator(nil, "other_out", "other_opt", "")
	idle := newGenerator(nil, "idle_out", "idle_opt", "")

	cfg := &Config{Generators: map[string]*GeneratorConfig{
		"tsmock": {Out: "cfgdir", Options: map[string]interface{}{"prefix": "mock"}},
		"other":  {Out: "./other/"},
	}}
	require.NoError(t, cfg.apply([]*generator{fromFlags, other, idle}))

	assert.Equal(t, "flagdir", fromFlags.outDir)
	assert.Equal(t, map[string]interface{}{"prefix": "mock"}, fromFlags.fileOpts)
	assert.True(t, other.enabled)
	assert.Equal(t, "other", other.outDir)
	assert.False(t, idle.enabled)

	cfg = &Config{Generators: map[string]*GeneratorConfig{"missing": {Out: "x"}}}
	err := cfg.apply([]*generator{idle})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator in config: missing")
}
