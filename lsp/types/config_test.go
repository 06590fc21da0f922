package types_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enerdocs.dev/idfls/lsp/types"
)

func TestDefaultConfig(t *testing.T) {
	config := types.DefaultConfig()
	assert.Empty(t, config.SchemaFile)
	assert.Empty(t, config.SchemaURL)
}

func TestLoadWorkspaceConfig(t *testing.T) {
	t.Run("reads idfls.yaml from the root", func(t *testing.T) {
		dir := t.TempDir()
		content := "schemaFile: ./schemas/idd-schema.json\nschemaURL: https://example.com/idd-schema.json\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, types.WorkspaceConfigFile), []byte(content), 0o644))

		config, err := types.LoadWorkspaceConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "./schemas/idd-schema.json", config.SchemaFile)
		assert.Equal(t, "https://example.com/idd-schema.json", config.SchemaURL)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		config, err := types.LoadWorkspaceConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig(), config)
	})

	t.Run("empty root returns defaults", func(t *testing.T) {
		config, err := types.LoadWorkspaceConfig("")
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig(), config)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, types.WorkspaceConfigFile), []byte("schemaFile: [unclosed"), 0o644))

		config, err := types.LoadWorkspaceConfig(dir)
		require.Error(t, err)
		assert.Equal(t, types.DefaultConfig(), config)
	})
}
