package types

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WorkspaceConfigFile is the optional per-workspace configuration file,
// looked up relative to the workspace root.
const WorkspaceConfigFile = "idfls.yaml"

// ServerConfig represents the server configuration
type ServerConfig struct {
	// SchemaFile is a path to a compact IDD schema JSON file.
	// Relative paths are resolved against the workspace root.
	SchemaFile string `json:"schemaFile" yaml:"schemaFile"`

	// SchemaURL is an HTTP(S) source for the compact IDD schema JSON.
	// SchemaFile takes precedence when both are set.
	SchemaURL string `json:"schemaURL" yaml:"schemaURL"`
}

// DefaultConfig returns the default server configuration.
// Both schema sources empty means the workspace is searched for a
// schema file instead.
func DefaultConfig() ServerConfig {
	return ServerConfig{}
}

// LoadWorkspaceConfig reads idfls.yaml from the workspace root.
// A missing file is not an error: the defaults are returned.
func LoadWorkspaceConfig(rootPath string) (ServerConfig, error) {
	config := DefaultConfig()
	if rootPath == "" {
		return config, nil
	}

	path := filepath.Join(rootPath, WorkspaceConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}
