package workspace

import (
	"encoding/json"
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/lsp/types"
)

// DidChangeConfiguration handles the workspace/didChangeConfiguration notification.
// A change to the schema source resets the cache, so the next hover
// loads from the new source.
func DidChangeConfiguration(req *types.RequestContext, params *protocol.DidChangeConfigurationParams) error {
	log.Info("Configuration changed")

	config, err := parseConfiguration(params.Settings)
	if err != nil {
		log.Warn("failed to parse configuration: %v", err)
		return nil // keep the current configuration
	}

	previous := req.Server.GetConfig()
	req.Server.SetConfig(config)

	if config.SchemaFile != previous.SchemaFile || config.SchemaURL != previous.SchemaURL {
		log.Info("Schema source changed, resetting schema cache")
		req.Server.ConfigureSchemaSource()
	}

	return nil
}

// parseConfiguration parses the configuration from the settings
func parseConfiguration(settings any) (types.ServerConfig, error) {
	config := types.DefaultConfig()

	if settings == nil {
		return config, nil
	}

	// Settings come as a nested object: { "idfLanguageServer": { ... } }
	settingsMap, ok := settings.(map[string]any)
	if !ok {
		return config, fmt.Errorf("settings is not a map")
	}

	var ourSettings any
	if val, exists := settingsMap["idfLanguageServer"]; exists {
		ourSettings = val
	} else if val, exists := settingsMap["idf-language-server"]; exists {
		ourSettings = val
	} else {
		// No configuration for us, use defaults
		return config, nil
	}

	// Convert to JSON and back to parse into struct
	jsonBytes, err := json.Marshal(ourSettings)
	if err != nil {
		return config, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, &config); err != nil {
		return config, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return config, nil
}
