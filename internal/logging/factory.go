package logging

import (
	"fmt"

	"resume-engine/internal/logging/adapters"
	"resume-engine/internal/logging/types"
)

// AdapterFactory creates logging adapters based on configuration
type AdapterFactory struct{}

// NewAdapterFactory creates a new adapter factory
func NewAdapterFactory() *AdapterFactory {
	return &AdapterFactory{}
}

// CreateAdapter creates a logging adapter based on the provided configuration
func (f *AdapterFactory) CreateAdapter(adapterConfig types.AdapterConfig) (types.LogAdapter, error) {
	switch adapterConfig.Type {
	case "stdout":
		return adapters.NewStdoutAdapter(adapterConfig.Name, adapters.StdoutConfig{
			Format: getStringOption(adapterConfig.Options, "format", "json"),
		}), nil
	case "file":
		return adapters.NewFileAdapter(adapterConfig.Name, adapters.FileConfig{
			FilePath:   getStringOption(adapterConfig.Options, "file_path", ""),
			Format:     getStringOption(adapterConfig.Options, "format", "json"),
			CreateDirs: getBoolOption(adapterConfig.Options, "create_dirs", true),
		})
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", adapterConfig.Type)
	}
}

func getStringOption(options map[string]interface{}, key, defaultValue string) string {
	if options == nil {
		return defaultValue
	}
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if options == nil {
		return defaultValue
	}
	if v, ok := options[key].(bool); ok {
		return v
	}
	return defaultValue
}
