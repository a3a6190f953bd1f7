package logging

import (
	"sync"

	"resume-engine/internal/logging/types"
)

var (
	globalLogger Logger
	globalMu     sync.RWMutex
)

func init() {
	// Default logger so packages can log before Initialize runs
	logger := NewMultiLogger()
	factory := NewAdapterFactory()
	if adapter, err := factory.CreateAdapter(types.AdapterConfig{
		Name:    "stdout",
		Type:    "stdout",
		Enabled: true,
	}); err == nil {
		_ = logger.AddAdapter(adapter)
	}
	globalLogger = logger
}

// Initialize builds the global logger from adapter configurations. Disabled
// adapters are skipped; an adapter that fails to build is skipped rather than
// failing startup.
func Initialize(level string, adapterConfigs []types.AdapterConfig) (Logger, error) {
	logger := NewMultiLogger()
	logger.SetLevel(types.ParseLevel(level))

	factory := NewAdapterFactory()
	for _, ac := range adapterConfigs {
		if !ac.Enabled {
			continue
		}
		adapter, err := factory.CreateAdapter(ac)
		if err != nil {
			logger.Warn("Skipping logging adapter", map[string]interface{}{
				"adapter": ac.Name,
				"error":   err.Error(),
			})
			continue
		}
		if err := logger.AddAdapter(adapter); err != nil {
			return nil, err
		}
	}

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()

	return logger, nil
}

// GetGlobalLogger returns the process-wide logger
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}
