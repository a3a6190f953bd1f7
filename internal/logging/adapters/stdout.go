package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"resume-engine/internal/logging/types"
)

// StdoutAdapter implements the LogAdapter interface for stdout output
type StdoutAdapter struct {
	name   string
	format string
	mu     sync.Mutex
}

// StdoutConfig represents configuration for the stdout adapter
type StdoutConfig struct {
	Format string `yaml:"format"` // json or text
}

// NewStdoutAdapter creates a new stdout adapter
func NewStdoutAdapter(name string, config StdoutConfig) *StdoutAdapter {
	return &StdoutAdapter{
		name:   name,
		format: config.Format,
	}
}

// Write writes a log entry to stdout
func (a *StdoutAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var output string
	var err error

	switch strings.ToLower(a.format) {
	case "text":
		output = formatText(entry)
	default:
		output, err = formatJSON(entry)
	}
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, output)
	return err
}

// Close closes the adapter (no-op for stdout)
func (a *StdoutAdapter) Close() error {
	return nil
}

// Health returns the health status of the adapter
func (a *StdoutAdapter) Health() error {
	return nil
}

// Name returns the name of the adapter
func (a *StdoutAdapter) Name() string {
	return a.name
}

func formatJSON(entry *types.LogEntry) (string, error) {
	logData := map[string]interface{}{
		"level":     entry.Level.String(),
		"message":   entry.Message,
		"timestamp": entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
	}
	for k, v := range entry.Fields {
		logData[k] = v
	}

	data, err := json.Marshal(logData)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatText(entry *types.LogEntry) string {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format("2006-01-02 15:04:05"))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")
	b.WriteString(entry.Message)
	for k, v := range entry.Fields {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	return b.String()
}
