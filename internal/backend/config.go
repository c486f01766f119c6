package backend

import "fmt"

// Type selects which dataset store backs the dashboard.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

// IsValid reports whether t names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend:
		return true
	}
	return false
}

// Config holds everything needed to construct a backend.
type Config struct {
	Type Type

	// Seed CSV for the memory backend.
	DatasetPath string

	// SQLite backend settings.
	SQLiteDBPath string

	// AMQP settings for the sqlite backend's export pipeline. Optional:
	// an empty URL disables export messaging.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Validate checks backend-specific requirements.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return fmt.Errorf("SQLite database path is required for sqlite backend")
	}
	return nil
}
