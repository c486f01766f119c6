// Package backend constructs dataset stores from configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"salesboard/internal/adapters"
	"salesboard/internal/amqp"
	"salesboard/internal/services"
	"salesboard/internal/storage"
	"salesboard/internal/store/memory"
)

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// DefaultFactory implements Factory.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	// AMQP is optional; without it imports stay local and the worker's
	// catch-up pass handles export.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without export messaging", "error", err)
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	var publisher services.SyncPublisher
	if amqpClient != nil {
		publisher = amqpClient
	}
	importService := services.NewImportService(repo, publisher)
	adapter := adapters.NewSQLiteAdapter(repo, importService)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", amqpClient != nil)

	return &Result{
		Backend: adapter,
		Cleanup: importService.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*Result, error) {
	st := memory.NewFromFile(config.DatasetPath)

	f.logger.Info("Initialized memory backend", "dataset_path", config.DatasetPath)

	return &Result{
		Backend: st,
		Cleanup: nil,
	}, nil
}
