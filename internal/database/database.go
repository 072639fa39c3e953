package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/securecheck/securecheck-webserver/internal/database/repository"
	"github.com/securecheck/securecheck-webserver/internal/database/usecase"
	_ "modernc.org/sqlite"
)

// A DatabaseClient holds the pooled connection to the traffic store and hands out
// use cases built on it.
// Whoever uses this struct to establish a connection to the database is responsible
// for calling the Disconnect() method to gracefully close the pool.
type DatabaseClient struct {
	db                   *sql.DB
	stopRecordRepository *repository.SQLStopRecordRepository
	catalogRepository    *repository.SQLCatalogRepository
}

// NewDatabaseClient opens a pool for driver ("mysql" or "sqlite") and verifies it
// with a ping. maxOpen caps the number of open connections; zero leaves it unlimited.
func NewDatabaseClient(ctx context.Context, driver string, dsn string, table string, maxOpen int) (*DatabaseClient, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s database: %w", driver, err)
	}

	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach %s database: %w", driver, err)
	}

	client, err := NewDatabaseClientFromDB(db, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return client, nil
}

// NewDatabaseClientFromDB wraps an already opened pool.
func NewDatabaseClientFromDB(db *sql.DB, table string) (*DatabaseClient, error) {
	stopRecordRepository, err := repository.NewSQLStopRecordRepository(db, table)
	if err != nil {
		return nil, fmt.Errorf("could not create stopRecordRepository: %w", err)
	}

	catalogRepository, err := repository.NewSQLCatalogRepository(db)
	if err != nil {
		return nil, fmt.Errorf("could not create catalogRepository: %w", err)
	}

	return &DatabaseClient{
		db:                   db,
		stopRecordRepository: stopRecordRepository,
		catalogRepository:    catalogRepository,
	}, nil
}

func (client *DatabaseClient) StopRecordUseCase() *usecase.StopRecordUseCase {
	return usecase.NewStopRecordUseCase(client.stopRecordRepository)
}

func (client *DatabaseClient) CatalogUseCase() *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(client.catalogRepository)
}

// DB exposes the underlying pool.
func (client *DatabaseClient) DB() *sql.DB {
	return client.db
}

// Table returns the traffic table the client reads from.
func (client *DatabaseClient) Table() string {
	return client.stopRecordRepository.Table()
}

func (client *DatabaseClient) Ping(ctx context.Context) error {
	return client.db.PingContext(ctx)
}

func (client *DatabaseClient) Disconnect() error {
	if err := client.db.Close(); err != nil {
		return fmt.Errorf("failed to close database pool: %w", err)
	}
	return nil
}
