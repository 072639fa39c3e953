package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/securecheck/securecheck-webserver/internal/models"
)

// CatalogRepository runs parameterless statements and returns their rows as text.
type CatalogRepository interface {
	RunQuery(ctx context.Context, statement string) (*models.QueryResult, error)
}

type SQLCatalogRepository struct {
	db *sql.DB
}

func NewSQLCatalogRepository(db *sql.DB) (*SQLCatalogRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("could not create catalog repository: nil database handle")
	}
	return &SQLCatalogRepository{db: db}, nil
}

// RunQuery executes statement exactly as given, with no arguments.
func (repo *SQLCatalogRepository) RunQuery(ctx context.Context, statement string) (*models.QueryResult, error) {
	rows, err := repo.db.QueryContext(ctx, statement)
	if err != nil {
		return nil, fmt.Errorf("could not run catalog query: %w", err)
	}
	defer rows.Close()

	return scanQueryResult(rows)
}
