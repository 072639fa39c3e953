package usecase

import (
	"context"

	"github.com/securecheck/securecheck-webserver/internal/catalog"
	"github.com/securecheck/securecheck-webserver/internal/database/repository"
	"github.com/securecheck/securecheck-webserver/internal/models"
)

type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogUseCase(catalogRepo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo,
	}
}

func (uc *CatalogUseCase) Labels() []string {
	return catalog.Labels()
}

// RunCatalogQuery executes the statement registered for label verbatim.
// Unknown labels return catalog.ErrUnknownQuery without touching the store.
func (uc *CatalogUseCase) RunCatalogQuery(ctx context.Context, label string) (*models.CatalogQueryResult, error) {
	entry, err := catalog.Lookup(label)
	if err != nil {
		return nil, err
	}

	result, err := uc.catalogRepo.RunQuery(ctx, entry.SQL)
	if err != nil {
		return nil, err
	}

	return &models.CatalogQueryResult{
		Label:       entry.Label,
		QueryResult: *result,
	}, nil
}
