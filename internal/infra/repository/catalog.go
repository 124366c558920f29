package repository

import (
	"context"
	"log/slog"

	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/infra"
)

// CatalogRepository serves the terminal's built-in product list.
type CatalogRepository struct {
	categories []catalog.Category
	products   []*catalog.Product
	byID       map[string]*catalog.Product
	byBarcode  map[string]*catalog.Product
	logger     *slog.Logger
}

func NewCatalogRepository(logger *slog.Logger) *CatalogRepository {
	return newCatalogRepository(seedCategories(), seedProducts(), logger)
}

func newCatalogRepository(categories []catalog.Category, products []*catalog.Product, logger *slog.Logger) *CatalogRepository {
	r := &CatalogRepository{
		categories: categories,
		products:   products,
		byID:       make(map[string]*catalog.Product, len(products)),
		byBarcode:  make(map[string]*catalog.Product),
		logger:     logger,
	}
	for _, p := range products {
		r.byID[p.ID()] = p
		for _, code := range p.Barcodes() {
			r.byBarcode[code] = p
		}
	}
	return r
}

func (r *CatalogRepository) Categories(_ context.Context) ([]catalog.Category, error) {
	return append([]catalog.Category(nil), r.categories...), nil
}

// Search returns products whose name contains search within the category, in catalog order.
func (r *CatalogRepository) Search(_ context.Context, search, categoryID string) ([]*catalog.Product, error) {
	result := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Matches(search, categoryID) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *CatalogRepository) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "product not found: "+id, nil)
	}
	return p, nil
}

func (r *CatalogRepository) FindByBarcode(_ context.Context, code string) (*catalog.Product, error) {
	p, ok := r.byBarcode[code]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "no product for barcode: "+code, nil)
	}
	return p, nil
}
