// internal/services/catalog_service.go
package services

import (
	"context"

	"github.com/heritage-goods/storefront-backend/internal/catalog"
	"github.com/heritage-goods/storefront-backend/internal/commerce"
)

// CatalogService reads products from the commerce platform. The platform owns
// the catalog; this service only consumes the shapes and runs variant
// resolution on top of them.
type CatalogService struct {
	client       *commerce.Client
	defaultLimit int
}

func NewCatalogService(client *commerce.Client, defaultLimit int) *CatalogService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &CatalogService{client: client, defaultLimit: defaultLimit}
}

func (s *CatalogService) ListProducts(ctx context.Context, limit int) ([]catalog.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = s.defaultLimit
	}
	return s.client.ListProducts(ctx, limit)
}

func (s *CatalogService) GetProductByHandle(ctx context.Context, handle string) (*catalog.Product, error) {
	return s.client.GetProductByHandle(ctx, handle)
}

// ResolveVariant fetches the product and resolves the shopper's selection to
// the variant the page should show.
func (s *CatalogService) ResolveVariant(ctx context.Context, handle string, sel catalog.Selection) (*catalog.Product, *catalog.Variant, bool, error) {
	product, err := s.client.GetProductByHandle(ctx, handle)
	if err != nil {
		return nil, nil, false, err
	}

	variant, ok := catalog.Resolve(product, sel)
	return product, variant, ok, nil
}
