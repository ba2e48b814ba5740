//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"testing"

	"shopfront/internal/handler/dto/response"
	"shopfront/tests/common/dbtest"
	"shopfront/tests/common/httptest"
	"shopfront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const productsURL = "/api/products"

type CatalogSuite struct {
	e2e.SharedSuite
}

func (s *CatalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

// uniqueCategory keeps list cache keys disjoint between subtests; cached
// listings outlive the per-subtest database reset.
func uniqueCategory() string {
	return "cat-" + uuid.NewString()[:8]
}

func (s *CatalogSuite) listProducts(t *testing.T, query string) []response.ProductResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+query, nil, "")
	require.Equal(t, http.StatusOK, w.Code, "list failed: %s", w.Body.String())

	var products []response.ProductResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &products))
	return products
}

// =============================================================================
// TestListProducts - catalog listing and filters
// =============================================================================

func (s *CatalogSuite) TestListProducts() {
	s.Run("Normal case: category and price filters narrow the listing", func() {
		t := s.T()

		category := uniqueCategory()
		keyboardID := dbtest.CreateTestProductInCategory(t, s.DB, "Mechanical Keyboard", category, 4500, 10)
		cableID := dbtest.CreateTestProductInCategory(t, s.DB, "USB Cable", category, 1500, 50)
		dbtest.CreateTestProduct(t, s.DB, "Unrelated Monitor", 25000, 3)

		products := s.listProducts(t, "?category="+category)
		require.Len(t, products, 2)

		ids := []uuid.UUID{products[0].ID, products[1].ID}
		require.Contains(t, ids, keyboardID)
		require.Contains(t, ids, cableID)

		products = s.listProducts(t, fmt.Sprintf("?category=%s&min_price_cents=2000", category))
		require.Len(t, products, 1)
		require.Equal(t, keyboardID, products[0].ID)
		require.Equal(t, int64(4500), products[0].PriceCents)
	})

	s.Run("Normal case: status filter excludes archived products", func() {
		t := s.T()

		category := uniqueCategory()
		activeID := dbtest.CreateTestProductInCategory(t, s.DB, "Mechanical Keyboard", category, 4500, 10)
		archivedID := dbtest.CreateTestProductInCategory(t, s.DB, "Legacy Mouse", category, 900, 0)
		dbtest.ArchiveTestProduct(t, s.DB, archivedID)

		products := s.listProducts(t, fmt.Sprintf("?category=%s&status=active", category))
		require.Len(t, products, 1)
		require.Equal(t, activeID, products[0].ID)
	})

	s.Run("Normal case: repeated listing with the same filter is served from cache", func() {
		t := s.T()

		category := uniqueCategory()
		dbtest.CreateTestProductInCategory(t, s.DB, "Mechanical Keyboard", category, 4500, 10)

		first := s.listProducts(t, "?category="+category)
		require.Len(t, first, 1)

		// A product added after the cache fill is invisible under the same
		// filter until the entry is invalidated or expires
		dbtest.CreateTestProductInCategory(t, s.DB, "USB Cable", category, 1500, 50)
		cached := s.listProducts(t, "?category="+category)
		require.Len(t, cached, 1)

		// A different filter builds its own cache key and sees fresh data
		fresh := s.listProducts(t, fmt.Sprintf("?category=%s&limit=10", category))
		require.Len(t, fresh, 2)
	})

	s.Run("Error case: malformed filter values are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"?min_price_cents=abc", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestGetProduct - single product fetch
// =============================================================================

func (s *CatalogSuite) TestGetProduct() {
	s.Run("Normal case: product detail is returned by id", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Mechanical Keyboard", 4500, 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/"+productID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var product response.ProductResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &product))
		require.Equal(t, productID, product.ID)
		require.Equal(t, "Mechanical Keyboard", product.Name)
		require.Equal(t, int64(4500), product.PriceCents)
		require.Equal(t, int32(10), product.Stock)
		require.Equal(t, "active", product.Status)
	})

	s.Run("Normal case: archived products stay fetchable by id", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Legacy Mouse", 900, 0)
		dbtest.ArchiveTestProduct(t, s.DB, productID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/"+productID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var product response.ProductResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &product))
		require.Equal(t, "archived", product.Status)
	})

	s.Run("Error case: unknown id returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/"+uuid.NewString(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: malformed id returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/not-a-uuid", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
