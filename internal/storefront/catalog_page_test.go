package storefront

import (
	"context"
	"testing"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/adapters/logger"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type CatalogPageSuite struct {
	suite.Suite
	service *fakeService
	page    *CatalogPage
}

func (s *CatalogPageSuite) SetupTest() {
	s.service = &fakeService{snapshot: catalogOf(25)}
	s.page = NewCatalogPage(s.service, logger.NewNopLogger(), CatalogOptions{PageSize: 12, Locale: "es-CL"})
}

func (s *CatalogPageSuite) TestMountReady() {
	s.Equal(StateIdle, s.page.State())

	s.page.Mount(context.Background())

	s.Equal(StateReady, s.page.State())
	s.Equal(25, s.page.Result().TotalMatched)
	s.Equal(3, s.page.Result().TotalPages)
	s.Len(s.page.Result().Items, 12)
	s.Len(s.page.Categories(), 1)
	s.Equal([]string{"Bosch", "NGK"}, s.page.Brands())
	s.Empty(s.page.ErrorMessage())
	s.Empty(s.page.EmptyMessage())
}

func (s *CatalogPageSuite) TestMountErrorIsAggregated() {
	s.service.loadErr = apperrors.NewNetworkError("list brands", 502, nil)

	s.page.Mount(context.Background())

	s.Equal(StateError, s.page.State())
	s.True(apperrors.IsNetwork(s.page.Err()))
	s.Equal(MsgCatalogLoadFailed, s.page.ErrorMessage())
	s.Nil(s.page.Categories())
	s.Empty(s.page.Result().Items)
}

func (s *CatalogPageSuite) TestRetryAfterError() {
	s.service.loadErr = apperrors.NewNetworkError("list products", 0, nil)
	s.page.Mount(context.Background())
	s.Require().Equal(StateError, s.page.State())

	s.service.loadErr = nil
	s.page.Retry(context.Background())

	s.Equal(StateReady, s.page.State())
	s.Nil(s.page.Err())
	s.Equal(2, s.service.loads)
}

func (s *CatalogPageSuite) TestFilterTransitionsResetPage() {
	s.page.Mount(context.Background())

	transitions := map[string]func(){
		"search":   func() { s.page.SetSearchTerm("producto") },
		"category": func() { s.page.SetCategory("") },
		"brand":    func() { s.page.SetBrand("") },
		"price":    func() { s.page.SetPriceRange(nil, nil) },
		"sale":     func() { s.page.SetOnlyOnSale(false) },
		"stock":    func() { s.page.SetOnlyInStock(false) },
		"featured": func() { s.page.SetOnlyFeatured(false) },
		"clear":    func() { s.page.ClearFilters() },
	}

	for name, transition := range transitions {
		s.Run(name, func() {
			s.page.SetPage(3)
			s.Require().Equal(3, s.page.Filter().Page)

			transition()

			s.Equal(1, s.page.Filter().Page)
		})
	}
}

func (s *CatalogPageSuite) TestSortKeepsPage() {
	s.page.Mount(context.Background())
	s.page.SetPage(2)

	s.page.SetSortKey(models.SortByPriceDesc)

	s.Equal(2, s.page.Filter().Page)
	s.Equal("Producto 12", s.page.Result().Items[0].Name)
}

func (s *CatalogPageSuite) TestSetPageClamps() {
	s.page.Mount(context.Background())

	s.page.SetPage(10)
	s.Equal(3, s.page.Filter().Page)
	s.Len(s.page.Result().Items, 1)

	s.page.SetPage(0)
	s.Equal(1, s.page.Filter().Page)
}

func (s *CatalogPageSuite) TestNextAndPrevPage() {
	s.page.Mount(context.Background())

	s.page.PrevPage()
	s.Equal(1, s.page.Filter().Page)

	s.page.NextPage()
	s.page.NextPage()
	s.page.NextPage()
	s.Equal(3, s.page.Filter().Page)

	s.page.PrevPage()
	s.Equal(2, s.page.Filter().Page)
}

func (s *CatalogPageSuite) TestClearFiltersKeepsSort() {
	s.page.Mount(context.Background())
	s.page.SetSortKey(models.SortByNewest)
	s.page.SetBrand("Bosch")
	s.page.SetOnlyOnSale(true)
	s.Equal(2, s.page.ActiveFilterCount())

	s.page.ClearFilters()

	s.Equal(models.SortByNewest, s.page.Filter().SortKey)
	s.Equal(0, s.page.ActiveFilterCount())
	s.Equal(25, s.page.Result().TotalMatched)
}

func (s *CatalogPageSuite) TestFiltersRecomputeSynchronously() {
	s.page.Mount(context.Background())
	loads := s.service.loads

	s.page.SetBrand("NGK")
	s.page.SetOnlyInStock(true)

	for _, p := range s.page.Result().Items {
		s.Equal("NGK", p.Brand)
		s.Greater(p.StockQuantity, 0)
	}
	s.Equal(loads, s.service.loads)
}

func (s *CatalogPageSuite) TestEmptyMessages() {
	s.service.snapshot = &models.CatalogSnapshot{}
	s.page.Mount(context.Background())
	s.Equal(MsgNoProductsInStore, s.page.EmptyMessage())

	s.service.snapshot = catalogOf(5)
	s.page.Retry(context.Background())
	s.page.SetSearchTerm("inexistente")
	s.Equal(MsgAdjustFilters, s.page.EmptyMessage())
}

func (s *CatalogPageSuite) TestRestoreReplacesFilterWholesale() {
	s.page.Mount(context.Background())

	restored := models.ProductFilter{Brand: "Bosch", SortKey: models.SortByPriceDesc, Page: 2}
	s.page.Restore(restored)

	s.Equal(12, s.page.Filter().PageSize)
	s.Equal(2, s.page.Filter().Page)
	s.Equal(13, s.page.Result().TotalMatched)
	s.Len(s.page.Result().Items, 1)
}

func (s *CatalogPageSuite) TestTransitionsBeforeLoadOnlyChangeFilter() {
	s.page.SetSearchTerm("bujía")

	s.Equal("bujía", s.page.Filter().SearchTerm)
	s.Empty(s.page.Result().Items)

	s.page.Mount(context.Background())
	s.Equal(0, s.page.Result().TotalMatched)
}

func (s *CatalogPageSuite) TestLateLoadAfterUnmountIsIgnored() {
	s.page.BeginLoad()
	s.page.Unmount()

	s.page.CompleteLoad(catalogOf(3), nil)

	s.Equal(StateLoading, s.page.State())
	s.Empty(s.page.Result().Items)
}

func (s *CatalogPageSuite) TestCompleteLoadWithoutBeginIsIgnored() {
	s.page.CompleteLoad(catalogOf(3), nil)

	s.Equal(StateIdle, s.page.State())
}

func (s *CatalogPageSuite) TestViews() {
	s.page.Mount(context.Background())

	views := s.page.Views(display.Options{Locale: "es-CL", Currency: "CLP"})

	s.Len(views, 12)
	s.Equal("producto-00", views[0].RouteKey)
}

func TestCatalogPageSuite(t *testing.T) {
	suite.Run(t, new(CatalogPageSuite))
}
