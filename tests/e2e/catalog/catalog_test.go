//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/tests/common/dbtest"
	"ootd-commerce/tests/common/httptest"
	"ootd-commerce/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func listingBody(name string, price int64, stock int) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "breathable linen",
		"priceCents":  price,
		"stock":       stock,
		"keywords":    []string{"Linen", "summer"},
	}
}

func editBody(name string, price int64, stock int, enabled bool) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "breathable linen",
		"priceCents":  price,
		"stock":       stock,
		"enabled":     enabled,
	}
}

func (s *catalogSuite) edit(token string, productID uuid.UUID, body map[string]any) (int, resdto.ListingResponse) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/products/"+productID.String(), body, token)
	var res resdto.ListingResponse
	if w.Code == http.StatusOK {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return w.Code, res
}

func (s *catalogSuite) TestCreateListing() {
	s.Run("出品すると版1のスナップショットが作られる", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")

		listing := s.CreateListing(seller, storeID, listingBody("Linen shirt", 4900, 3))
		require.Equal(t, 1, listing.Version)
		require.True(t, listing.Versioned)

		product := s.GetProduct(listing.ProductID, "")
		require.Equal(t, listing.SnapshotID, product.SnapshotID)
		require.Equal(t, int64(4900), product.PriceCents)
		require.Equal(t, int32(3), product.Stock)
		require.ElementsMatch(t, []string{"linen", "summer"}, product.Keywords, "キーワードは正規化される")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs"), "版作成イベントがアウトボックスに積まれる")
	})

	s.Run("他人の店舗には出品できない", func() {
		t := s.T()
		_, storeID := s.Seller("owner@example.com")
		intruder, _ := s.Seller("intruder@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/"+storeID.String()+"/products",
			listingBody("Fake", 100, 1), intruder.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "store is not owned by the caller")
	})

	s.Run("存在しない店舗", func() {
		t := s.T()
		seller, _ := s.Seller("seller@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/"+uuid.NewString()+"/products",
			listingBody("Lost", 100, 1), seller.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "store not found")
	})
}

func (s *catalogSuite) TestEditListing() {
	s.Run("出品内容の変更で新しい版が追加され旧版は不変", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		v1 := s.CreateListing(seller, storeID, listingBody("Linen shirt", 4900, 3))

		code, v2 := s.edit(seller.Token, v1.ProductID, editBody("Linen shirt", 5900, 3, true))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 2, v2.Version)
		require.True(t, v2.Versioned)
		require.NotEqual(t, v1.SnapshotID, v2.SnapshotID)

		// 旧版のスナップショットは価格を保持している
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/snapshots/"+v1.SnapshotID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var old resdto.SnapshotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &old))
		require.Equal(t, int64(4900), old.PriceCents)
		require.Equal(t, int32(1), old.Version)

		require.Equal(t, int64(5900), s.GetProduct(v1.ProductID, "").PriceCents)
	})

	s.Run("在庫だけの変更では版は増えない", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		v1 := s.CreateListing(seller, storeID, listingBody("Linen shirt", 4900, 3))

		code, res := s.edit(seller.Token, v1.ProductID, editBody("Linen shirt", 4900, 10, true))
		require.Equal(t, http.StatusOK, code)
		require.False(t, res.Versioned)
		require.Equal(t, 1, res.Version)
		require.Equal(t, v1.SnapshotID, res.SnapshotID)
		require.Equal(t, 10, dbtest.StockOf(t, s.DB, v1.ProductID))
	})

	s.Run("他人の商品は編集できない", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		v1 := s.CreateListing(seller, storeID, listingBody("Linen shirt", 4900, 3))
		intruder, _ := s.Seller("intruder@example.com")

		code, _ := s.edit(intruder.Token, v1.ProductID, editBody("Hijacked", 1, 0, true))
		require.Equal(t, http.StatusForbidden, code)
		require.Equal(t, "Linen shirt", s.GetProduct(v1.ProductID, "").Name)
	})

	s.Run("負の在庫は拒否される", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		v1 := s.CreateListing(seller, storeID, listingBody("Linen shirt", 4900, 3))

		code, _ := s.edit(seller.Token, v1.ProductID, editBody("Linen shirt", 4900, -1, true))
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, 3, dbtest.StockOf(t, s.DB, v1.ProductID))
	})
}

func (s *catalogSuite) TestListProducts() {
	s.Run("キーワードと価格順での絞り込み", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		s.CreateListing(seller, storeID, listingBody("Linen shirt", 4900, 3))
		s.CreateListing(seller, storeID, listingBody("Linen pants", 2900, 3))
		s.CreateListing(seller, storeID, map[string]any{"name": "Wool coat", "priceCents": 19900, "stock": 1, "keywords": []string{"winter"}})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products?keyword=linen&sort=price&order=asc", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page resdto.ProductPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 2)
		require.Equal(t, "Linen pants", page.Items[0].Name)
		require.Equal(t, "Linen shirt", page.Items[1].Name)
	})

	s.Run("店舗ごとの一覧", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		other, otherStore := s.Seller("other@example.com")
		s.CreateListing(seller, storeID, listingBody("Mine", 100, 1))
		s.CreateListing(other, otherStore, listingBody("Theirs", 100, 1))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/stores/"+storeID.String()+"/products", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page resdto.ProductPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 1)
		require.Equal(t, "Mine", page.Items[0].Name)
	})
}
