//go:build e2e

package cart_test

import (
	"net/http"
	"testing"

	"ootd-commerce/internal/domain/user"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/tests/common/dbtest"
	"ootd-commerce/tests/common/httptest"
	"ootd-commerce/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL      = "/api/cart"
	cartItemsURL = "/api/cart/items"
)

type cartSuite struct {
	e2e.SharedSuite
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(cartSuite))
}

func (s *cartSuite) getCart(token string) resdto.CartResponse {
	var res resdto.CartResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *cartSuite) TestUpsert() {
	s.Run("数量を指定して追加し上書きできる", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, snapshotID := dbtest.CreateTestProduct(t, s.DB, storeID, "Wool coat", 12000, 5)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 2}, buyer.Token)
		var res resdto.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Lines, 1)
		require.Equal(t, snapshotID, res.Lines[0].SnapshotID)
		require.Equal(t, int32(2), res.Lines[0].Quantity)
		require.Equal(t, int64(24000), res.TotalCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 4}, buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, int32(4), s.getCart(buyer.Token).Lines[0].Quantity)

		// カートは在庫を確保しない
		require.Equal(t, 5, dbtest.StockOf(t, s.DB, productID))
	})

	s.Run("数量0で明細が削除される", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Scarf", 3000, 5)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 1}, buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 0}, buyer.Token)
		var res resdto.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Empty(t, res.Lines)
		require.Zero(t, dbtest.CountRows(t, s.DB, "cart_lines"))
	})

	s.Run("在庫を超える数量は409", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Boots", 8000, 2)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 3}, buyer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "insufficient stock")
		require.Empty(t, s.getCart(buyer.Token).Lines)
	})

	s.Run("存在しない商品は404", func() {
		t := s.T()
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": uuid.NewString(), "quantity": 1}, buyer.Token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("未認証は401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *cartSuite) TestAdd() {
	s.Run("既存の数量に加算される", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Socks", 500, 10)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
				map[string]any{"productId": productID.String(), "quantity": 2}, buyer.Token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		res := s.getCart(buyer.Token)
		require.Len(t, res.Lines, 1)
		require.Equal(t, int32(6), res.Lines[0].Quantity)
	})

	s.Run("加算後に在庫を超えると409で数量は変わらない", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Gloves", 2000, 3)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 2}, buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 2}, buyer.Token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, int32(2), s.getCart(buyer.Token).Lines[0].Quantity)
	})

	s.Run("販売停止中の商品は追加できない", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Hat", 1500, 3)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/products/"+productID.String(),
			map[string]any{"name": "Hat", "priceCents": 1500, "stock": 3, "enabled": false}, seller.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 1}, buyer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "product is not available for purchase")
	})
}

func (s *cartSuite) TestRemove() {
	s.Run("複数の明細をまとめて削除できる", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		first, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Belt", 2500, 5)
		second, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Tie", 1800, 5)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		for _, id := range []uuid.UUID{first, second} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
				map[string]any{"productId": id.String(), "quantity": 1}, buyer.Token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, cartItemsURL,
			map[string]any{"productIds": []string{first.String(), second.String()}}, buyer.Token)
		var res resdto.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Empty(t, res.Lines)
	})

	s.Run("カートにない商品を含むと何も削除されない", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Cap", 1200, 5)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 1}, buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cartItemsURL,
			map[string]any{"productIds": []string{productID.String(), uuid.NewString()}}, buyer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "product is not in the cart")
		require.Len(t, s.getCart(buyer.Token).Lines, 1)
	})

	s.Run("空の指定は400", func() {
		buyer := s.Login("buyer@example.com", user.RoleBuyer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, cartItemsURL,
			map[string]any{"productIds": []string{}}, buyer.Token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *cartSuite) TestList() {
	s.Run("販売停止した商品の明細は表示されず削除される", func() {
		t := s.T()
		seller, storeID := s.Seller("seller@example.com")
		hidden, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Vest", 6000, 5)
		kept, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Shirt", 3000, 5)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		for _, id := range []uuid.UUID{hidden, kept} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
				map[string]any{"productId": id.String(), "quantity": 1}, buyer.Token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/products/"+hidden.String(),
			map[string]any{"name": "Vest", "priceCents": 6000, "stock": 5, "enabled": false}, seller.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		res := s.getCart(buyer.Token)
		require.Len(t, res.Lines, 1)
		require.Equal(t, kept, res.Lines[0].ProductID)
		require.Equal(t, int64(3000), res.TotalCents)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "cart_lines"))
	})

	s.Run("停止したストアの商品は表示されず削除される", func() {
		t := s.T()
		_, storeID := s.Seller("seller@example.com")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, storeID, "Coat", 20000, 5)
		buyer := s.Login("buyer@example.com", user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartItemsURL,
			map[string]any{"productId": productID.String(), "quantity": 2}, buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		dbtest.DisableStore(t, s.DB, storeID)

		res := s.getCart(buyer.Token)
		require.Empty(t, res.Lines)
		require.Zero(t, res.TotalCents)
		require.Zero(t, dbtest.CountRows(t, s.DB, "cart_lines"))
	})
}
