//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/handler/api"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/pkg/ptr"
	"ootd-commerce/internal/usecase/queries"
	"ootd-commerce/tests/common/httptest"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StoreHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStoreQueries
	handler     *api.StoreHandler
	sellerID    uuid.UUID
}

func (s *StoreHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStoreQueries(s.mockCtrl)
	s.handler = api.NewStoreHandler(s.mockQueries)
	s.sellerID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.sellerID)
		c.Set("user_role", user.RoleSeller)
		c.Next()
	}

	s.router.GET("/stores/:id/orders", authMiddleware, s.handler.Orders)
	s.router.GET("/stores/:id/sales", authMiddleware, s.handler.Sales)
	s.router.GET("/stores/:id/ratings", authMiddleware, s.handler.Ratings)
}

func (s *StoreHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStoreHandlerSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlerTestSuite))
}

func (s *StoreHandlerTestSuite) TestOrders() {
	storeID := uuid.New()
	url := "/stores/" + storeID.String() + "/orders"

	s.Run("success: orders carry the store's lines and totals", func() {
		orderID, snapshotID := uuid.New(), uuid.New()
		s.mockQueries.EXPECT().Orders(gomock.Any(), s.sellerID, user.RoleSeller, storeID).Return([]*queries.StoreOrderView{
			{
				ID:              orderID,
				Status:          "pending",
				DiscountPercent: 10,
				AmountCents:     8000,
				TotalCents:      7200,
				Lines: []*queries.OrderLineView{
					{SnapshotID: snapshotID, Name: "Linen shirt", PriceCents: 4000, Quantity: 2, SubtotalCents: 8000},
				},
				CreatedAt: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Orders []resdto.StoreOrderResponse `json:"orders"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Orders, 1)
		s.Equal(orderID, response.Orders[0].ID)
		s.Equal(int64(7200), response.Orders[0].TotalCents)
		s.Require().Len(response.Orders[0].Lines, 1)
		s.Equal(snapshotID, response.Orders[0].Lines[0].SnapshotID)
		s.Equal(int64(8000), response.Orders[0].Lines[0].SubtotalCents)
	})

	s.Run("error: 403 Forbidden for another seller's store", func() {
		s.mockQueries.EXPECT().Orders(gomock.Any(), s.sellerID, user.RoleSeller, storeID).Return(nil, store.ErrNotStoreOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "store is not owned by the caller")
	})

	s.Run("error: 404 Not Found for an unknown store", func() {
		s.mockQueries.EXPECT().Orders(gomock.Any(), s.sellerID, user.RoleSeller, storeID).Return(nil, store.ErrStoreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "store not found")
	})

	s.Run("error: 400 Bad Request for a malformed store id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/not-a-uuid/orders", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *StoreHandlerTestSuite) TestSales() {
	storeID := uuid.New()

	s.Run("success: keeps the sold ordering and disabled products", func() {
		first, second := uuid.New(), uuid.New()
		s.mockQueries.EXPECT().Sales(gomock.Any(), s.sellerID, user.RoleSeller, storeID).Return([]*queries.StoreProductSalesView{
			{ProductID: first, Name: "Denim v2", Version: 2, Enabled: true, SoldQuantity: 5},
			{ProductID: second, Name: "Scarf", Version: 1, Enabled: false, SoldQuantity: 0},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/"+storeID.String()+"/sales", nil, "bearer-token")

		var response struct {
			Products []resdto.StoreProductSalesResponse `json:"products"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Products, 2)
		s.Equal(first, response.Products[0].ProductID)
		s.Equal(int64(5), response.Products[0].SoldQuantity)
		s.False(response.Products[1].Enabled)
	})
}

func (s *StoreHandlerTestSuite) TestRatings() {
	storeID := uuid.New()

	s.Run("success: returns ratings with the product's latest name", func() {
		productID := uuid.New()
		s.mockQueries.EXPECT().Ratings(gomock.Any(), s.sellerID, user.RoleSeller, storeID).Return([]*queries.StoreRatingView{
			{ID: uuid.New(), ProductID: productID, ProductName: "Parka v2", UserEmail: "buyer@example.com", Score: 4, Note: ptr.Of("warm")},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/"+storeID.String()+"/ratings", nil, "bearer-token")

		var response struct {
			Ratings []resdto.StoreRatingResponse `json:"ratings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Ratings, 1)
		s.Equal("Parka v2", response.Ratings[0].ProductName)
		s.Equal(productID, response.Ratings[0].ProductID)
		s.Require().NotNil(response.Ratings[0].Note)
		s.Equal("warm", *response.Ratings[0].Note)
	})

	s.Run("success: empty list for a store without ratings", func() {
		s.mockQueries.EXPECT().Ratings(gomock.Any(), s.sellerID, user.RoleSeller, storeID).Return([]*queries.StoreRatingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/"+storeID.String()+"/ratings", nil, "bearer-token")

		var response struct {
			Ratings []resdto.StoreRatingResponse `json:"ratings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Ratings)
		s.Empty(response.Ratings)
	})
}
