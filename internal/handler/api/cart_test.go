//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ootd-commerce/internal/domain/cart"
	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/handler/api"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/usecase/queries"
	"ootd-commerce/tests/common/httptest"
	commandsmock "ootd-commerce/tests/mock/commands"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	userID       uuid.UUID
	cartView     *queries.CartView
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.cartView = &queries.CartView{
		Lines: []*queries.CartLineView{
			{ProductID: uuid.New(), Name: "Linen shirt", PriceCents: 1000, Quantity: 2, SubtotalCents: 2000},
		},
		TotalCents: 2000,
	}

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleBuyer)
		c.Next()
	}

	s.router.GET("/cart", authMiddleware, s.handler.List)
	s.router.PUT("/cart/items", authMiddleware, s.handler.Upsert)
	s.router.POST("/cart/items", authMiddleware, s.handler.Add)
	s.router.DELETE("/cart/items", authMiddleware, s.handler.Remove)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestList() {
	s.Run("success: returns lines and total", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.userID).Return(s.cartView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Lines, 1)
		s.Equal(int64(2000), response.TotalCents)
		s.Equal(int32(2), response.Lines[0].Quantity)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CartHandlerTestSuite) TestUpsert() {
	productID := uuid.New()

	s.Run("success: zero quantity is forwarded and the cart is returned", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Upsert(gomock.Any(), s.userID, productID, 0).Return(nil),
			s.mockQueries.EXPECT().List(gomock.Any(), s.userID).Return(&queries.CartView{Lines: []*queries.CartLineView{}}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items",
			map[string]any{"productId": productID.String(), "quantity": 0}, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
	})

	s.Run("error: 400 Bad Request for a negative quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items",
			map[string]any{"productId": productID.String(), "quantity": -1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict when quantity exceeds stock", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), s.userID, productID, 99).
			Return(product.ErrInsufficientStock).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items",
			map[string]any{"productId": productID.String(), "quantity": 99}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "insufficient stock")
	})
}

func (s *CartHandlerTestSuite) TestAdd() {
	productID := uuid.New()

	s.Run("success: adds and returns the cart", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), s.userID, productID, 2).Return(nil).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), s.userID).Return(s.cartView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
			map[string]any{"productId": productID.String(), "quantity": 2}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for zero delta", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
			map[string]any{"productId": productID.String(), "quantity": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request when the product is not purchasable", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), s.userID, productID, 1).
			Return(product.ErrNotPurchasable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
			map[string]any{"productId": productID.String(), "quantity": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "product is not available for purchase")
	})
}

func (s *CartHandlerTestSuite) TestRemove() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	s.Run("success: removes every given product", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, ids).Return(nil).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), s.userID).Return(s.cartView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items",
			map[string]any{"productIds": ids}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an empty list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items",
			map[string]any{"productIds": []string{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found when any product is not in the cart", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, ids).Return(cart.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items",
			map[string]any{"productIds": ids}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product is not in the cart")
	})
}
