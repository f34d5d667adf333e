//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/handler/api"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"
	"ootd-commerce/tests/common/builder"
	"ootd-commerce/tests/common/httptest"
	"ootd-commerce/tests/common/testutil"
	commandsmock "ootd-commerce/tests/mock/commands"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleBuyer)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.PlaceOrder)
	s.router.GET("/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestPlaceOrder() {
	url := "/orders"
	b := builder.NewOrderBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.userID, reqBody.ToCommand(nil)).
			Return(&commands.PlaceOrderResult{OrderID: b.ID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.False(response.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/orders/" + b.ID.String()})
	})

	s.Run("success: replayed idempotency key returns 200 OK", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.userID, reqBody.ToCommand(&key)).
			Return(&commands.PlaceOrderResult{OrderID: b.ID, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, map[string]string{"Idempotency-Key": key.String()}, "bearer-token")

		var response resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Replayed)
	})

	s.Run("error: 400 Bad Request for a malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, map[string]string{"Idempotency-Key": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: lines (required)", mutate: testutil.Field("lines", nil)},
			{name: "empty lines", mutate: testutil.Field("lines", []any{})},
			{name: "zero quantity", mutate: testutil.Field("lines", []any{map[string]any{"productId": uuid.NewString(), "quantity": 0}})},
			{name: "missing product id", mutate: testutil.Field("lines", []any{map[string]any{"quantity": 1}})},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "insufficient stock", commandsError: product.ErrInsufficientStock, expectedStatus: http.StatusConflict, expectedMsg: "insufficient stock"},
			{name: "coupon balance exhausted", commandsError: coupon.ErrInsufficientBalance, expectedStatus: http.StatusConflict, expectedMsg: "no remaining uses of this coupon"},
			{name: "expired coupon", commandsError: coupon.ErrCouponExpired, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "coupon has expired"},
			{name: "unknown coupon", commandsError: commands.ErrUnknownCoupon, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "coupon does not exist"},
			{name: "unknown product", commandsError: product.ErrProductNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "product not found"},
			{name: "duplicate line", commandsError: order.ErrDuplicateLine, expectedStatus: http.StatusBadRequest, expectedMsg: "order contains the same product more than once"},
			{name: "idempotency key reused", commandsError: order.ErrRequestReplayed, expectedStatus: http.StatusConflict, expectedMsg: "idempotency key reused with a different request"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.Run("success: forwards cursor and limit and exposes the next cursor", func() {
		after := "opaque-cursor"
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), s.userID, &after, 2).
			Return(&queries.OrderPage{
				Items:      []*queries.OrderListItem{{ID: uuid.New()}, {ID: uuid.New()}},
				NextCursor: &queries.Cursor{After: "next-cursor"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?after=opaque-cursor&limit=2", nil, "bearer-token")

		var response resdto.OrderPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Orders, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal("next-cursor", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request for an invalid cursor", func() {
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), s.userID, gomock.Any(), queries.DefaultListLimit).
			Return(nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?after=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	view := builder.NewOrderBuilder().BuildView()
	url := "/orders/" + view.ID.String()

	s.Run("success: returns lines at their snapshot price", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Require().Len(response.Lines, len(view.Lines))
		s.Equal(view.Lines[0].SnapshotID, response.Lines[0].SnapshotID)
		s.Equal(view.Lines[0].PriceCents, response.Lines[0].PriceCents)
	})

	s.Run("error: 404 Not Found for someone else's order", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), s.userID, view.ID).
			Return(nil, order.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})
}
