//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/handler/api"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/pkg/ptr"
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

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
	userID       uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/coupons", authMiddleware, s.handler.ListUserCoupons)
	s.router.GET("/coupons/:id/balance", authMiddleware, s.handler.GetBalance)
	s.router.GET("/admin/coupons", authMiddleware, s.handler.ListCoupons)
	s.router.POST("/admin/coupons", authMiddleware, s.handler.CreateCoupon)
	s.router.GET("/admin/coupons/:id", authMiddleware, s.handler.GetCoupon)
	s.router.PUT("/admin/coupons/:id", authMiddleware, s.handler.UpdateCoupon)
	s.router.POST("/admin/coupons/:id/grants", authMiddleware, s.handler.Grant)
	s.router.POST("/admin/coupons/:id/grants/all", authMiddleware, s.handler.GrantToAll)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestListUserCoupons() {
	s.Run("success: wraps the usable coupons", func() {
		s.mockQueries.EXPECT().ListUserCoupons(gomock.Any(), s.userID).
			Return([]*queries.UserCouponView{{ID: uuid.New(), Name: "SUMMER10", Quantity: 3}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "")

		var response struct {
			Coupons []resdto.UserCouponResponse `json:"coupons"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Coupons, 1)
		s.Equal(int32(3), response.Coupons[0].Quantity)
	})
}

func (s *CouponHandlerTestSuite) TestGetBalance() {
	couponID := uuid.New()

	s.Run("success: returns the caller's balance", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID, couponID).
			Return(&queries.CouponBalanceView{CouponID: couponID, Quantity: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+couponID.String()+"/balance", nil, "")

		var response resdto.CouponBalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(couponID, response.CouponID)
		s.Zero(response.Quantity)
	})

	s.Run("error: 404 Not Found for an unknown coupon", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID, couponID).
			Return(nil, coupon.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+couponID.String()+"/balance", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestCreateCoupon() {
	b := builder.NewCouponBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the stored coupon", func() {
		s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), reqBody.ToCommand()).Return(b.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetCoupon(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons", reqBody, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(int32(10), response.DiscountPercent)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/admin/coupons/" + b.ID.String()})
	})

	s.Run("success: enabled defaults to true", func() {
		withoutEnabled := testutil.DtoMap(s.T(), reqBody, testutil.Field("enabled", nil))
		s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Cond(func(x any) bool {
			req, ok := x.(commands.CreateCouponRequest)
			return ok && req.Enabled
		})).Return(b.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetCoupon(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons", withoutEnabled, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "discount boundary invalid (0)", mutate: testutil.Field("discountPercent", 0)},
			{name: "discount boundary invalid (101)", mutate: testutil.Field("discountPercent", 101)},
			{name: "expiry before start", mutate: testutil.Field("expiresAt", b.StartsAt.Add(-time.Hour))},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestUpdateCoupon() {
	b := builder.NewCouponBuilder()
	url := "/admin/coupons/" + b.ID.String()

	s.Run("success: only given fields are forwarded", func() {
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), b.ID, commands.UpdateCouponRequest{Enabled: ptr.Of(false)}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCoupon(gomock.Any(), b.ID).
			Return(b.With(func(cb *builder.CouponBuilder) { cb.Enabled = false }).BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": false}, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Enabled)
	})

	s.Run("error: 400 Bad Request when the window is inverted", func() {
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), b.ID, gomock.Any()).
			Return(coupon.ErrInvalidWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "X"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "coupon start must not be after its expiry")
	})
}

func (s *CouponHandlerTestSuite) TestGrant() {
	couponID := uuid.New()
	targetID := uuid.New()
	url := "/admin/coupons/" + couponID.String() + "/grants"

	s.Run("success: returns the new balance", func() {
		s.mockCommands.EXPECT().Grant(gomock.Any(), targetID, couponID, 3).Return(5, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"userId": targetID, "amount": 3}, "")

		var response resdto.GrantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(5, response.Quantity)
	})

	s.Run("error: 400 Bad Request for a non-positive amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"userId": targetID, "amount": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for an amount beyond int32", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"userId": targetID, "amount": 4294967297}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for an unknown user or coupon", func() {
		s.mockCommands.EXPECT().Grant(gomock.Any(), targetID, couponID, 1).
			Return(0, commands.ErrGrantTargetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"userId": targetID, "amount": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user or coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestGrantToAll() {
	couponID := uuid.New()

	s.Run("success: reports how many balances were updated", func() {
		s.mockCommands.EXPECT().GrantToAll(gomock.Any(), couponID, 2).Return(int64(42), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons/"+couponID.String()+"/grants/all", map[string]any{"amount": 2}, "")

		var response resdto.GrantAllResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(42), response.Granted)
	})
}
