package api

import (
	"net/http"

	reqdto "ootd-commerce/internal/handler/dto/request"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List my coupons
// @Description Coupons the caller can use right now, with remaining balance
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserCouponResponse
// @Failure 401 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) ListUserCoupons(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.q.ListUserCoupons(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": resdto.FromUserCouponList(items)})
}

// @Summary Coupon balance
// @Description Remaining uses of a coupon for the caller
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponBalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id}/balance [get]
func (h *CouponHandler) GetBalance(c *gin.Context) {
	couponID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.q.GetBalance(c.Request.Context(), userID, couponID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponBalance(view))
}

// @Summary List coupons (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.CouponResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	items, err := h.q.ListCoupons(c.Request.Context(),
		queryInt(c, "limit", queries.DefaultListLimit), queryInt(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": resdto.FromCouponList(items)})
}

// @Summary Create coupon (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	couponID, err := h.cmds.CreateCoupon(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.q.GetCoupon(c.Request.Context(), couponID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/admin/coupons/"+couponID.String())
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Get coupon (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	couponID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetCoupon(c.Request.Context(), couponID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Update coupon (admin)
// @Description Partial update; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Update coupon request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	couponID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.cmds.UpdateCoupon(c.Request.Context(), couponID, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.q.GetCoupon(c.Request.Context(), couponID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Grant coupon (admin)
// @Description Add uses of a coupon to one user's balance
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.GrantCouponRequest true "Grant request"
// @Success 200 {object} resdto.GrantResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id}/grants [post]
func (h *CouponHandler) Grant(c *gin.Context) {
	couponID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.GrantCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quantity, err := h.cmds.Grant(c.Request.Context(), req.UserID, couponID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.GrantResponse{
		CouponID: couponID,
		UserID:   req.UserID,
		Quantity: quantity,
	})
}

// @Summary Grant coupon to everyone (admin)
// @Description Add uses of a coupon to every active user's balance
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.GrantAllCouponRequest true "Grant request"
// @Success 200 {object} resdto.GrantAllResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id}/grants/all [post]
func (h *CouponHandler) GrantToAll(c *gin.Context) {
	couponID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.GrantAllCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	granted, err := h.cmds.GrantToAll(c.Request.Context(), couponID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.GrantAllResponse{CouponID: couponID, Granted: granted})
}
