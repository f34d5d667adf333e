package api

import (
	"net/http"

	reqdto "ootd-commerce/internal/handler/dto/request"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	cmds commands.RatingCommands
	q    queries.RatingQueries
}

func NewRatingHandler(cmds commands.RatingCommands, q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{cmds: cmds, q: q}
}

// @Summary Submit rating
// @Description Rate a product once per purchased order line
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SubmitRatingRequest true "Rating request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/ratings [post]
func (h *RatingHandler) Submit(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ratingID, err := h.cmds.SubmitRating(c.Request.Context(), userID, req.ToCommand(productID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: ratingID})
}

// @Summary List ratings
// @Description Ratings of a product, newest first, with keyset pagination
// @Tags ratings
// @Produce json
// @Param id path string true "Product ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RatingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{id}/ratings [get]
func (h *RatingHandler) List(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, err := h.q.ListRatings(c.Request.Context(), productID, queryCursor(c), queryInt(c, "limit", queries.DefaultListLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingPage(page))
}

// @Summary Rating eligibility
// @Description How many more ratings the caller may submit for a product
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /products/{id}/ratings/eligibility [get]
func (h *RatingHandler) Eligibility(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.q.RatingEligibility(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibility(view))
}
