package api

import (
	"net/http"

	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StoreHandler serves the seller-side reports of a store.
type StoreHandler struct {
	q queries.StoreQueries
}

func NewStoreHandler(q queries.StoreQueries) *StoreHandler {
	return &StoreHandler{q: q}
}

// @Summary Store orders
// @Description Orders containing the store's products, with only the store's lines, each at its purchase-time snapshot
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {array} resdto.StoreOrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{id}/orders [get]
func (h *StoreHandler) Orders(c *gin.Context) {
	storeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.q.Orders(c.Request.Context(), actor.ID, actor.Role, storeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromStoreOrders(items)})
}

// @Summary Store sales
// @Description Every product of the store with its latest listing and units sold across all versions
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {array} resdto.StoreProductSalesResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{id}/sales [get]
func (h *StoreHandler) Sales(c *gin.Context) {
	storeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.q.Sales(c.Request.Context(), actor.ID, actor.Role, storeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromStoreProductSales(items)})
}

// @Summary Store ratings
// @Description Ratings left on the store's products, newest first
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {array} resdto.StoreRatingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{id}/ratings [get]
func (h *StoreHandler) Ratings(c *gin.Context) {
	storeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.q.Ratings(c.Request.Context(), actor.ID, actor.Role, storeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": resdto.FromStoreRatings(items)})
}
