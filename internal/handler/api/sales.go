package api

import (
	"net/http"

	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	q queries.SalesQueries
}

func NewSalesHandler(q queries.SalesQueries) *SalesHandler {
	return &SalesHandler{q: q}
}

// @Summary Top products
// @Description Best-selling products by units sold
// @Tags sales
// @Produce json
// @Param n query int false "Number of entries (default 5, max 50)"
// @Success 200 {array} resdto.TopProductResponse
// @Router /sales/top-products [get]
func (h *SalesHandler) TopProducts(c *gin.Context) {
	items, err := h.q.TopProducts(c.Request.Context(), queryInt(c, "n", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromTopProducts(items)})
}

// @Summary Top keywords
// @Description Keywords ranked by units sold across the products carrying them
// @Tags sales
// @Produce json
// @Param n query int false "Number of entries (default 5, max 50)"
// @Success 200 {array} resdto.TopKeywordResponse
// @Router /sales/top-keywords [get]
func (h *SalesHandler) TopKeywords(c *gin.Context) {
	items, err := h.q.TopKeywords(c.Request.Context(), queryInt(c, "n", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": resdto.FromTopKeywords(items)})
}
