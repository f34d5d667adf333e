package api

import (
	"net/http"
	"strings"

	reqdto "ootd-commerce/internal/handler/dto/request"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/handler/middleware"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List purchasable products with optional keyword filter and sort
// @Tags products
// @Produce json
// @Param keyword query string false "Keyword filter"
// @Param sort query string false "Sort key (price, sales, stock)"
// @Param order query string false "asc or desc"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.ProductPageResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.listProducts(c, nil)
}

// @Summary List store products
// @Description List purchasable products of one store
// @Tags products
// @Produce json
// @Param id path string true "Store ID"
// @Param keyword query string false "Keyword filter"
// @Param sort query string false "Sort key (price, sales, stock)"
// @Param order query string false "asc or desc"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.ProductPageResponse
// @Failure 400 {object} httperr.Response
// @Router /stores/{id}/products [get]
func (h *CatalogHandler) ListStoreProducts(c *gin.Context) {
	storeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.listProducts(c, &storeID)
}

func (h *CatalogHandler) listProducts(c *gin.Context, storeID *uuid.UUID) {
	filter := queries.ProductFilter{
		StoreID:    storeID,
		Sort:       queries.ParseSortKey(c.Query("sort")),
		Descending: strings.EqualFold(c.Query("order"), "desc"),
	}
	if kw := strings.TrimSpace(c.Query("keyword")); kw != "" {
		filter.Keyword = &kw
	}

	page, err := h.q.ListProducts(c.Request.Context(), filter,
		queryInt(c, "limit", queries.DefaultListLimit), queryInt(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductPage(page))
}

// @Summary Get product
// @Description Latest listing with live stock, sales and ratings. Authenticated callers also get availability net of their cart.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var viewer *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		viewer = &userID
	}

	view, err := h.q.GetProduct(c.Request.Context(), productID, viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Get listing snapshot
// @Description Get one immutable historical version of a listing
// @Tags products
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /snapshots/{id} [get]
func (h *CatalogHandler) GetSnapshot(c *gin.Context) {
	snapshotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetSnapshot(c.Request.Context(), snapshotID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotView(view))
}

// @Summary Create listing
// @Description Create a product with its first listing snapshot in a store owned by the caller
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{id}/products [post]
func (h *CatalogHandler) CreateListing(c *gin.Context) {
	storeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cmds.CreateListing(c.Request.Context(), actor, req.ToCommand(storeID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/products/"+result.ProductID.String())
	c.JSON(http.StatusCreated, resdto.FromListingResult(result))
}

// @Summary Edit listing
// @Description Replace the listing. A new snapshot version is created only when name, description or price change.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.EditListingRequest true "Edit listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [put]
func (h *CatalogHandler) EditListing(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.EditListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cmds.EditListing(c.Request.Context(), actor, req.ToCommand(productID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingResult(result))
}
