package api

import (
	"net/http"
	"strconv"

	reqdto "pos-terminal/internal/handler/dto/request"
	resdto "pos-terminal/internal/handler/dto/response"
	"pos-terminal/internal/handler/httperr"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Current cart with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Add item
// @Description Add a product, merging into an identical line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.cmds.AddItem(c.Request.Context(), commands.AddItemRequest{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Choices:   req.Choices,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Add item failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Scan barcode
// @Description Add the product behind a barcode. Products with variants are not added.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ScanRequest true "Barcode"
// @Success 200 {object} resdto.ScanResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cart/scan [post]
func (h *CartHandler) Scan(c *gin.Context) {
	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ScanBarcode(c.Request.Context(), req.Barcode)
	if err != nil {
		abortWithUsecaseError(c, err, "Scan failed")
		return
	}
	res := resdto.ScanResponse{
		ProductID:    result.ProductID,
		Added:        result.Added,
		NeedsVariant: !result.Added,
	}
	if result.Added {
		cart, ok := h.loadCart(c)
		if !ok {
			return
		}
		res.Cart = cart
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update quantity
// @Description Set a line's quantity; zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param request body reqdto.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cart/items/{index} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateQuantity(c.Request.Context(), index, req.Quantity); err != nil {
		abortWithUsecaseError(c, err, "Update failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Remove item
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cart/items/{index} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), index); err != nil {
		abortWithUsecaseError(c, err, "Remove failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cmds.Clear(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err, "Clear failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Select customer
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SetCustomerRequest true "Customer"
// @Success 200 {object} resdto.CartResponse
// @Router /api/v1/cart/customer [put]
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req reqdto.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetCustomer(c.Request.Context(), req.Customer); err != nil {
		abortWithUsecaseError(c, err, "Update failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Select table
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SetTableRequest true "Table"
// @Success 200 {object} resdto.CartResponse
// @Router /api/v1/cart/table [put]
func (h *CartHandler) SetTable(c *gin.Context) {
	var req reqdto.SetTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetTable(c.Request.Context(), req.Table); err != nil {
		abortWithUsecaseError(c, err, "Update failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Hold order
// @Description Park the cart under a new id and clear it
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.HoldResponse
// @Failure 409 {object} httperr.Response
// @Router /api/v1/cart/hold [post]
func (h *CartHandler) Hold(c *gin.Context) {
	id, err := h.cmds.HoldOrder(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Hold failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.HoldResponse{ID: id.String()})
}

// @Summary List held orders
// @Tags cart
// @Produce json
// @Success 200 {array} resdto.HeldOrderResponse
// @Router /api/v1/cart/held [get]
func (h *CartHandler) ListHeld(c *gin.Context) {
	views, err := h.q.ListHeldOrders(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load held orders")
		return
	}
	res, err := resdto.FromHeldOrderViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render held orders", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Resume held order
// @Tags cart
// @Produce json
// @Param id path string true "Held order ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/cart/held/{id}/resume [post]
func (h *CartHandler) ResumeHeld(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.ResumeHeldOrder(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Resume failed")
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Discard held order
// @Tags cart
// @Param id path string true "Held order ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cart/held/{id} [delete]
func (h *CartHandler) DiscardHeld(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DiscardHeldOrder(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Discard failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondWithCart(c *gin.Context, status int) {
	res, ok := h.loadCart(c)
	if !ok {
		return
	}
	c.JSON(status, res)
}

func (h *CartHandler) loadCart(c *gin.Context) (*resdto.CartResponse, bool) {
	view, err := h.q.GetCart(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return nil, false
	}
	res, err := resdto.FromCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
		return nil, false
	}
	return res, true
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid line index", nil)
		return 0, false
	}
	return index, true
}
