package api

import (
	"net/http"

	reqdto "pos-terminal/internal/handler/dto/request"
	resdto "pos-terminal/internal/handler/dto/response"
	"pos-terminal/internal/handler/httperr"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Open checkout
// @Description Start paying for the current cart
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/v1/checkout [post]
func (h *CheckoutHandler) Open(c *gin.Context) {
	h.respond(c)(h.cmds.Open(c.Request.Context()))
}

// @Summary Current checkout
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/v1/checkout [get]
func (h *CheckoutHandler) Current(c *gin.Context) {
	h.respond(c)(h.cmds.Current(c.Request.Context()))
}

// @Summary Set tip
// @Description Choose a preset percentage or a custom amount
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.TipRequest true "Tip"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/checkout/tip [put]
func (h *CheckoutHandler) SetTip(c *gin.Context) {
	var req reqdto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	switch {
	case req.Percent != nil:
		h.respond(c)(h.cmds.SelectTip(c.Request.Context(), *req.Percent))
	case req.Amount != nil:
		h.respond(c)(h.cmds.SetCustomTip(c.Request.Context(), *req.Amount))
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "percent or amount is required", nil)
	}
}

// @Summary Toggle split payment
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/v1/checkout/split [post]
func (h *CheckoutHandler) ToggleSplit(c *gin.Context) {
	h.respond(c)(h.cmds.ToggleSplit(c.Request.Context()))
}

// @Summary Set amount collected now
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.AmountRequest true "Amount"
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/v1/checkout/amount [put]
func (h *CheckoutHandler) SetAmount(c *gin.Context) {
	var req reqdto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.cmds.SetAmount(c.Request.Context(), req.Amount))
}

// @Summary Set cash received
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.AmountRequest true "Cash"
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/v1/checkout/cash [put]
func (h *CheckoutHandler) SetCashReceived(c *gin.Context) {
	var req reqdto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.cmds.SetCashReceived(c.Request.Context(), req.Amount))
}

// @Summary Set payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.MethodRequest true "Method"
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/v1/checkout/method [put]
func (h *CheckoutHandler) SetMethod(c *gin.Context) {
	var req reqdto.MethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.cmds.SetMethod(c.Request.Context(), req.Method))
}

// @Summary Set receipt options
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ReceiptRequest true "Receipt"
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/v1/checkout/receipt [put]
func (h *CheckoutHandler) SetReceipt(c *gin.Context) {
	var req reqdto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.cmds.SetReceipt(c.Request.Context(), req.Print, req.Email))
}

// @Summary Cancel checkout
// @Tags checkout
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /api/v1/checkout [delete]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.cmds.Cancel(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err, "Cancel failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete payment
// @Description Settle the checkout. A full payment clears the cart.
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CompletionResponse
// @Failure 409 {object} httperr.Response
// @Router /api/v1/checkout/complete [post]
func (h *CheckoutHandler) Complete(c *gin.Context) {
	view, err := h.cmds.Complete(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Payment failed")
		return
	}
	res, err := resdto.FromCompletionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render payment", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CheckoutHandler) respond(c *gin.Context) func(*queries.CheckoutView, error) {
	return func(view *queries.CheckoutView, err error) {
		if err != nil {
			abortWithUsecaseError(c, err, "Checkout failed")
			return
		}
		res, err := resdto.FromCheckoutView(view)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render checkout", nil)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
