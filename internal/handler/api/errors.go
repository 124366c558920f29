package api

import (
	"encoding/json"
	"net/http"

	"pos-terminal/internal/gateway"
	"pos-terminal/internal/handler/httperr"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins, so more specific causes come before the wrappers marked onto them
var errorMappings = []errorMapping{
	{errs.ErrUpstreamUnavailable, http.StatusServiceUnavailable, "Account service unavailable"},
	{commands.ErrPasswordMismatch, http.StatusBadRequest, "Passwords do not match"},
	{commands.ErrValidation, http.StatusBadRequest, "Invalid request data"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrNotAuthenticated, http.StatusUnauthorized, "Not authenticated"},
	{queries.ErrNotAuthenticated, http.StatusUnauthorized, "Not authenticated"},
	{commands.ErrAccountService, http.StatusBadGateway, "Account service error"},
	{queries.ErrAccountService, http.StatusBadGateway, "Account service error"},
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrUnknownBarcode, http.StatusNotFound, "Unknown barcode"},
	{errs.ErrLineNotFound, http.StatusNotFound, "Cart line not found"},
	{errs.ErrHeldOrderNotFound, http.StatusNotFound, "Held order not found"},
	{errs.ErrInvalidSelection, http.StatusBadRequest, "Invalid product selection"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data"},
	{errs.ErrEmptyCart, http.StatusConflict, "Cart is empty"},
	{errs.ErrCartNotResumable, http.StatusConflict, "Cart must be empty to resume a held order"},
	{errs.ErrNoOpenCheckout, http.StatusConflict, "No checkout in progress"},
}

// abortWithUsecaseError maps a usecase error to a status. Rejections from the account service
// keep the upstream status and body so field errors reach the form.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	if errs.Is(err, commands.ErrUpstreamRejected) {
		status, detail := http.StatusBadRequest, any(nil)
		if se, ok := gateway.AsStatusError(err); ok {
			status = se.StatusCode
			detail = upstreamDetail(se.Body)
		}
		httperr.AbortWithError(c, status, err, "Request rejected by account service", detail)
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func upstreamDetail(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
