package httperr

import (
	"pos-terminal/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and records err on the context for the error
// middleware. A nil err is replaced by one carrying msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
