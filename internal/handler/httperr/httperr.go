package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

// Detail carries the machine-readable reason for a rejection.
type Detail struct {
	Code string `json:"code"`
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

// New builds a response body. An empty code leaves detail out.
func New(status int, msg, code string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	if code != "" {
		resp.Detail = &Detail{Code: code}
	}
	return resp
}

// Internal hides the cause behind a generic 500 body.
func Internal() Response {
	return New(http.StatusInternalServerError, internalMessage, "")
}

// AbortWithError keeps err on the context for the logging middleware and
// writes the response.
func AbortWithError(c *gin.Context, status int, err error, msg, code string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	if status >= http.StatusInternalServerError {
		msg, code = internalMessage, ""
	}
	resp := New(status, msg, code)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
