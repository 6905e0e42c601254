// Package httperr defines the JSON error envelope every handler writes.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of an error. Status is carried for the
// error-handler middleware and never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	var resp Response
	resp.Status = status
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// AbortWithError writes the envelope and records the underlying error
// on the context so the logging middleware can report it. err must not
// be nil: the cause is what monitoring is for.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
