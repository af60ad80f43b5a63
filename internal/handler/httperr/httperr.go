package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error body. Status is kept for the error
// middleware and never serialized.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes the public message and, when an underlying error
// exists, records it on the context for the error middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
