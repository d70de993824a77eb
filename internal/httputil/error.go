package httputil

import (
	"github.com/gin-gonic/gin"
)

// NewError writes an HTTPError with the status passed in.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the association already exists"`
}
