package middleware

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware renders errors attached to the gin context as a
// structured JSON response, mapping the error kind to an HTTP status.
func ErrorHandlerMiddleware(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
}
