// Package respond maps store and validation errors onto JSON responses.
package respond

import (
	"errors"
	"net/http"

	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error writes {"error": ...} with a status derived from err. Unexpected
// errors are logged and answered with msg.
func Error(c *gin.Context, log *logrus.Logger, err error, msg string) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, content.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		if log != nil {
			log.WithError(err).WithField("path", c.FullPath()).Error("❌ " + msg)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// Invalid answers 400 for a single field.
func Invalid(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": (&content.ValidationError{Field: field, Message: message}).Error()})
}
