package api

import (
	"errors"                   // Error unwrapping
	"net/http"                 // HTTP status codes
	"splitpal/internal/domain" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps a service error onto the HTTP taxonomy: NotFound
// becomes 404, ValidationError and InvalidStateError become 400, anything
// else is a 500. No error is swallowed or downgraded.
func respondError(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var invalidState *domain.InvalidStateError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &invalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidState.Error()})
	default:
		// Unexpected storage failure: log it, keep the message generic
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
