package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dream-journal/apperrors"
	"dream-journal/cmd/api/dto"
	"dream-journal/cmd/api/middleware"
	"dream-journal/internal/logger"
)

// respondError converts a service error into the uniform JSON failure body.
// Untyped errors are logged and rendered as a generic 500.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
	}
	c.JSON(status, dto.ErrorResponseDTO{Message: apperrors.MessageOf(err)})
}

// callerID pulls the authenticated user id set by the token middleware. The
// route table guarantees it is present; the guard covers misconfiguration.
func callerID(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Message: "Authorization required"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseObjectID(c *gin.Context, hex, what string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid " + what + " id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseObjectIDs(c *gin.Context, hexes []string, what string) ([]primitive.ObjectID, bool) {
	out := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid " + what + " id"})
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

// parseDate accepts RFC 3339 or plain YYYY-MM-DD; empty input yields the zero
// time for the service layer to default.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
