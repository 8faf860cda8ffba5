package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Generation(errors.New("upstream")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusOf(tc.err), "%v", tc.err)
	}
}

func TestMessageOfHidesInternals(t *testing.T) {
	assert.Equal(t, "Dream not found", MessageOf(NotFound("Dream not found")))
	assert.Equal(t, "AI generation failed", MessageOf(Generation(errors.New("api key leaked into error"))))
	assert.Equal(t, "Internal server error", MessageOf(errors.New("pq: connection refused")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("list insights: %w", NotFound("Insight not found or unauthorized"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
}

func TestGenerationUnwraps(t *testing.T) {
	cause := errors.New("model overloaded")
	err := Generation(cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "AI generation failed")
	assert.Contains(t, err.Error(), "model overloaded")
}
