package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "mise.backend/internal/domain/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newContext()

	Success(c, http.StatusCreated, gin.H{"ok": true})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"app error", domainerrors.NotFound("team not found"), http.StatusNotFound, `{"code":"NOT_FOUND","message":"team not found"}`},
		{"forbidden", domainerrors.Forbidden("nope"), http.StatusForbidden, `{"code":"FORBIDDEN","message":"nope"}`},
		{"transition", domainerrors.InvalidTransition("application is already matched"), http.StatusConflict, `{"code":"CONFLICT","message":"application is already matched"}`},
		{"wrapped sentinel", fmt.Errorf("load: %w", domainerrors.ErrNotFound), http.StatusNotFound, `{"code":"NOT_FOUND","message":"load: resource not found"}`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `{"code":"INTERNAL_ERROR","message":"internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestAbort(t *testing.T) {
	c, w := newContext()

	Abort(c, domainerrors.Unauthorized("not authenticated"))
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":"UNAUTHENTICATED","message":"not authenticated"}`, w.Body.String())
}
