package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	intconfig "travellounge/internal/config"
	"travellounge/internal/domain/models"
	h "travellounge/internal/http/handlers"
	"travellounge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (*gin.Engine, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := services.AuthService{Secret: []byte("router-secret"), TTL: time.Hour}
	env := intconfig.Env{MediaDir: t.TempDir(), MediaBaseURL: "/media"}
	return NewRouter(env, &h.API{Auth: auth}), auth
}

func TestHealthAndNoRoute(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "route not found")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, auth := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	editor, _, err := auth.Issue(models.User{ID: 3, Role: services.RoleEditor})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+editor)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRealtimeWithoutHub(t *testing.T) {
	r, auth := testRouter(t)
	admin, _, err := auth.Issue(models.User{ID: 1, Role: services.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/realtime?token="+admin, nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMediaPrefix(t *testing.T) {
	require.Equal(t, "/uploads", mediaPrefix("/uploads"))
	require.Equal(t, "/media", mediaPrefix("https://cdn.example.com/media"))
	require.Equal(t, "/media", mediaPrefix(""))
}
