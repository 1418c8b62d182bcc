package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locallibrary/internal/entity"
	"locallibrary/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("no token redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/", nil)

		AuthMiddleware(testSecret)(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, LoginURL, w.Header().Get("Location"))
	})

	t.Run("garbage token redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")

		AuthMiddleware(testSecret)(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("expired token redirects to login", func(t *testing.T) {
		token := testutil.GenerateExpiredToken(testSecret, testutil.TestUser.ID, testutil.TestUser.Role)

		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/catalog/", nil, token)

		AuthMiddleware(testSecret)(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, LoginURL, w.Header().Get("Location"))
	})

	t.Run("valid token passes user through context", func(t *testing.T) {
		token := testutil.GenerateTestToken(testSecret, testutil.TestLibrarian.ID, testutil.TestLibrarian.Role)
		require.NotEmpty(t, token)

		var gotUser, gotRole string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser = UserIDFrom(r)
			gotRole = RoleFrom(r)
		})

		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/catalog/", nil, token)

		AuthMiddleware(testSecret)(inner).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testutil.TestLibrarian.ID, gotUser)
		assert.Equal(t, entity.RoleLibrarian, gotRole)
	})
}

func TestRequireCanMarkReturned(t *testing.T) {
	tests := []struct {
		role       string
		wantStatus int
	}{
		{entity.RoleUser, http.StatusForbidden},
		{entity.RoleLibrarian, http.StatusOK},
		{entity.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/catalog/borrowed", nil)
			r = r.WithContext(ContextWithUser(r.Context(), "user-1", tt.role))

			RequireCanMarkReturned(okHandler()).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("mints a cookie for new sessions", func(t *testing.T) {
		var gotSession string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSession = SessionIDFrom(r)
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/", nil)

		SessionMiddleware(inner).ServeHTTP(w, r)

		require.NotEmpty(t, gotSession)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, gotSession, cookies[0].Value)
	})

	t.Run("reuses an existing cookie", func(t *testing.T) {
		var gotSession string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSession = SessionIDFrom(r)
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/", nil)
		r.AddCookie(&http.Cookie{Name: "librarysession", Value: "existing-session"})

		SessionMiddleware(inner).ServeHTTP(w, r)

		assert.Equal(t, "existing-session", gotSession)
		assert.Empty(t, w.Result().Cookies(), "no new cookie when one exists")
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	SecurityHeadersMiddleware(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.ContentLength = 1 << 20

	RequestSizeLimitMiddleware(1024)(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
