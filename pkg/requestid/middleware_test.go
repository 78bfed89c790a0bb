package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steeplehq/gateway/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		var captured string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = requestid.FromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		require.NotEmpty(t, captured)
		assert.Equal(t, captured, rec.Header().Get(requestid.Header))
		assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]+$`), captured)
	})

	t.Run("reuses valid upstream id", func(t *testing.T) {
		t.Parallel()

		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestid.Header, "upstream-id_123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "upstream-id_123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid upstream id", func(t *testing.T) {
		t.Parallel()

		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		for _, bad := range []string{"has spaces", "semi;colon", strings.Repeat("x", 200)} {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(requestid.Header, bad)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.NotEqual(t, bad, rec.Header().Get(requestid.Header))
			assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, b := requestid.New(), requestid.New()
	assert.NotEqual(t, a, b)
	assert.True(t, requestid.Valid(a))
}
