package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steeplehq/gateway/pkg/clientip"
)

func TestClientKey(t *testing.T) {
	t.Parallel()

	t.Run("cdn header wins", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("CF-Connecting-IP", "203.0.113.7")
		req.Header.Set("X-Forwarded-For", "198.51.100.1")
		req.Header.Set("X-Real-IP", "192.0.2.1")

		assert.Equal(t, "203.0.113.7", clientip.ClientKey(req))
	})

	t.Run("first forwarded-for entry", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", " 198.51.100.1 , 10.0.0.1, 10.0.0.2")

		assert.Equal(t, "198.51.100.1", clientip.ClientKey(req))
	})

	t.Run("real-ip fallback", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Real-IP", "192.0.2.33")

		assert.Equal(t, "192.0.2.33", clientip.ClientKey(req))
	})

	t.Run("invalid header values fall through", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("CF-Connecting-IP", "not-an-ip")
		req.Header.Set("X-Forwarded-For", "also-garbage")
		req.Header.Set("X-Real-IP", "192.0.2.50")

		assert.Equal(t, "192.0.2.50", clientip.ClientKey(req))
	})

	t.Run("remote addr fallback", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.0.2.9:1234"

		assert.Equal(t, "192.0.2.9", clientip.ClientKey(req))
	})

	t.Run("ipv6 normalized", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("CF-Connecting-IP", "2001:0db8:0000:0000:0000:0000:0000:0001")

		assert.Equal(t, "2001:db8::1", clientip.ClientKey(req))
	})

	t.Run("unknown sentinel", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = ""

		assert.Equal(t, clientip.UnknownKey, clientip.ClientKey(req))
	})
}
