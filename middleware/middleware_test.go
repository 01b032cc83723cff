package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainMiddleware_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}

	h := ChainMiddleware(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}, mark("outer"), mark("inner"))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	var seen string
	h := LoggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestLoggingMiddleware_PropagatesIncomingID(t *testing.T) {
	var seen string
	h := LoggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "6F9619FF-8B86-D011-B42D-00C04FC964FF")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestLoggingMiddleware_ReplacesMalformedID(t *testing.T) {
	tests := map[string]string{
		"not a uuid":     "abc-123",
		"log injection":  "ok\n2024-01-01 00:00:00 [ERROR] forged",
		"oversized":      strings.Repeat("a", 4096),
		"uuid with tail": "6f9619ff-8b86-d011-b42d-00c04fc964ff; x",
	}

	for name, incoming := range tests {
		t.Run(name, func(t *testing.T) {
			var seen string
			h := LoggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, incoming)
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.NotEqual(t, incoming, seen)
			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestRecover(t *testing.T) {
	h := Recover(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal server error"}`, rec.Body.String())
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	h := CORSMiddleware(func(http.ResponseWriter, *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodOptions, "/api/products", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestSizeLimit(t *testing.T) {
	var readErr error
	h := RequestSizeLimit(4)(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("too long")))
	assert.Error(t, readErr)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.1")
	assert.Equal(t, "1.2.3.4", getClientIP(req))
}
