package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(mw...)
	engine.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	engine.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return engine
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	existing := uuid.NewString()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated", incoming: ""},
		{name: "kept", incoming: existing, keep: true},
		{name: "malformed is replaced", incoming: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			newEngine(RequestID()).ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, w.Body.String())
			if tt.keep {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "http://a.test", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "empty allows all", origin: "http://a.test", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "listed", allowed: []string{"http://a.test", "http://b.test"}, origin: "http://b.test", method: http.MethodGet, wantOrigin: "http://b.test", wantStatus: http.StatusOK},
		{name: "not listed", allowed: []string{"http://a.test"}, origin: "http://evil.test", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"http://a.test"}, origin: "http://a.test", method: http.MethodOptions, wantOrigin: "http://a.test", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/ok", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			newEngine(CORS(tt.allowed)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	engine := newEngine(RequestID(), Logger(zap.New(core)))

	for _, target := range []string{"/ok?scope=all", "/broken", "/missing"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, "scope=all", fields["query"])
	assert.NotEmpty(t, fields["request_id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[2].ContextMap()["status"])
}
