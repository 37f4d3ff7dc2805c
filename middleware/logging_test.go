package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagamentos/metrics"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	router.GET("/boom", func(c *gin.Context) { c.String(500, "boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)

	// a valid incoming id is kept
	buf.Reset()
	given := uuid.NewString()
	req := httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(204) })

	counter := metrics.HTTPRequests.WithLabelValues("GET", "/items/:id", "204")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/2", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
