package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hugohenrick/whop-relay/pkg/logger"
)

type recordingLogger struct {
	levels []string
}

func (l *recordingLogger) Info(msg string, keysAndValues ...interface{}) {
	l.levels = append(l.levels, "info")
}
func (l *recordingLogger) Error(msg string, keysAndValues ...interface{}) {
	l.levels = append(l.levels, "error")
}
func (l *recordingLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.levels = append(l.levels, "debug")
}
func (l *recordingLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.levels = append(l.levels, "warn")
}

var _ logger.Logger = (*recordingLogger)(nil)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recordingLogger{}

	router := gin.New()
	router.Use(RequestLogger(log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
		assert.NoError(t, err, path)
	}

	assert.Equal(t, []string{"info", "warn", "error"}, log.levels)
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestLogger(logger.NewNop()))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
