package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/whop-relay/pkg/logger"
)

// RequestIDHeader é o cabeçalho que carrega o ID da requisição
const RequestIDHeader = "X-Request-ID"

// RequestLogger registra método, rota, status e latência de cada requisição.
// Reaproveita o X-Request-ID recebido ou gera um novo.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
		}

		switch {
		case status >= 500:
			log.Error("Requisição falhou", fields...)
		case status >= 400:
			log.Warn("Requisição rejeitada", fields...)
		default:
			log.Info("Requisição atendida", fields...)
		}
	}
}
