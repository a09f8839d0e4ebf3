package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/fullarch/financing-api/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bodyLogWriter is a wrapper around gin.ResponseWriter that captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware provides detailed request/response logging in development mode
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if not in development mode
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		correlationID := GetCorrelationID(c)

		if logger.Log == nil {
			c.Next()
			return
		}
		log := logger.Log.With(zap.String("correlation_id", correlationID))

		// Read and restore the request body so handlers can still bind it
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		// Log request headers (excluding sensitive ones)
		headers := make(map[string]string)
		for key, values := range c.Request.Header {
			if key == "Authorization" || key == "X-Api-Key" || key == "Cookie" {
				headers[key] = "[REDACTED]"
			} else if len(values) > 0 {
				headers[key] = values[0]
			}
		}

		// Parse request body for logging (only for JSON content)
		var requestJSON interface{}
		if c.GetHeader("Content-Type") == "application/json" && len(requestBody) > 0 {
			json.Unmarshal(requestBody, &requestJSON)
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headers),
			zap.Any("body", requestJSON),
			zap.Int("body_size", len(requestBody)),
		)

		// Capture the response body
		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		var responseJSON interface{}
		if blw.body.Len() > 0 {
			json.Unmarshal(blw.body.Bytes(), &responseJSON)
		}

		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(startTime)),
			zap.Any("body", responseJSON),
			zap.Int("body_size", blw.body.Len()),
		)
	}
}
