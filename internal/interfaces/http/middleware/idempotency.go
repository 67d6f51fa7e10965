package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/interfaces/http/response"
	"mise.backend/pkg/logger"
	"mise.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// storedResponse is the replayable outcome of a completed request.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyMiddleware replays the stored response of a request already
// completed with the same Idempotency-Key by the same caller on the same
// method and path. Keys are scoped by the caller's token identifier; only 2xx
// outcomes are kept.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		scope := "anonymous"
		if identity := GetIdentity(c); identity != nil {
			scope = identity.TokenIdentifier
		}
		storageKey := "idempotency:" + scope + ":" + c.Request.Method + ":" + c.Request.URL.Path + ":" + key
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		switch {
		case err == nil && val == processingMarker:
			response.Abort(c, domainerrors.Conflict("Request already in progress"))
			return
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr != nil || stored.Status == 0 {
				logger.Warn(ctx, "Discarding unreadable idempotent response", zap.String("key", storageKey))
				_ = redisDel(ctx, storageKey)
				break
			}
			c.Header("X-Idempotency-Hit", "true")
			c.Data(stored.Status, stored.ContentType, stored.Body)
			c.Abort()
			return
		case !errors.Is(err, redis.Nil):
			logger.Warn(ctx, "Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !acquired {
			response.Abort(c, domainerrors.Conflict("Request already in progress"))
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			_ = redisDel(ctx, storageKey)
			return
		}
		payload, _ := json.Marshal(storedResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		})
		if err := redisSet(ctx, storageKey, string(payload), RetentionDuration); err != nil {
			logger.Warn(ctx, "Failed to store idempotent response", zap.Error(err))
		}
	}
}
