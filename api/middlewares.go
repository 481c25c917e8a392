package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	timeout "github.com/vearne/gin-timeout"

	"github.com/orgcharts/orgcharts-backend/utils"
)

const requestTimeoutBody = `{"error": "The request took too long to complete"}`

// timeoutMiddleware bounds the whole request, storage calls included, by a single deadline.
func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg(requestTimeoutBody),
		timeout.WithCallBack(func(r *http.Request) {
			utils.LoggerFromContext(r.Context()).WarnContext(r.Context(), "request timed out",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("timeout", duration))
		}),
	)
}
