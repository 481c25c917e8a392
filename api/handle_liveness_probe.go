package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type livenessUsecase interface {
	Liveness(ctx context.Context) error
}

func handleLivenessProbe(usecase livenessUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		err := usecase.Liveness(c.Request.Context())
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
