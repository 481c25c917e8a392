package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/orgcharts/orgcharts-backend/dto"
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/utils"
)

func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	ctx := c.Request.Context()
	logger := utils.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, models.MissingFieldError):
		logger.InfoContext(ctx, "missing required fields", "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.APIMissingFieldsResponse{Message: dto.MissingFieldsMessage})

	case errors.Is(err, models.BadParameterError):
		logger.InfoContext(ctx, "bad parameter", "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Error: err.Error()})

	case errors.Is(err, models.NotFoundError):
		logger.InfoContext(ctx, "not found", "error", err.Error())
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Error: err.Error()})

	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{Error: dto.InternalServerErrorMessage})
	}
	return true
}
