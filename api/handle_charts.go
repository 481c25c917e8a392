package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orgcharts/orgcharts-backend/dto"
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/pure_utils"
)

type chartUsecase interface {
	AggregateChartData(ctx context.Context, request models.ChartDataRequest) ([]models.ChartRow, error)
}

func handlePostCharts(usecase chartUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.PostChartBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, dto.AdaptBindingError(err))
			return
		}

		rows, err := usecase.AggregateChartData(ctx, dto.AdaptChartDataRequest(body))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(rows, dto.AdaptChartRowDto))
	}
}
