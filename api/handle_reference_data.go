package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orgcharts/orgcharts-backend/dto"
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/pure_utils"
)

type dataElementUsecase interface {
	ListDataElements(ctx context.Context) ([]models.DataElement, error)
}

type periodUsecase interface {
	ListPeriods(ctx context.Context, periodType *string) ([]models.Period, error)
}

type dataSetUsecase interface {
	ListDataSets(ctx context.Context) ([]models.DataSet, error)
}

func handleListDataElements(usecase dataElementUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		dataElements, err := usecase.ListDataElements(c.Request.Context())
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(dataElements, dto.AdaptDataElementDto))
	}
}

func handleListPeriods(usecase periodUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		var query dto.ListPeriodsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			presentError(c, dto.AdaptQueryBindingError(err))
			return
		}

		var periodType *string
		if query.PeriodType != "" {
			periodType = &query.PeriodType
		}

		periods, err := usecase.ListPeriods(c.Request.Context(), periodType)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(periods, dto.AdaptPeriodDto))
	}
}

func handleListDataSets(usecase dataSetUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		dataSets, err := usecase.ListDataSets(c.Request.Context())
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(dataSets, dto.AdaptDataSetDto))
	}
}
