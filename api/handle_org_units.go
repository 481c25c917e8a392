package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orgcharts/orgcharts-backend/dto"
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/pure_utils"
)

type orgUnitUsecase interface {
	ListChildren(ctx context.Context, parentId *string) ([]models.OrgUnit, error)
}

func handleListOrgUnits(usecase orgUnitUsecase) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.ListOrgUnitsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			presentError(c, dto.AdaptQueryBindingError(err))
			return
		}

		var parentId *string
		if query.ParentId != "" {
			parentId = &query.ParentId
		}

		orgUnits, err := usecase.ListChildren(ctx, parentId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(orgUnits, dto.AdaptOrgUnitDto))
	}
}
