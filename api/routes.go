package api

import (
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orgcharts/orgcharts-backend/usecases"
)

const maxChartBodySize = 1 * 1024 * 1024 // 1MB

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	livenessUsecase := uc.NewLivenessUsecase()
	orgUnitUsecase := uc.NewOrgUnitUsecase()
	chartUsecase := uc.NewChartUsecase()
	dataElementUsecase := uc.NewDataElementUsecase()
	periodUsecase := uc.NewPeriodUsecase()
	dataSetUsecase := uc.NewDataSetUsecase()

	r.GET("/liveness", handleLivenessProbe(&livenessUsecase))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router := r.Group("/", timeoutMiddleware(conf.DefaultTimeout))

	router.GET("/orgUnits", handleListOrgUnits(&orgUnitUsecase))
	router.POST("/charts", limits.RequestSizeLimiter(maxChartBodySize), handlePostCharts(&chartUsecase))
	router.GET("/dataElements", handleListDataElements(&dataElementUsecase))
	router.GET("/periods", handleListPeriods(&periodUsecase))
	router.GET("/dataSets", handleListDataSets(&dataSetUsecase))
}
