package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires the dashboard, the JSON API, health and metrics.
func SetupRoutes(router *gin.Engine, reports *ReportHandler, dashboard *DashboardHandler) {
	router.SetHTMLTemplate(DashboardTemplate())

	router.GET("/", dashboard.Index)
	router.POST("/research", dashboard.SubmitResearch)

	router.GET("/health", reports.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.POST("/research", reports.RunResearch)
	v1.GET("/reports", reports.ListReports)
	v1.GET("/reports/:id", reports.GetReport)
	v1.GET("/reports/:id/download", reports.DownloadReport)
}
