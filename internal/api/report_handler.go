// Package api serves the research dashboard and its JSON API.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/researchflow/internal/db"
	"github.com/spacesedan/researchflow/internal/dispatch"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/render"
)

const DEFAULT_LIST_LIMIT = 20

// Researcher runs one research pass.
type Researcher interface {
	Run(ctx context.Context, keywords []string, limit int) (models.ResearchReport, error)
}

type ResearchRequest struct {
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
}

type ReportHandler struct {
	svc          Researcher
	store        db.ReportStore
	modelHealthy *atomic.Bool
}

func NewReportHandler(svc Researcher, store db.ReportStore, modelHealthy *atomic.Bool) *ReportHandler {
	return &ReportHandler{svc: svc, store: store, modelHealthy: modelHealthy}
}

// RunResearch handles POST /api/v1/research.
func (h *ReportHandler) RunResearch(c *gin.Context) {
	var req ResearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}

	report, err := h.svc.Run(c.Request.Context(), req.Keywords, req.Limit)
	if err != nil {
		if errors.Is(err, dispatch.ErrNoKeywords) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("[API] Research run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetReport handles GET /api/v1/reports/:id.
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListReports handles GET /api/v1/reports.
func (h *ReportHandler) ListReports(c *gin.Context) {
	limit := DEFAULT_LIST_LIMIT
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	reports, err := h.store.ListReports(c.Request.Context(), limit)
	if err != nil {
		slog.Error("[API] Failed to list reports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

// DownloadReport handles GET /api/v1/reports/:id/download.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	report, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="research-`+report.ID+`.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(render.Markdown(report)))
}

// Health handles GET /health.
func (h *ReportHandler) Health(c *gin.Context) {
	healthy := h.modelHealthy == nil || h.modelHealthy.Load()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model_healthy": healthy})
}

func (h *ReportHandler) lookup(c *gin.Context) (models.ResearchReport, bool) {
	report, err := h.store.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return models.ResearchReport{}, false
		}
		slog.Error("[API] Failed to load report",
			slog.String("id", c.Param("id")),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return models.ResearchReport{}, false
	}
	return report, true
}
