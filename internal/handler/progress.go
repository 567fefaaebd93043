package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/repository"
	"tradelog/internal/schema"
	"tradelog/internal/service"
	"tradelog/internal/stats"
)

type ProgressHandler struct {
	Progress *service.ProgressService
}

func (h *ProgressHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/progress")
	g.GET("/summary", h.summary)
	g.GET("/equity", h.equity)
	g.GET("/weekly", h.weekly)
	g.GET("/monthly", h.monthly)
}

func (h *ProgressHandler) summary(c *gin.Context) {
	s, err := h.Progress.Summary(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, s, nil)
}

func (h *ProgressHandler) equity(c *gin.Context) {
	points, err := h.Progress.Equity(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	rows := make([]gin.H, 0, len(points))
	for _, p := range points {
		rows = append(rows, gin.H{"date": schema.FormatDate(p.Date), "equity": p.Equity})
	}
	Ok(c, rows, countMeta(len(rows)))
}

func (h *ProgressHandler) weekly(c *gin.Context) {
	h.buckets(c, h.Progress.Weekly)
}

func (h *ProgressHandler) monthly(c *gin.Context) {
	h.buckets(c, h.Progress.Monthly)
}

func (h *ProgressHandler) buckets(c *gin.Context, load func(context.Context, repository.Filter) ([]stats.BucketSum, error)) {
	sums, err := load(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	rows := make([]gin.H, 0, len(sums))
	for _, b := range sums {
		rows = append(rows, gin.H{"start": schema.FormatDate(b.Start), "pnl": b.PnL})
	}
	Ok(c, rows, countMeta(len(rows)))
}
