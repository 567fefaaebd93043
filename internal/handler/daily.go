package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/service"
)

type DailyHandler struct {
	Daily *service.DailyService
}

func (h *DailyHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/daily")
	g.PUT("", h.upsert)
	g.GET("", h.list)
	g.DELETE("/:date", h.remove)
}

func (h *DailyHandler) upsert(c *gin.Context) {
	var in service.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid payload: "+err.Error(), nil)
		return
	}
	note, err := h.Daily.Upsert(c.Request.Context(), in)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, note, nil)
}

func (h *DailyHandler) list(c *gin.Context) {
	notes, err := h.Daily.List(c.Request.Context(), dateQuery(c, "start"), dateQuery(c, "end"))
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, notes, countMeta(len(notes)))
}

func (h *DailyHandler) remove(c *gin.Context) {
	err := h.Daily.Delete(c.Request.Context(), c.Param("date"))
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "note not found", nil)
		return
	}
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": c.Param("date")}, nil)
}
