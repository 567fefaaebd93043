package handler

import (
	"github.com/gin-gonic/gin"

	"tradelog/internal/models"
)

// MetaHandler serves the fixed form vocabularies so clients render the
// same pickers everywhere.
type MetaHandler struct{}

func (h *MetaHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/meta", h.meta)
}

func (h *MetaHandler) meta(c *gin.Context) {
	Ok(c, gin.H{
		"sides":       []string{models.SideLong, models.SideShort},
		"markets":     models.Markets,
		"moods":       models.Moods,
		"day_types":   models.DayTypes,
		"day_results": models.DayResults,
		"sessions":    models.Sessions,
		"strategies":  models.DefaultStrategies,
		"tags":        models.DefaultTags,
	}, nil)
}
