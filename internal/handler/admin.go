package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/repository"
	"tradelog/internal/service"
)

type AdminHandler struct {
	Repo   repository.Repository
	Backup *service.BackupService
}

func (h *AdminHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/admin")
	g.POST("/reset", h.reset)
	g.POST("/backup", h.backup)
}

// reset truncates both stores back to empty, header-only files.
func (h *AdminHandler) reset(c *gin.Context) {
	if err := h.Repo.Reset(c.Request.Context()); err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"reset": true}, nil)
}

func (h *AdminHandler) backup(c *gin.Context) {
	written, err := h.Backup.Run()
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"files": written}, nil)
}
