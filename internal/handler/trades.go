package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/models"
	"tradelog/internal/service"
)

type TradeHandler struct {
	Trades *service.TradeService
}

func (h *TradeHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/trades")
	g.POST("", h.create)
	g.GET("", h.list)
	g.PUT("", h.replaceAll)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *TradeHandler) create(c *gin.Context) {
	var in service.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid payload: "+err.Error(), nil)
		return
	}
	t, err := h.Trades.Add(c.Request.Context(), in)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusCreated, apiResponse{Code: 0, Message: "ok", Data: t})
}

func (h *TradeHandler) list(c *gin.Context) {
	trades, err := h.Trades.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, trades, countMeta(len(trades)))
}

func (h *TradeHandler) get(c *gin.Context) {
	t, err := h.Trades.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, t, nil)
}

func (h *TradeHandler) update(c *gin.Context) {
	var in service.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid payload: "+err.Error(), nil)
		return
	}
	t, err := h.Trades.Update(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, t, nil)
}

func (h *TradeHandler) remove(c *gin.Context) {
	err := h.Trades.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": c.Param("id")}, nil)
}

// replaceAll swaps the whole log for the posted rows: the bulk
// edit/delete flow where removed rows are simply omitted.
func (h *TradeHandler) replaceAll(c *gin.Context) {
	var trades []models.Trade
	if err := c.ShouldBindJSON(&trades); err != nil {
		Error(c, http.StatusBadRequest, "invalid payload: "+err.Error(), nil)
		return
	}
	if err := h.Trades.ReplaceAll(c.Request.Context(), trades); err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"replaced": len(trades)}, nil)
}
