package handlers

import (
	"net/http"
	"time"

	"property-portfolio/internal/models"
	"property-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// TracesHandler handles property trace requests
type TracesHandler struct {
	traces *service.Traces
}

// NewTracesHandler creates a new traces handler
func NewTracesHandler(traces *service.Traces) *TracesHandler {
	return &TracesHandler{traces: traces}
}

// Register mounts the trace routes on the given group
func (h *TracesHandler) Register(api *gin.RouterGroup) {
	api.GET("/propertytraces", h.List)
	api.GET("/propertytraces/:id", h.Get)
	api.POST("/propertytraces", h.Create)
	api.PUT("/propertytraces/:id", h.Update)
	api.DELETE("/propertytraces/:id", h.Delete)
}

type traceRequest struct {
	DateSale   time.Time `json:"dateSale" binding:"required"`
	Name       string    `json:"name" binding:"required,min=3,max=200"`
	Value      *float64  `json:"value" binding:"required,gte=0"`
	Tax        *float64  `json:"tax" binding:"required,gte=0"`
	PropertyID string    `json:"propertyId" binding:"required"`
}

// List returns all traces
func (h *TracesHandler) List(c *gin.Context) {
	traces, err := h.traces.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, traces)
}

// Get returns one trace
func (h *TracesHandler) Get(c *gin.Context) {
	trace, err := h.traces.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trace)
}

// Create validates and stores a new trace
func (h *TracesHandler) Create(c *gin.Context) {
	var req traceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trace := models.PropertyTrace{
		DateSale:   req.DateSale,
		Name:       req.Name,
		Value:      *req.Value,
		Tax:        *req.Tax,
		PropertyID: req.PropertyID,
	}
	if err := h.traces.Create(&trace); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trace)
}

// Update replaces a trace document
func (h *TracesHandler) Update(c *gin.Context) {
	var req traceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trace := models.PropertyTrace{
		DateSale:   req.DateSale,
		Name:       req.Name,
		Value:      *req.Value,
		Tax:        *req.Tax,
		PropertyID: req.PropertyID,
	}
	if err := h.traces.Update(c.Param("id"), &trace); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes a trace
func (h *TracesHandler) Delete(c *gin.Context) {
	if err := h.traces.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
