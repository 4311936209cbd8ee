package handlers

import (
	"log"
	"net/http"
	"time"

	"property-portfolio/internal/cleanup"
	"property-portfolio/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler handles admin-related requests
type AdminHandler struct {
	db             *gorm.DB
	cleanupService *cleanup.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB, cleanupService *cleanup.Service) *AdminHandler {
	return &AdminHandler{db: db, cleanupService: cleanupService}
}

// Register mounts the admin routes on the given group
func (h *AdminHandler) Register(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStats)
	admin.POST("/cleanup/run", h.RunCleanup)
}

// GetStats returns system statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := make(map[string]interface{})

	var owners, properties, traces int64
	h.db.Model(&models.Owner{}).Count(&owners)
	h.db.Model(&models.Property{}).Count(&properties)
	h.db.Model(&models.PropertyTrace{}).Count(&traces)

	stats["entities"] = map[string]interface{}{
		"owners":     owners,
		"properties": properties,
		"traces":     traces,
	}

	imageStats, err := h.cleanupService.Stats()
	if err != nil {
		log.Printf("Failed to get image stats: %v", err)
	} else {
		stats["images"] = imageStats
	}

	c.JSON(http.StatusOK, stats)
}

// RunCleanup executes an orphan image sweep on demand
func (h *AdminHandler) RunCleanup(c *gin.Context) {
	var req struct {
		GraceMinutes     int  `json:"grace_minutes"`      // Minimum file age (default: 60)
		MaxDeletionCount int  `json:"max_deletion_count"` // Safety limit (default: 1000)
		DryRun           bool `json:"dry_run"`            // Dry run mode
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := cleanup.DefaultConfig()
	if req.GraceMinutes > 0 {
		cfg.GracePeriod = time.Duration(req.GraceMinutes) * time.Minute
	}
	if req.MaxDeletionCount > 0 {
		cfg.MaxDeletionCount = req.MaxDeletionCount
	}
	cfg.DryRun = req.DryRun

	log.Printf("Admin: running cleanup (grace: %s, max: %d, dry-run: %v)",
		cfg.GracePeriod, cfg.MaxDeletionCount, cfg.DryRun)

	result, err := h.cleanupService.Run(cfg)
	if err != nil {
		log.Printf("Admin: cleanup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
