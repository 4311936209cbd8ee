package handlers

import (
	"net/http"
	"strconv"

	"property-portfolio/internal/models"
	"property-portfolio/internal/repository"
	"property-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertiesHandler handles property-related requests
type PropertiesHandler struct {
	properties *service.Properties
}

// NewPropertiesHandler creates a new properties handler
func NewPropertiesHandler(properties *service.Properties) *PropertiesHandler {
	return &PropertiesHandler{properties: properties}
}

// Register mounts the property routes on the given group
func (h *PropertiesHandler) Register(api *gin.RouterGroup) {
	api.GET("/properties", h.List)
	api.GET("/properties/:id", h.Get)
	api.POST("/properties", h.Create)
	api.PUT("/properties/:id", h.Update)
	api.DELETE("/properties/:id", h.Delete)
	api.POST("/properties/:id/upload-image", h.UploadImage)
	api.GET("/properties/:id/images", h.GetImages)
	api.DELETE("/properties/delete-image", h.DeleteImage)
	api.GET("/search", h.Search)
}

type propertyRequest struct {
	ID           string   `json:"idProperty"`
	OwnerID      string   `json:"ownerId" binding:"required"`
	Name         string   `json:"name" binding:"required,min=3,max=100"`
	Address      string   `json:"address" binding:"required,min=5,max=200"`
	Price        *float64 `json:"price" binding:"required,gt=0"`
	CodeInternal string   `json:"codeInternal" binding:"required"`
	Year         int      `json:"year" binding:"required,gte=1900,lte=2100"`
}

type deletePropertyImageRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	ImageURL   string `json:"imageUrl" binding:"required"`
}

// List returns properties matching the optional query filters
func (h *PropertiesHandler) List(c *gin.Context) {
	filter := repository.PropertyFilter{
		Name:    c.Query("name"),
		Address: c.Query("address"),
	}

	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	properties, err := h.properties.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Get returns one property with its image URLs
func (h *PropertiesHandler) Get(c *gin.Context) {
	property, err := h.properties.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// Create validates and stores a new property
func (h *PropertiesHandler) Create(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property := models.Property{
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Address:      req.Address,
		Price:        *req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
	}
	if err := h.properties.Create(&property); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service.PropertyDetail{
		Property:  property,
		ImageURLs: []string{},
	})
}

// Update replaces a property document
func (h *PropertiesHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID != "" && req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "route id does not match the property id in the body"})
		return
	}

	property := models.Property{
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Address:      req.Address,
		Price:        *req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
	}
	if err := h.properties.Update(id, &property); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes a property and cascades to its image records
func (h *PropertiesHandler) Delete(c *gin.Context) {
	if err := h.properties.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage attaches a multipart image to a property
func (h *PropertiesHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("imageFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	image, err := h.properties.UploadImage(c.Param("id"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl": image.File,
		"imageId":  image.ID,
		"message":  "image uploaded successfully",
	})
}

// GetImages lists a property's image URLs
func (h *PropertiesHandler) GetImages(c *gin.Context) {
	urls, err := h.properties.ImageURLs(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, urls)
}

// DeleteImage removes one property image by (property, url) pair
func (h *PropertiesHandler) DeleteImage(c *gin.Context) {
	var req deletePropertyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.properties.DeleteImage(req.PropertyID, req.ImageURL); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search runs a full-text query against the search index
func (h *PropertiesHandler) Search(c *gin.Context) {
	if !h.properties.SearchEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not configured"})
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		limit = 20
	}

	properties, err := h.properties.SearchText(c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}
