package handlers

import (
	"net/http"
	"time"

	"property-portfolio/internal/models"
	"property-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnersHandler handles owner-related requests
type OwnersHandler struct {
	owners *service.Owners
}

// NewOwnersHandler creates a new owners handler
func NewOwnersHandler(owners *service.Owners) *OwnersHandler {
	return &OwnersHandler{owners: owners}
}

// Register mounts the owner routes on the given group
func (h *OwnersHandler) Register(api *gin.RouterGroup) {
	api.GET("/owners", h.List)
	api.GET("/owners/:id", h.Get)
	api.POST("/owners", h.Create)
	api.POST("/owners/with-image", h.CreateWithImage)
	api.PUT("/owners/:id", h.Update)
	api.DELETE("/owners/:id", h.Delete)
	api.POST("/owners/:id/upload-image", h.UploadImage)
	api.GET("/owners/:id/images", h.GetImages)
	api.DELETE("/owners/delete-image", h.DeleteImage)
}

type ownerRequest struct {
	Name     string     `json:"name" binding:"required"`
	Address  string     `json:"address" binding:"required"`
	Photo    *string    `json:"photo"`
	Birthday *time.Time `json:"birthday"`
}

type ownerWithImageRequest struct {
	Name     string     `form:"name" binding:"required"`
	Address  string     `form:"address" binding:"required"`
	Birthday *time.Time `form:"birthday" time_format:"2006-01-02"`
}

type deleteOwnerImageRequest struct {
	OwnerID  string `json:"ownerId" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

// List returns all owners with their primary photo resolved
func (h *OwnersHandler) List(c *gin.Context) {
	owners, err := h.owners.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// Get returns one owner
func (h *OwnersHandler) Get(c *gin.Context) {
	owner, err := h.owners.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// Create stores a new owner (no image)
func (h *OwnersHandler) Create(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner := models.Owner{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday,
	}
	if err := h.owners.Create(&owner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// CreateWithImage stores a new owner plus an optional multipart image
func (h *OwnersHandler) CreateWithImage(c *gin.Context) {
	var req ownerWithImageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Image is optional on this route
	file, err := c.FormFile("photoFile")
	if err != nil {
		file = nil
	}

	owner := models.Owner{
		Name:     req.Name,
		Address:  req.Address,
		Birthday: req.Birthday,
	}
	if err := h.owners.CreateWithImage(&owner, file); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// Update replaces an owner document
func (h *OwnersHandler) Update(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner := models.Owner{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday,
	}
	if err := h.owners.Update(c.Param("id"), &owner); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes an owner and cascades to its images
func (h *OwnersHandler) Delete(c *gin.Context) {
	if err := h.owners.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage attaches a multipart image to an owner
func (h *OwnersHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("imageFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	image, err := h.owners.UploadImage(c.Param("id"), file)
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

// GetImages lists an owner's image records
func (h *OwnersHandler) GetImages(c *gin.Context) {
	images, err := h.owners.Images(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(images))
	for _, img := range images {
		out = append(out, gin.H{
			"id":          img.ID,
			"url":         img.File,
			"createdDate": img.CreatedDate,
			"enabled":     img.Enabled,
		})
	}
	c.JSON(http.StatusOK, out)
}

// DeleteImage removes one owner image by (owner, url) pair
func (h *OwnersHandler) DeleteImage(c *gin.Context) {
	var req deleteOwnerImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.owners.DeleteImage(req.OwnerID, req.ImageURL); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
