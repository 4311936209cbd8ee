package models

import "time"

// OwnerImage is the metadata record for an image file attached to an owner.
// OwnerID is a plain string reference; nothing at the store level enforces it.
type OwnerImage struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:varchar(36);not null;index" json:"ownerId"`
	File        string    `gorm:"type:text;not null" json:"file"`
	Enabled     bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"createdDate"`
}

// TableName specifies the table name for OwnerImage
func (OwnerImage) TableName() string {
	return "owner_images"
}
