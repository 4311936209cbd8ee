package models

import "time"

// Owner represents a property owner. The Photo field is a denormalized copy
// of the owner's most recent enabled image reference; the image collection
// stays authoritative and readers refresh Photo from it.
type Owner struct {
	ID       string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string     `gorm:"type:varchar(200);not null" json:"name"`
	Address  string     `gorm:"type:varchar(300);not null" json:"address"`
	Photo    *string    `gorm:"type:text" json:"photo,omitempty"`
	Birthday *time.Time `gorm:"type:datetime" json:"birthday,omitempty"`
}

// TableName specifies the table name for Owner
func (Owner) TableName() string {
	return "owners"
}
