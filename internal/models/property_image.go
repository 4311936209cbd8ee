package models

// PropertyImage is the metadata record for an image file attached to a
// property. Unlike OwnerImage it carries no timestamp; reads come back in
// store order.
type PropertyImage struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string `gorm:"type:varchar(36);not null;index" json:"propertyId"`
	File       string `gorm:"type:text;not null" json:"file"`
	Enabled    bool   `gorm:"not null;default:true" json:"enabled"`
}

// TableName specifies the table name for PropertyImage
func (PropertyImage) TableName() string {
	return "property_images"
}
