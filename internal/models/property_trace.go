package models

import "time"

// PropertyTrace is a historical event tied to a property (sale, valuation,
// tax assessment). Traces have an independent lifecycle; deleting one never
// cascades anywhere.
type PropertyTrace struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	DateSale   time.Time `gorm:"type:datetime;not null" json:"dateSale"`
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	Value      float64   `gorm:"type:decimal(14,2);not null" json:"value"`
	Tax        float64   `gorm:"type:decimal(14,2);not null" json:"tax"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"propertyId"`
}

// TableName specifies the table name for PropertyTrace
func (PropertyTrace) TableName() string {
	return "property_traces"
}
