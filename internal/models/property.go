package models

// Property represents a real-estate asset. CodeInternal is the user-assigned
// business identifier; its uniqueness across properties is enforced by the
// service layer, not by the store. OwnerID references an Owner the same way.
type Property struct {
	ID           string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Address      string  `gorm:"type:varchar(200);not null" json:"address"`
	Price        float64 `gorm:"type:decimal(14,2);not null;index" json:"price"`
	CodeInternal string  `gorm:"type:varchar(50);not null;index" json:"codeInternal"`
	Year         int     `gorm:"type:int" json:"year"`
	OwnerID      string  `gorm:"type:varchar(36);not null;index" json:"ownerId"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}
