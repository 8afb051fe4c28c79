package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a menu item.
// BasePrice is the price of the smallest applicable size, or the sole
// price for unsized items. HasSizes marks products with size-based pricing;
// their per-size adjustments live in PriceModifier rows.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	HasSizes    bool            `gorm:"not null;default:false"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CategoryID  uint            `gorm:"not null"`
	Category    Category        `gorm:"foreignKey:CategoryID"`
	Modifiers   []PriceModifier `gorm:"foreignKey:ProductID"`
}

func (p *Product) TableName() string {
	return "products"
}
