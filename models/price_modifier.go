package models

import (
	"github.com/shopspring/decimal"
)

// PriceModifier is the additive price adjustment for ordering a product in
// a non-base size: size price = product base price + delta. The base size
// carries no modifier row.
type PriceModifier struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"uniqueIndex:idx_modifiers_product_size;not null"`
	SizeID    uint            `gorm:"uniqueIndex:idx_modifiers_product_size;not null"`
	Size      Size            `gorm:"foreignKey:SizeID"`
	Delta     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (m *PriceModifier) TableName() string {
	return "price_modifiers"
}
