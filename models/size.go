package models

// Size is a named portion variant (Small/Large/Family) scoped to a
// category. Names are unique per category; DisplayOrder ranks sizes from
// smallest to largest.
type Size struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"uniqueIndex:idx_sizes_category_name;not null"`
	CategoryID   uint     `gorm:"uniqueIndex:idx_sizes_category_name;not null"`
	Category     Category `gorm:"foreignKey:CategoryID"`
	DisplayOrder int      `gorm:"not null;default:0"`
}

func (s *Size) TableName() string {
	return "sizes"
}
