package models

// Category represents a menu grouping such as "Meat Pizzas".
// Name is the natural key the seeder upserts by; Slug is derived from it.
type Category struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	Slug         string `gorm:"uniqueIndex;not null"`
	Description  string
	DisplayOrder int `gorm:"not null;default:0"`
}

func (c *Category) TableName() string {
	return "categories"
}
