package models

// Product represents a single row in the products table.
// The ID is assigned by the database on insert and never changes afterwards.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null" validate:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}
