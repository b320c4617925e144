package domain

// CartItem is a cart row joined with the product it refers to
type CartItem struct {
	CartID    int64     `json:"cart_id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Packaging Packaging `json:"packaging" db:"packaging"`
	IsOrganic bool      `json:"is_organic" db:"is_organic"`
	CarbonKg  float64   `json:"carbon_kg" db:"carbon_kg"`
	Price     float64   `json:"price" db:"price"`
	Quantity  int       `json:"quantity" db:"quantity"`
}
