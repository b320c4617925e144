package domain

// Packaging describes the material a product is sold in.
type Packaging string

const (
	PackagingGlass     Packaging = "glass"
	PackagingPaper     Packaging = "paper"
	PackagingCardboard Packaging = "cardboard"
	PackagingAluminum  Packaging = "aluminum"
	PackagingPlastic   Packaging = "plastic"
	PackagingStyrofoam Packaging = "styrofoam"
	PackagingOther     Packaging = "other"
)

// Product represents a product in the catalog.
// Category is the only key used to decide whether two products are comparable.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Packaging   Packaging `json:"packaging" db:"packaging"`
	IsOrganic   bool      `json:"is_organic" db:"is_organic"`
	CarbonKg    float64   `json:"carbon_kg" db:"carbon_kg"`
	Price       float64   `json:"price" db:"price"`
}
