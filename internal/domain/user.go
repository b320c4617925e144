package domain

// User holds a shopper and their running reward balance.
type User struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Points int    `json:"points" db:"points"`
}
