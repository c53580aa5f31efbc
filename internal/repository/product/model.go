package product

import "time"

type ProductDB struct {
	ID        int64
	Name      string
	Price     int64
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
