package order

import "time"

type OrderDB struct {
	ID              int64
	Type            string
	Status          string
	Total           int64
	CustomerName    string
	CustomerPhone   string
	DeliveryOption  string
	DeliveryAddress string
	PaymentMethod   string
	CreatedAt       time.Time
	Archived        bool
	ArchivedAt      *time.Time
}

type OrderItemDB struct {
	OrderID   int64
	ProductID int64
	Position  int64
	Name      string
	UnitPrice int64
	Quantity  int64
}
