package entities

import "time"

type Order struct {
	ID              int64
	Type            OrderType
	Status          OrderStatusType
	Items           []OrderItem
	Total           int64
	CustomerName    string
	CustomerPhone   string
	DeliveryOption  DeliveryOptionType
	DeliveryAddress string
	PaymentMethod   string
	CreatedAt       time.Time
	Archived        bool
	ArchivedAt      *time.Time
}

// OrderItem это снапшот позиции каталога на момент создания заказа,
// имя и цена копируются один раз и дальше не пересчитываются
type OrderItem struct {
	ProductID int64
	Name      string
	UnitPrice int64
	Quantity  int64
}

type OrderDraft struct {
	Type            OrderType
	Items           []OrderItem
	Total           int64
	CustomerName    string
	CustomerPhone   string
	DeliveryOption  DeliveryOptionType
	DeliveryAddress string
	PaymentMethod   string
}

type OrderType string

const (
	OrderTypeOnline  OrderType = "online"
	OrderTypeInStore OrderType = "in_store"
)

func (t OrderType) String() string {
	return string(t)
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderInProgress OrderStatusType = "in_progress"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type DeliveryOptionType string

const (
	DeliveryPickup  DeliveryOptionType = "pickup"
	DeliveryCourier DeliveryOptionType = "delivery"
)

func (d DeliveryOptionType) String() string {
	return string(d)
}
