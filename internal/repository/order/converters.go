package order

import (
	"storefront/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		Type:            entities.OrderType(o.Type),
		Status:          entities.OrderStatusType(o.Status),
		Items:           toDomainItems(items),
		Total:           o.Total,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		DeliveryOption:  entities.DeliveryOptionType(o.DeliveryOption),
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		Archived:        o.Archived,
		ArchivedAt:      o.ArchivedAt,
	}
}

func toDomainItems(itemsDB []OrderItemDB) []entities.OrderItem {
	if len(itemsDB) == 0 {
		return []entities.OrderItem{}
	}

	result := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = entities.OrderItem{
			ProductID: itemDB.ProductID,
			Name:      itemDB.Name,
			UnitPrice: itemDB.UnitPrice,
			Quantity:  itemDB.Quantity,
		}
	}
	return result
}

func FromDomainItems(orderID int64, items []entities.OrderItem) []OrderItemDB {
	result := make([]OrderItemDB, len(items))
	for i, item := range items {
		result[i] = OrderItemDB{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Position:  int64(i),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return result
}
