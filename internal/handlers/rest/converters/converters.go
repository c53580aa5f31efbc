package converters

import (
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
)

func OrderToDTO(o *entities.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = dto.OrderItemResponse{
			ProductId: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	response := dto.OrderResponse{
		Id:             o.ID,
		Type:           o.Type.String(),
		Status:         o.Status.String(),
		Items:          items,
		Total:          o.Total,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		DeliveryOption: o.DeliveryOption.String(),
		PaymentMethod:  o.PaymentMethod,
		CreatedAt:      o.CreatedAt,
		Archived:       o.Archived,
		ArchivedAt:     o.ArchivedAt,
	}
	if o.DeliveryAddress != "" {
		address := o.DeliveryAddress
		response.DeliveryAddress = &address
	}
	return response
}

func OrdersToDTO(orders []entities.Order) dto.OrdersResponse {
	result := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		result[i] = OrderToDTO(&orders[i])
	}
	return dto.OrdersResponse{Orders: result}
}
