package order

import "storefront/internal/entities"

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderInProgress,
		entities.OrderCompleted, entities.OrderCancelled:
		return true
	default:
		return false
	}
}

// canTransition таблица переходов статусов. Обратно в pending пути нет,
// completed и cancelled терминальны.
func canTransition(from, to entities.OrderStatusType) bool {
	switch from {
	case entities.OrderPending:
		return to == entities.OrderInProgress ||
			to == entities.OrderCompleted ||
			to == entities.OrderCancelled
	case entities.OrderInProgress:
		return to == entities.OrderCompleted ||
			to == entities.OrderCancelled
	default:
		return false
	}
}
