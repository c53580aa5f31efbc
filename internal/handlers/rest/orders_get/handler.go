package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/handlers/rest/converters"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		orders []entities.Order
		err    error
	)

	// ?archived=true возвращает архив целиком, иначе активные заказы
	// запрошенного типа
	if r.URL.Query().Get("archived") == "true" {
		orders, err = h.service.ListArchived(r.Context())
	} else {
		orderType := entities.OrderType(r.URL.Query().Get("type"))
		orders, err = h.service.ListOrders(r.Context(), orderType)
	}
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := converters.OrdersToDTO(orders)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
