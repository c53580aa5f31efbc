package instore_order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converters"
	"storefront/internal/service/checkout"
	"storefront/internal/service/inventory"
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
	var orderDTO dto.InStoreOrderRequest
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.SubmitInStore(r.Context(), checkout.InStoreOrder{
		ProductID:     orderDTO.ProductId,
		Quantity:      orderDTO.Quantity,
		CustomerName:  orderDTO.CustomerName,
		CustomerPhone: orderDTO.CustomerPhone,
		PaymentMethod: orderDTO.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrMissingRequiredFields),
			errors.Is(err, checkout.ErrInvalidName),
			errors.Is(err, checkout.ErrInvalidPhone),
			errors.Is(err, checkout.ErrInvalidPayment),
			errors.Is(err, checkout.ErrInvalidQuantity),
			errors.Is(err, checkout.ErrUnknownProduct):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, inventory.ErrInsufficientStock):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := converters.OrderToDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
