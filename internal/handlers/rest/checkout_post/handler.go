package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converters"
	"storefront/internal/service/checkout"
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
	var checkoutDTO dto.CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lines := make([]checkout.CartLine, len(checkoutDTO.Items))
	for i, item := range checkoutDTO.Items {
		lines[i] = checkout.CartLine{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		}
	}

	var address string
	if checkoutDTO.DeliveryAddress != nil {
		address = *checkoutDTO.DeliveryAddress
	}

	created, err := h.service.SubmitOnline(r.Context(), checkout.OnlineCheckout{
		Items:           lines,
		CustomerName:    checkoutDTO.CustomerName,
		CustomerPhone:   checkoutDTO.CustomerPhone,
		DeliveryOption:  entities.DeliveryOptionType(checkoutDTO.DeliveryOption),
		DeliveryAddress: address,
		PaymentMethod:   checkoutDTO.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrMissingRequiredFields),
			errors.Is(err, checkout.ErrInvalidName),
			errors.Is(err, checkout.ErrInvalidPhone),
			errors.Is(err, checkout.ErrInvalidPayment),
			errors.Is(err, checkout.ErrInvalidAddress),
			errors.Is(err, checkout.ErrInvalidDelivery),
			errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrInvalidQuantity),
			errors.Is(err, checkout.ErrUnknownProduct),
			errors.Is(err, order.ErrDuplicateProduct):
			w.WriteHeader(http.StatusBadRequest)
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
