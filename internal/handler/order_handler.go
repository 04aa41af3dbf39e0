package handler

import (
	"net/http"

	"marketplace/ecommerce/internal/metrics"
	"marketplace/ecommerce/internal/model"
	"marketplace/ecommerce/internal/service"

	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	svc *service.OrderService
	log logrus.FieldLogger
}

func NewOrderHandler(svc *service.OrderService, log logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

// checkoutRequest has no id or orderDate: both are assigned by the server.
type checkoutRequest struct {
	UserID       int64   `json:"userId"`
	ProductNames string  `json:"productNames"`
	TotalPrice   float64 `json:"totalPrice"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), model.Order{
		UserID:       req.UserID,
		ProductNames: req.ProductNames,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		internalError(h.log, w, r, err)
		return
	}

	metrics.RecordOrderPlaced()
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid id")
		return
	}

	orders, err := h.svc.ListOrdersForUser(r.Context(), userID)
	if err != nil {
		internalError(h.log, w, r, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
