package handler

import (
	"net/http"

	"marketplace/ecommerce/internal/model"
	"marketplace/ecommerce/internal/service"

	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	svc *service.CatalogService
	log logrus.FieldLogger
}

func NewProductHandler(svc *service.CatalogService, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		internalError(h.log, w, r, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req model.Product
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddProduct(r.Context(), req)
	if err != nil {
		internalError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// DeleteProduct answers 200 with an empty body whether or not the id existed.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		internalError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
