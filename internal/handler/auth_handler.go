package handler

import (
	"errors"
	"net/http"

	"marketplace/ecommerce/internal/metrics"
	"marketplace/ecommerce/internal/service"

	"github.com/sirupsen/logrus"
)

const (
	msgEmailExists        = "Email already exists!"
	msgInvalidCredentials = "Invalid email or password"
)

type AuthHandler struct {
	svc *service.AuthService
	log logrus.FieldLogger
}

func NewAuthHandler(svc *service.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			metrics.RecordAuth("register", "email_exists")
			writeText(w, http.StatusBadRequest, msgEmailExists)
			return
		}
		metrics.RecordAuth("register", "error")
		internalError(h.log, w, r, err)
		return
	}

	metrics.RecordAuth("register", "success")
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.RecordAuth("login", "invalid_credentials")
			writeText(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		metrics.RecordAuth("login", "error")
		internalError(h.log, w, r, err)
		return
	}

	metrics.RecordAuth("login", "success")
	writeJSON(w, http.StatusOK, user)
}
