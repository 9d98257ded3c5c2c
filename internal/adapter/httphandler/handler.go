package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/niksmo/shopfront/internal/core/port"
	"github.com/niksmo/shopfront/internal/core/service"
)

// SessionHeader carries the shopper session key. The storefront client
// generates it once and repeats it on every call.
const SessionHeader = "X-Session-Id"

type CheckoutHandler struct {
	flow port.CheckoutFlow
}

func RegisterCheckout(mux *http.ServeMux, flow port.CheckoutFlow) {
	h := CheckoutHandler{flow}
	mux.HandleFunc("POST /v1/checkout", h.StartCheckout)
	mux.HandleFunc("GET /v1/checkout", h.GetCheckout)
	mux.HandleFunc("GET /v1/regions", h.GetRegions)
	mux.HandleFunc("POST /v1/checkout/region", h.PostRegion)
	mux.HandleFunc("POST /v1/checkout/preferences", h.PostPreference)
	mux.HandleFunc("POST /v1/checkout/search", h.PostSearch)
	mux.HandleFunc("POST /v1/checkout/select", h.PostSelect)
	mux.HandleFunc("POST /v1/checkout/cart", h.PostCart)
	mux.HandleFunc("PATCH /v1/checkout/cart/{index}", h.PatchCartItem)
	mux.HandleFunc("DELETE /v1/checkout/cart/{index}", h.DeleteCartItem)
	mux.HandleFunc("POST /v1/checkout/confirm", h.PostConfirm)
	mux.HandleFunc("POST /v1/checkout/payment/proceed", h.PostProceedToPayment)
	mux.HandleFunc("POST /v1/checkout/payment", h.PostPayment)
	mux.HandleFunc("POST /v1/checkout/back", h.PostBack)
	mux.HandleFunc("POST /v1/checkout/new", h.PostNewOrder)
}

func (h CheckoutHandler) StartCheckout(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CheckoutHandler.StartCheckout"
	log := slog.With("op", op)

	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		http.Error(w, "missing session header", http.StatusBadRequest)
		return
	}

	co := h.flow.StartCheckout(sessionID)
	writeJSON(w, http.StatusCreated, toCheckoutView(co))
	log.Info("checkout started", "sessionID", sessionID)
}

func (h CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	var regions []Region
	for _, reg := range domain.Regions() {
		regions = append(regions, Region{
			Code:           reg.Code,
			FeeDescription: domain.FeeDescription(reg.Code),
		})
	}
	writeJSON(w, http.StatusOK, regions)
}

func (h CheckoutHandler) PostRegion(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostRegion"
	log := slog.With("op", op)

	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	var req RegionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := co.ChooseRegion(req.Region); err != nil {
		writeDomainErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutView(co))
	log.Info("region chosen", "region", req.Region)
}

func (h CheckoutHandler) PostPreference(
	w http.ResponseWriter, r *http.Request,
) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	var req PreferenceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := co.TogglePreference(req.Category, req.Value); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) PostSearch(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostSearch"
	log := slog.With("op", op)

	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	var req SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.flow.Search(r.Context(), co, req.Keyword); err != nil {
		writeDomainErr(w, err)
		log.Error("search failed", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutView(co))
	log.Info("search done",
		"keyword", req.Keyword, "nResults", len(co.Results()))
}

func (h CheckoutHandler) PostSelect(w http.ResponseWriter, r *http.Request) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	var req SelectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := co.ToggleSelect(req.Name); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) PostCart(w http.ResponseWriter, r *http.Request) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	if err := co.AddSelectedToCart(); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) PatchCartItem(
	w http.ResponseWriter, r *http.Request,
) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid cart index", http.StatusBadRequest)
		return
	}

	var req QuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := co.UpdateQuantity(index, req.Quantity); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) DeleteCartItem(
	w http.ResponseWriter, r *http.Request,
) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid cart index", http.StatusBadRequest)
		return
	}

	if err := co.RemoveFromCart(index); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) PostConfirm(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostConfirm"
	log := slog.With("op", op)

	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	summary, err := h.flow.ConfirmOrder(r.Context(), co)
	if err != nil {
		// the confirmation stands when only the history append failed
		if !errors.Is(err, service.ErrAppendOrder) {
			writeDomainErr(w, err)
			return
		}
		log.Error("order confirmed without history record",
			"orderNumber", summary.OrderNumber, "err", err)
	}

	writeJSON(w, http.StatusOK, toCheckoutView(co))
	log.Info("order confirmed",
		"orderNumber", summary.OrderNumber, "total", summary.Total)
}

func (h CheckoutHandler) PostProceedToPayment(
	w http.ResponseWriter, r *http.Request,
) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	if err := co.ProceedToPayment(); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) PostPayment(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostPayment"
	log := slog.With("op", op)

	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	var req PaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.flow.SubmitPayment(r.Context(), co, req.Method); err != nil {
		writeDomainErr(w, err)
		log.Error("payment submission failed",
			"method", req.Method, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutView(co))
	log.Info("checkout complete", "method", req.Method)
}

func (h CheckoutHandler) PostBack(w http.ResponseWriter, r *http.Request) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	if err := co.Back(); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) PostNewOrder(w http.ResponseWriter, r *http.Request) {
	co, ok := h.sessionCheckout(w, r)
	if !ok {
		return
	}

	if err := co.StartNewOrder(); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(co))
}

func (h CheckoutHandler) sessionCheckout(
	w http.ResponseWriter, r *http.Request,
) (*domain.Checkout, bool) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		http.Error(w, "missing session header", http.StatusBadRequest)
		return nil, false
	}

	co, ok := h.flow.FindCheckout(sessionID)
	if !ok {
		http.Error(w, "checkout not started", http.StatusNotFound)
		return nil, false
	}
	return co, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrRegionRequired),
		errors.Is(err, domain.ErrPaymentMethodRequired),
		errors.Is(err, domain.ErrPaymentMethodUnknown),
		errors.Is(err, domain.ErrPaymentMethodRegion),
		errors.Is(err, domain.ErrIndexOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotificationSend):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
