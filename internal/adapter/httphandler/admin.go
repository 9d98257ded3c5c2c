package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/shopfront/internal/adapter/storage"
	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/niksmo/shopfront/internal/core/port"
)

type AdminHandler struct {
	catalog port.CatalogStore
	history port.OrderHistory
	stats   port.RegionStats
}

func RegisterAdmin(
	mux *http.ServeMux,
	gate port.AdminGate,
	catalog port.CatalogStore,
	history port.OrderHistory,
	stats port.RegionStats,
) {
	h := AdminHandler{catalog, history, stats}
	guard := func(hf http.HandlerFunc) http.Handler {
		return AdminOnly(gate, hf)
	}
	mux.Handle("GET /v1/admin/products", guard(h.GetProducts))
	mux.Handle("PUT /v1/admin/products", guard(h.PutProduct))
	mux.Handle("DELETE /v1/admin/products/{name}", guard(h.DeleteProduct))
	mux.Handle("GET /v1/admin/orders", guard(h.GetOrders))
	mux.Handle("GET /v1/admin/regions/{code}/stats", guard(h.GetRegionStats))
}

func (h AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		log.Error("failed to list products", "err", err)
		return
	}

	views := make([]Product, 0, len(ps))
	for _, p := range ps {
		views = append(views, toProductView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h AdminHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PutProduct"
	log := slog.With("op", op)

	var req Product
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		http.Error(w, "product name is required", http.StatusBadRequest)
		return
	}

	p := domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Size:     req.Size,
		Category: req.Category,
		Special:  req.Special,
		ImageURL: req.ImageURL,
	}
	if err := h.catalog.UpsertProduct(r.Context(), p); err != nil {
		http.Error(w, "failed to store product", http.StatusInternalServerError)
		log.Error("failed to upsert product", "name", req.Name, "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("product upserted", "name", req.Name)
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	name := r.PathValue("name")
	err := h.catalog.DeleteProduct(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(
			w, "failed to delete product", http.StatusInternalServerError,
		)
		log.Error("failed to delete product", "name", name, "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("product deleted", "name", name)
}

func (h AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetOrders"
	log := slog.With("op", op)

	records, err := h.history.ListOrders(r.Context())
	if err != nil {
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		log.Error("failed to list orders", "err", err)
		return
	}

	views := make([]OrderSummary, 0, len(records))
	for _, rec := range records {
		views = append(views, toSummaryView(rec.OrderSummary))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h AdminHandler) GetRegionStats(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetRegionStats"
	log := slog.With("op", op)

	code := r.PathValue("code")
	orders, revenue, err := h.stats.RegionStats(code)
	if err != nil {
		http.Error(
			w, "failed to read region stats", http.StatusInternalServerError,
		)
		log.Error("failed to read region stats", "region", code, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, RegionStats{
		Region:  code,
		Orders:  orders,
		Revenue: revenue,
	})
}
