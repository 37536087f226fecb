package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/selvadigital/storefront-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса витрины.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		// Витрина: читающий путь клиента, генерацию контента не трогает
		r.Get("/menu", h.GetMenu)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.GetOrders)
		r.Patch("/orders/{id}/status", h.UpdateOrderStatus)

		r.Get("/customers", h.GetCustomers)
		r.Get("/customers/{phone}", h.GetCustomerByPhone)

		r.Get("/loyalty", h.GetLoyaltyConfig)
		r.Put("/loyalty", h.SaveLoyaltyConfig)

		r.Get("/dashboard", h.GetDashboard)

		r.Get("/menu/products", h.GetMenuProducts)
		r.Post("/menu/products", h.CreateMenuProduct)
		r.Put("/menu/products/{id}", h.UpdateMenuProduct)
		r.Delete("/menu/products/{id}", h.DeleteMenuProduct)

		r.Post("/assist/description", h.SuggestDescription)
		r.Post("/assist/price", h.SuggestPrice)
		r.Post("/assist/image", h.GenerateImage)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
