// Package handler содержит HTTP-обработчики API сервиса витрины.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/selvadigital/storefront-system/internal/assist"
	"github.com/selvadigital/storefront-system/internal/model"
	"github.com/selvadigital/storefront-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	ResolveMenu(ctx context.Context) (*service.Menu, error)
	PlaceOrder(ctx context.Context, draft service.OrderDraft) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	Customers(ctx context.Context) ([]model.Customer, error)
	CustomerByPhone(ctx context.Context, phone string) (*model.Customer, error)
	LoyaltyConfig(ctx context.Context) (model.LoyaltyConfig, error)
	SaveLoyaltyConfig(ctx context.Context, cfg model.LoyaltyConfig) error
	Dashboard(ctx context.Context) (*service.DashboardStats, error)
	MenuProducts(ctx context.Context) ([]model.Product, error)
	CreateMenuProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateMenuProduct(ctx context.Context, p model.Product) error
	DeleteMenuProduct(ctx context.Context, id string) error
	SuggestDescription(ctx context.Context, name, ingredients string) assist.TextResult
	SuggestPrice(ctx context.Context, name string) assist.PriceResult
	GenerateImage(ctx context.Context, prompt string) assist.ImageResult
}

// Handler реализует HTTP-обработчики API сервиса витрины.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

// Денежные суммы хранятся в сентаво, на границе API — реалы.
func toReais(cents int64) float64 {
	return float64(cents) / 100
}

func toCents(reais float64) int64 {
	return int64(math.Round(reais * 100))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type productResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	CategoryID    string   `json:"category_id"`
	ImageURL      string   `json:"image_url,omitempty"`
	IsPopular     bool     `json:"is_popular,omitempty"`
}

func toProductResponse(p model.Product) productResponse {
	resp := productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       toReais(p.PriceCents),
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		IsPopular:   p.IsPopular,
	}
	if p.OriginalPriceCents != nil {
		v := toReais(*p.OriginalPriceCents)
		resp.OriginalPrice = &v
	}
	return resp
}

func toProductResponses(products []model.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	return resp
}

type menuResponse struct {
	IsOpen         bool               `json:"is_open"`
	Variant        string             `json:"variant"`
	CheckoutURL    string             `json:"checkout_url"`
	WelcomeMessage string             `json:"welcome_message"`
	Categories     []categoryResponse `json:"categories"`
	Products       []productResponse  `json:"products"`
}

// GetMenu возвращает витрину: статус заведения и активный каталог.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.ResolveMenu(r.Context())
	if err != nil {
		h.logger.Error("resolve menu error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := menuResponse{
		IsOpen:         menu.Open,
		Variant:        string(menu.Variant),
		CheckoutURL:    menu.CheckoutURL,
		WelcomeMessage: menu.WelcomeMessage,
		Categories:     make([]categoryResponse, 0, len(menu.Categories)),
		Products:       toProductResponses(menu.Products),
	}
	for _, c := range menu.Categories {
		resp.Categories = append(resp.Categories, categoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon})
	}

	writeJSON(w, http.StatusOK, resp)
}

type cartItemRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
	CartID     string  `json:"cart_id"`
	Quantity   int     `json:"quantity"`
	Notes      string  `json:"notes,omitempty"`
}

type createOrderRequest struct {
	CustomerName   string            `json:"customer_name"`
	CustomerPhone  string            `json:"customer_phone"`
	Items          []cartItemRequest `json:"items"`
	PaymentMethod  string            `json:"payment_method"`
	OrderType      string            `json:"order_type"`
	TableNumber    string            `json:"table_number,omitempty"`
	PointsToRedeem int64             `json:"points_to_redeem,omitempty"`
}

type cartItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	CartID   string  `json:"cart_id"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

type orderResponse struct {
	ID             string             `json:"id"`
	CustomerName   string             `json:"customer_name"`
	CustomerPhone  string             `json:"customer_phone"`
	Items          []cartItemResponse `json:"items"`
	Subtotal       float64            `json:"subtotal"`
	Discount       float64            `json:"discount"`
	Total          float64            `json:"total"`
	Status         string             `json:"status"`
	CreatedAt      string             `json:"created_at"`
	PaymentMethod  string             `json:"payment_method"`
	OrderType      string             `json:"order_type"`
	TableNumber    string             `json:"table_number,omitempty"`
	PointsEarned   int64              `json:"points_earned"`
	PointsRedeemed int64              `json:"points_redeemed"`
}

func toOrderResponse(o model.Order) orderResponse {
	resp := orderResponse{
		ID:             o.ID,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		Items:          make([]cartItemResponse, 0, len(o.Items)),
		Subtotal:       toReais(o.SubtotalCents),
		Discount:       toReais(o.DiscountCents),
		Total:          toReais(o.TotalCents),
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
		PaymentMethod:  string(o.PaymentMethod),
		OrderType:      string(o.OrderType),
		TableNumber:    o.TableNumber,
		PointsEarned:   o.PointsEarned,
		PointsRedeemed: o.PointsRedeemed,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, cartItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    toReais(it.PriceCents),
			CartID:   it.CartID,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}
	return resp
}

// CreateOrder принимает новый заказ.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	draft := service.OrderDraft{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Items:          make([]model.CartItem, 0, len(req.Items)),
		PaymentMethod:  model.PaymentMethod(req.PaymentMethod),
		OrderType:      model.OrderType(req.OrderType),
		TableNumber:    req.TableNumber,
		PointsToRedeem: req.PointsToRedeem,
	}
	for _, it := range req.Items {
		draft.Items = append(draft.Items, model.CartItem{
			Product: model.Product{
				ID:         it.ID,
				Name:       it.Name,
				PriceCents: toCents(it.Price),
				CategoryID: it.CategoryID,
			},
			CartID:   it.CartID,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}

	order, err := h.service.PlaceOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder), errors.Is(err, service.ErrRedeemBelowMinimum):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrInsufficientPoints):
			http.Error(w, http.StatusText(http.StatusPaymentRequired), http.StatusPaymentRequired)
		default:
			h.logger.Error("place order error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(*order))
}

// GetOrders возвращает все заказы, новые первыми.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Orders(r.Context())
	if err != nil {
		h.logger.Error("get orders error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus переводит заказ в другую колонку канбан-доски.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	err := h.service.UpdateOrderStatus(r.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		default:
			h.logger.Error("update order status error", zap.Error(err), zap.String("order", id))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

type customerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Points        int64   `json:"points"`
	TotalSpent    float64 `json:"total_spent"`
	LastOrderDate string  `json:"last_order_date"`
}

func toCustomerResponse(c model.Customer) customerResponse {
	return customerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Points:        c.Points,
		TotalSpent:    toReais(c.TotalSpentCents),
		LastOrderDate: c.LastOrderDate.Format(time.RFC3339),
	}
}

// GetCustomers возвращает всех клиентов программы лояльности.
func (h *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.Customers(r.Context())
	if err != nil {
		h.logger.Error("get customers error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(customers) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, toCustomerResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCustomerByPhone возвращает клиента по точному совпадению телефона.
func (h *Handler) GetCustomerByPhone(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")

	c, err := h.service.CustomerByPhone(r.Context(), phone)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("get customer error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(*c))
}

type loyaltyConfigPayload struct {
	Enabled           bool    `json:"enabled"`
	PointsPerCurrency float64 `json:"points_per_currency"`
	RedemptionRate    float64 `json:"redemption_rate"`
	MinPointsToRedeem int64   `json:"min_points_to_redeem"`
	WelcomeMessage    string  `json:"welcome_message"`
}

// GetLoyaltyConfig возвращает настройки программы лояльности.
func (h *Handler) GetLoyaltyConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.LoyaltyConfig(r.Context())
	if err != nil {
		h.logger.Error("get loyalty config error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loyaltyConfigPayload{
		Enabled:           cfg.Enabled,
		PointsPerCurrency: cfg.PointsPerCurrency,
		RedemptionRate:    cfg.RedemptionRate,
		MinPointsToRedeem: cfg.MinPointsToRedeem,
		WelcomeMessage:    cfg.WelcomeMessage,
	})
}

// SaveLoyaltyConfig сохраняет настройки программы лояльности.
func (h *Handler) SaveLoyaltyConfig(w http.ResponseWriter, r *http.Request) {
	var req loyaltyConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	err := h.service.SaveLoyaltyConfig(r.Context(), model.LoyaltyConfig{
		Enabled:           req.Enabled,
		PointsPerCurrency: req.PointsPerCurrency,
		RedemptionRate:    req.RedemptionRate,
		MinPointsToRedeem: req.MinPointsToRedeem,
		WelcomeMessage:    req.WelcomeMessage,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidLoyaltyConfig) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("save loyalty config error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type dashboardResponse struct {
	TotalSales     float64            `json:"total_sales"`
	OrderCount     int                `json:"order_count"`
	AverageTicket  float64            `json:"average_ticket"`
	TotalPoints    int64              `json:"total_points"`
	SalesByPayment map[string]float64 `json:"sales_by_payment"`
}

// GetDashboard возвращает сводные показатели админской панели.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("dashboard error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dashboardResponse{
		TotalSales:     toReais(stats.TotalSalesCents),
		OrderCount:     stats.OrderCount,
		AverageTicket:  toReais(stats.AverageTicketCents),
		TotalPoints:    stats.TotalPoints,
		SalesByPayment: make(map[string]float64, len(stats.SalesByPayment)),
	}
	for method, cents := range stats.SalesByPayment {
		resp.SalesByPayment[string(method)] = toReais(cents)
	}

	writeJSON(w, http.StatusOK, resp)
}

type productPayload struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	CategoryID    string   `json:"category_id"`
	ImageURL      string   `json:"image_url,omitempty"`
	IsPopular     bool     `json:"is_popular,omitempty"`
}

func (p productPayload) toModel() model.Product {
	res := model.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  toCents(p.Price),
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		IsPopular:   p.IsPopular,
	}
	if p.OriginalPrice != nil {
		v := toCents(*p.OriginalPrice)
		res.OriginalPriceCents = &v
	}
	return res
}

// GetMenuProducts возвращает зеркало меню для админки.
func (h *Handler) GetMenuProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.MenuProducts(r.Context())
	if err != nil {
		h.logger.Error("get menu products error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// CreateMenuProduct добавляет позицию в зеркало меню.
func (h *Handler) CreateMenuProduct(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateMenuProduct(r.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("create menu product error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(*created))
}

// UpdateMenuProduct заменяет позицию зеркала меню.
func (h *Handler) UpdateMenuProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	p := req.toModel()
	p.ID = id

	err := h.service.UpdateMenuProduct(r.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProduct):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrProductNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		default:
			h.logger.Error("update menu product error", zap.Error(err), zap.String("product", id))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteMenuProduct удаляет позицию из зеркала меню.
func (h *Handler) DeleteMenuProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.service.DeleteMenuProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("delete menu product error", zap.Error(err), zap.String("product", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type describeRequest struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// SuggestDescription генерирует описание блюда для формы админки.
func (h *Handler) SuggestDescription(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.service.SuggestDescription(r.Context(), req.Name, req.Ingredients))
}

type suggestPriceRequest struct {
	Name string `json:"name"`
}

type suggestPriceResponse struct {
	Price    float64 `json:"price"`
	Fallback bool    `json:"fallback"`
}

// SuggestPrice подбирает цену блюда для формы админки.
func (h *Handler) SuggestPrice(w http.ResponseWriter, r *http.Request) {
	var req suggestPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res := h.service.SuggestPrice(r.Context(), req.Name)
	writeJSON(w, http.StatusOK, suggestPriceResponse{
		Price:    toReais(res.PriceCents),
		Fallback: res.Fallback,
	})
}

type generateImageRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateImage генерирует фотографию блюда для формы админки.
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.service.GenerateImage(r.Context(), req.Prompt))
}
