// Package service реализует бизнес-логику сервиса витрины.
//
// Сервис — единственный владелец персистентного состояния: все мутации
// (приём заказа, смена статуса, настройки лояльности, зеркало меню)
// проходят через его фиксированный набор операций.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/selvadigital/storefront-system/internal/assist"
	"github.com/selvadigital/storefront-system/internal/catalog"
	"github.com/selvadigital/storefront-system/internal/loyalty"
	"github.com/selvadigital/storefront-system/internal/model"
	"github.com/selvadigital/storefront-system/internal/schedule"
)

// ErrInvalidOrder возвращается при отклонении заказа на этапе приёма.
var (
	ErrInvalidOrder = errors.New("invalid order")
	// ErrOrderNotFound возвращается, если заказ с указанным идентификатором не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound возвращается, если клиент с указанным телефоном не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrRedeemBelowMinimum возвращается при попытке списать меньше минимума программы.
	ErrRedeemBelowMinimum = errors.New("redeemed points below program minimum")
	// ErrInsufficientPoints возвращается при попытке списать больше, чем накоплено.
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	// ErrInvalidProduct возвращается при отклонении позиции меню формой админки.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrProductNotFound возвращается, если позиция зеркала меню не найдена.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidLoyaltyConfig возвращается при некорректных настройках лояльности.
	ErrInvalidLoyaltyConfig = errors.New("invalid loyalty config")
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	LoadOrders(ctx context.Context) ([]model.Order, error)
	SaveOrders(ctx context.Context, orders []model.Order) error
	LoadCustomers(ctx context.Context) ([]model.Customer, error)
	SaveCustomers(ctx context.Context, customers []model.Customer) error
	LoadLoyaltyConfig(ctx context.Context) (model.LoyaltyConfig, error)
	SaveLoyaltyConfig(ctx context.Context, cfg model.LoyaltyConfig) error
	LoadMenuProducts(ctx context.Context) ([]model.Product, bool, error)
	SaveMenuProducts(ctx context.Context, products []model.Product) error
}

// Service содержит бизнес-логику сервиса витрины.
type Service struct {
	repo         Repository
	assistClient *assist.Client
	resolver     *schedule.Resolver
	checkoutURL  string
	now          func() time.Time
}

// NewService создаёт новый сервис с указанным репозиторием, клиентом генерации
// контента (может быть nil) и резолвером расписания.
func NewService(repo Repository, assistClient *assist.Client, resolver *schedule.Resolver, checkoutURL string) *Service {
	return &Service{
		repo:         repo,
		assistClient: assistClient,
		resolver:     resolver,
		checkoutURL:  checkoutURL,
		now:          time.Now,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// Menu описывает активную витрину: статус заведения и каталог для показа.
type Menu struct {
	Open           bool
	Variant        model.MenuVariant
	Products       []model.Product
	Categories     []model.Category
	CheckoutURL    string
	WelcomeMessage string
}

// ResolveMenu возвращает витрину для текущего момента времени.
func (s *Service) ResolveMenu(ctx context.Context) (*Menu, error) {
	st := s.resolver.Resolve(s.now())
	products, categories := catalog.Active(st.Variant)

	cfg, err := s.repo.LoadLoyaltyConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Menu{
		Open:           st.Open,
		Variant:        st.Variant,
		Products:       products,
		Categories:     categories,
		CheckoutURL:    s.checkoutURL,
		WelcomeMessage: cfg.WelcomeMessage,
	}, nil
}

// OrderDraft описывает входные данные приёма заказа.
type OrderDraft struct {
	CustomerName   string
	CustomerPhone  string
	Items          []model.CartItem
	PaymentMethod  model.PaymentMethod
	OrderType      model.OrderType
	TableNumber    string
	PointsToRedeem int64
}

func validateDraft(d OrderDraft) error {
	switch {
	case d.CustomerName == "":
		return fmt.Errorf("%w: customer name required", ErrInvalidOrder)
	case d.CustomerPhone == "":
		return fmt.Errorf("%w: customer phone required", ErrInvalidOrder)
	case len(d.Items) == 0:
		return fmt.Errorf("%w: at least one item required", ErrInvalidOrder)
	case !model.ValidPaymentMethod(d.PaymentMethod):
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidOrder, d.PaymentMethod)
	case !model.ValidOrderType(d.OrderType):
		return fmt.Errorf("%w: unknown order type %q", ErrInvalidOrder, d.OrderType)
	case d.PointsToRedeem < 0:
		return fmt.Errorf("%w: negative points to redeem", ErrInvalidOrder)
	}

	for _, it := range d.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %q quantity must be at least 1", ErrInvalidOrder, it.ID)
		}
		if it.PriceCents < 0 {
			return fmt.Errorf("%w: item %q has negative price", ErrInvalidOrder, it.ID)
		}
	}

	return nil
}

// PlaceOrder принимает заказ: валидирует черновик, вычисляет суммы и баллы,
// сохраняет заказ и применяет свёртку лояльности к клиентам.
//
// Начисление: floor(подытог в реалах × PointsPerCurrency). Списание проверяется
// здесь, а не в свёртке: меньше минимума программы или больше накопленного —
// отказ. Ведомость лояльности баланс не обрезает.
func (s *Service) PlaceOrder(ctx context.Context, draft OrderDraft) (*model.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	cfg, err := s.repo.LoadLoyaltyConfig(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, it := range draft.Items {
		subtotal += it.PriceCents * int64(it.Quantity)
	}

	var earned, redeemed, discount int64
	if cfg.Enabled {
		earned = int64(math.Floor(float64(subtotal) / 100 * cfg.PointsPerCurrency))

		if draft.PointsToRedeem > 0 {
			if draft.PointsToRedeem < cfg.MinPointsToRedeem {
				return nil, ErrRedeemBelowMinimum
			}
			c, ok := loyalty.FindByPhone(customers, draft.CustomerPhone)
			if !ok || c.Points < draft.PointsToRedeem {
				return nil, ErrInsufficientPoints
			}
			redeemed = draft.PointsToRedeem
			discount = int64(math.Round(float64(redeemed) * cfg.RedemptionRate * 100))
			if discount > subtotal {
				discount = subtotal
			}
		}
	}

	now := s.now()
	order := model.Order{
		ID:             uuid.NewString(),
		CustomerName:   draft.CustomerName,
		CustomerPhone:  draft.CustomerPhone,
		Items:          draft.Items,
		SubtotalCents:  subtotal,
		DiscountCents:  discount,
		TotalCents:     subtotal - discount,
		Status:         model.OrderStatusPending,
		CreatedAt:      now,
		PaymentMethod:  draft.PaymentMethod,
		OrderType:      draft.OrderType,
		TableNumber:    draft.TableNumber,
		PointsEarned:   earned,
		PointsRedeemed: redeemed,
	}

	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	// Новые заказы добавляются в начало списка
	orders = append([]model.Order{order}, orders...)
	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return nil, err
	}

	if cfg.Enabled {
		customers = loyalty.ApplyOrder(customers, order, cfg, now)
		if err := s.repo.SaveCustomers(ctx, customers); err != nil {
			return nil, err
		}
	}

	return &order, nil
}

// Orders возвращает все заказы, новые первыми.
func (s *Service) Orders(ctx context.Context) ([]model.Order, error) {
	return s.repo.LoadOrders(ctx)
}

// UpdateOrderStatus переводит заказ в указанный статус канбан-доски.
// Доска допускает перенос в любую колонку, проверяется только само значение.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if !model.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, status)
	}

	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return s.repo.SaveOrders(ctx, orders)
		}
	}

	return ErrOrderNotFound
}

// Customers возвращает всех клиентов программы лояльности.
func (s *Service) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.LoadCustomers(ctx)
}

// CustomerByPhone возвращает клиента по точному совпадению телефона.
func (s *Service) CustomerByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	c, ok := loyalty.FindByPhone(customers, phone)
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

// LoyaltyConfig возвращает текущие настройки программы лояльности.
func (s *Service) LoyaltyConfig(ctx context.Context) (model.LoyaltyConfig, error) {
	return s.repo.LoadLoyaltyConfig(ctx)
}

// SaveLoyaltyConfig валидирует и сохраняет настройки программы лояльности.
func (s *Service) SaveLoyaltyConfig(ctx context.Context, cfg model.LoyaltyConfig) error {
	if cfg.PointsPerCurrency < 0 || cfg.RedemptionRate < 0 || cfg.MinPointsToRedeem < 0 {
		return ErrInvalidLoyaltyConfig
	}
	return s.repo.SaveLoyaltyConfig(ctx, cfg)
}

// DashboardStats содержит сводные показатели админской панели.
type DashboardStats struct {
	TotalSalesCents    int64
	OrderCount         int
	AverageTicketCents int64
	TotalPoints        int64
	SalesByPayment     map[model.PaymentMethod]int64
}

// Dashboard вычисляет сводные показатели по заказам и клиентам.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		OrderCount:     len(orders),
		SalesByPayment: make(map[model.PaymentMethod]int64),
	}

	for _, o := range orders {
		stats.TotalSalesCents += o.TotalCents
		stats.SalesByPayment[o.PaymentMethod] += o.TotalCents
	}
	if len(orders) > 0 {
		stats.AverageTicketCents = stats.TotalSalesCents / int64(len(orders))
	}

	for _, c := range customers {
		stats.TotalPoints += c.Points
	}

	return stats, nil
}

// MenuProducts возвращает зеркало меню для админки. При первом обращении
// зеркало засеивается вечерним статическим каталогом и сохраняется.
// Статический каталог при этом не меняется никогда.
func (s *Service) MenuProducts(ctx context.Context) ([]model.Product, error) {
	products, ok, err := s.repo.LoadMenuProducts(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return products, nil
	}

	seed, _ := catalog.Active(model.MenuDinner)
	if err := s.repo.SaveMenuProducts(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func validateProduct(p model.Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name required", ErrInvalidProduct)
	case p.PriceCents <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	case p.CategoryID == "":
		return fmt.Errorf("%w: category required", ErrInvalidProduct)
	}
	return nil
}

// CreateMenuProduct добавляет позицию в зеркало меню.
func (s *Service) CreateMenuProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	products, err := s.MenuProducts(ctx)
	if err != nil {
		return nil, err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	products = append(products, p)
	if err := s.repo.SaveMenuProducts(ctx, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMenuProduct заменяет позицию зеркала меню с тем же идентификатором.
func (s *Service) UpdateMenuProduct(ctx context.Context, p model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	products, err := s.MenuProducts(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return s.repo.SaveMenuProducts(ctx, products)
		}
	}

	return ErrProductNotFound
}

// DeleteMenuProduct удаляет позицию из зеркала меню.
func (s *Service) DeleteMenuProduct(ctx context.Context, id string) error {
	products, err := s.MenuProducts(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return s.repo.SaveMenuProducts(ctx, products)
		}
	}

	return ErrProductNotFound
}

// SuggestDescription генерирует описание блюда. При недоступности генерации
// возвращается фиксированный текст с признаком Fallback.
func (s *Service) SuggestDescription(ctx context.Context, name, ingredients string) assist.TextResult {
	return s.assistClient.DishDescription(ctx, name, ingredients)
}

// SuggestPrice подбирает цену блюда.
func (s *Service) SuggestPrice(ctx context.Context, name string) assist.PriceResult {
	return s.assistClient.SuggestPrice(ctx, name)
}

// GenerateImage генерирует фотографию блюда.
func (s *Service) GenerateImage(ctx context.Context, prompt string) assist.ImageResult {
	return s.assistClient.DishImage(ctx, prompt)
}
