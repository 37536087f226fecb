// Package model содержит доменные сущности сервиса витрины ресторана.
package model

import "time"

// MenuVariant определяет, какой из двух каталогов меню активен.
type MenuVariant string

const (
	MenuLunch  MenuVariant = "lunch"
	MenuDinner MenuVariant = "dinner"
)

// Category описывает категорию меню.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Product описывает позицию каталога. Цены хранятся в сентаво.
type Product struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	PriceCents         int64  `json:"price"`
	OriginalPriceCents *int64 `json:"original_price,omitempty"`
	CategoryID         string `json:"category_id"`
	ImageURL           string `json:"image_url,omitempty"`
	IsPopular          bool   `json:"is_popular,omitempty"`
}

// CartItem описывает строку заказа: позиция каталога с количеством и примечанием.
// CartID уникален в пределах корзины и позволяет добавить одну позицию дважды
// с разными примечаниями.
type CartItem struct {
	Product
	CartID   string `json:"cart_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// OrderStatus описывает стадию заказа на канбан-доске.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ValidOrderStatus сообщает, является ли значение допустимым статусом заказа.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

// PaymentMethod описывает способ оплаты заказа.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCash   PaymentMethod = "cash"
	PaymentPix    PaymentMethod = "pix"
)

// ValidPaymentMethod сообщает, является ли значение допустимым способом оплаты.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCredit, PaymentDebit, PaymentCash, PaymentPix:
		return true
	}
	return false
}

// OrderType описывает способ получения заказа.
type OrderType string

const (
	OrderTypeTable    OrderType = "table"
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// ValidOrderType сообщает, является ли значение допустимым способом получения.
func ValidOrderType(t OrderType) bool {
	switch t {
	case OrderTypeTable, OrderTypePickup, OrderTypeDelivery:
		return true
	}
	return false
}

// Order описывает оформленный заказ. Суммы хранятся в сентаво.
type Order struct {
	ID             string        `json:"id"`
	CustomerName   string        `json:"customer_name"`
	CustomerPhone  string        `json:"customer_phone"`
	Items          []CartItem    `json:"items"`
	SubtotalCents  int64         `json:"subtotal"`
	DiscountCents  int64         `json:"discount"`
	TotalCents     int64         `json:"total"`
	Status         OrderStatus   `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	OrderType      OrderType     `json:"order_type"`
	TableNumber    string        `json:"table_number,omitempty"`
	PointsEarned   int64         `json:"points_earned"`
	PointsRedeemed int64         `json:"points_redeemed"`
}

// Customer описывает участника программы лояльности.
// Телефон служит естественным ключом при сопоставлении заказов.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Points          int64     `json:"points"`
	TotalSpentCents int64     `json:"total_spent"`
	LastOrderDate   time.Time `json:"last_order_date"`
}

// LoyaltyConfig содержит настройки программы лояльности.
type LoyaltyConfig struct {
	Enabled           bool    `json:"enabled"`
	PointsPerCurrency float64 `json:"points_per_currency"`
	RedemptionRate    float64 `json:"redemption_rate"`
	MinPointsToRedeem int64   `json:"min_points_to_redeem"`
	WelcomeMessage    string  `json:"welcome_message"`
}
