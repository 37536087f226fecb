// Package loyalty реализует бухгалтерию программы лояльности:
// чистую свёртку заказов в записи клиентов.
package loyalty

import (
	"time"

	"github.com/google/uuid"

	"github.com/selvadigital/storefront-system/internal/model"
)

// ApplyOrder применяет заказ к коллекции клиентов и возвращает новую коллекцию.
//
// Телефон сопоставляется точным строковым сравнением, без нормализации —
// так ведёт себя исходная система. Правило начисления и списания здесь
// не вычисляется: вызывающая сторона передаёт готовые PointsEarned и
// PointsRedeemed, а свёртка только обновляет балансы. Отрицательный баланс
// не обрезается: контроль избыточного списания — обязанность приёма заказа.
func ApplyOrder(customers []model.Customer, order model.Order, cfg model.LoyaltyConfig, now time.Time) []model.Customer {
	if !cfg.Enabled {
		return customers
	}

	res := make([]model.Customer, len(customers))
	copy(res, customers)

	for i, c := range res {
		if c.Phone == order.CustomerPhone {
			c.Points += order.PointsEarned - order.PointsRedeemed
			c.TotalSpentCents += order.TotalCents
			c.LastOrderDate = now
			// Имя перезаписывается последним заказом: так правятся опечатки.
			c.Name = order.CustomerName
			res[i] = c
			return res
		}
	}

	return append(res, model.Customer{
		ID:              uuid.NewString(),
		Name:            order.CustomerName,
		Phone:           order.CustomerPhone,
		Points:          order.PointsEarned,
		TotalSpentCents: order.TotalCents,
		LastOrderDate:   now,
	})
}

// FindByPhone возвращает клиента с точно совпадающим телефоном.
func FindByPhone(customers []model.Customer, phone string) (model.Customer, bool) {
	for _, c := range customers {
		if c.Phone == phone {
			return c, true
		}
	}
	return model.Customer{}, false
}
