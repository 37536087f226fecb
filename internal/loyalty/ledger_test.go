package loyalty

import (
	"testing"
	"time"

	"github.com/selvadigital/storefront-system/internal/model"
)

func enabledConfig() model.LoyaltyConfig {
	return model.LoyaltyConfig{
		Enabled:           true,
		PointsPerCurrency: 1,
		RedemptionRate:    0.05,
		MinPointsToRedeem: 50,
	}
}

func TestApplyOrderDisabledIsIdentity(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", Name: "Ana", Phone: "27988286687", Points: 10},
	}
	order := model.Order{
		CustomerName:  "Ana",
		CustomerPhone: "27988286687",
		TotalCents:    5000,
		PointsEarned:  50,
	}

	cfg := enabledConfig()
	cfg.Enabled = false

	got := ApplyOrder(customers, order, cfg, time.Now())
	if len(got) != 1 || got[0] != customers[0] {
		t.Fatalf("disabled ledger must not change customers, got %+v", got)
	}
}

func TestApplyOrderInsertsNewCustomer(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	order := model.Order{
		CustomerName:  "Bruno",
		CustomerPhone: "27999990000",
		TotalCents:    8490,
		PointsEarned:  84,
	}

	got := ApplyOrder(nil, order, enabledConfig(), now)
	if len(got) != 1 {
		t.Fatalf("expected exactly one customer, got %d", len(got))
	}

	c := got[0]
	if c.ID == "" {
		t.Fatalf("new customer must get an id")
	}
	if c.Name != "Bruno" || c.Phone != "27999990000" {
		t.Fatalf("unexpected identity: %+v", c)
	}
	if c.Points != 84 || c.TotalSpentCents != 8490 || !c.LastOrderDate.Equal(now) {
		t.Fatalf("unexpected balances: %+v", c)
	}
}

func TestApplyOrderUpdatesExistingCustomer(t *testing.T) {
	now := time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC)
	customers := []model.Customer{
		{ID: "c1", Name: "Anna", Phone: "27988286687", Points: 100, TotalSpentCents: 10000},
	}
	order := model.Order{
		CustomerName:   "Ana",
		CustomerPhone:  "27988286687",
		TotalCents:     6970,
		PointsEarned:   69,
		PointsRedeemed: 60,
	}

	got := ApplyOrder(customers, order, enabledConfig(), now)
	if len(got) != 1 {
		t.Fatalf("existing customer must be mutated, not duplicated: %d records", len(got))
	}

	c := got[0]
	if c.ID != "c1" {
		t.Fatalf("id must be preserved, got %q", c.ID)
	}
	if c.Points != 109 {
		t.Fatalf("points = %d, want 100+69-60=109", c.Points)
	}
	if c.TotalSpentCents != 16970 {
		t.Fatalf("totalSpent = %d, want 16970", c.TotalSpentCents)
	}
	if c.Name != "Ana" {
		t.Fatalf("name must be overwritten by the latest order, got %q", c.Name)
	}
	if !c.LastOrderDate.Equal(now) {
		t.Fatalf("lastOrderDate = %v, want %v", c.LastOrderDate, now)
	}
}

func TestApplyOrderDoesNotMutateInput(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", Name: "Ana", Phone: "27988286687", Points: 10},
	}
	order := model.Order{
		CustomerName:  "Maria",
		CustomerPhone: "27988286687",
		TotalCents:    1000,
		PointsEarned:  10,
	}

	_ = ApplyOrder(customers, order, enabledConfig(), time.Now())

	if customers[0].Points != 10 || customers[0].Name != "Ana" {
		t.Fatalf("input collection was mutated: %+v", customers[0])
	}
}

func TestApplyOrderIsFold(t *testing.T) {
	now1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	now2 := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	cfg := enabledConfig()

	o1 := model.Order{
		CustomerName:   "Ana",
		CustomerPhone:  "27988286687",
		TotalCents:     5000,
		PointsEarned:   50,
		PointsRedeemed: 0,
	}
	o2 := model.Order{
		CustomerName:   "Ana Clara",
		CustomerPhone:  "27988286687",
		TotalCents:     3000,
		PointsEarned:   30,
		PointsRedeemed: 20,
	}

	sequential := ApplyOrder(ApplyOrder(nil, o1, cfg, now1), o2, cfg, now2)

	merged := model.Order{
		CustomerName:   "Ana Clara",
		CustomerPhone:  "27988286687",
		TotalCents:     o1.TotalCents + o2.TotalCents,
		PointsEarned:   o1.PointsEarned + o2.PointsEarned,
		PointsRedeemed: o1.PointsRedeemed + o2.PointsRedeemed,
	}
	single := ApplyOrder(nil, merged, cfg, now2)

	if len(sequential) != 1 || len(single) != 1 {
		t.Fatalf("expected single customer record, got %d and %d", len(sequential), len(single))
	}

	a, b := sequential[0], single[0]
	if a.Points != b.Points || a.TotalSpentCents != b.TotalSpentCents {
		t.Fatalf("fold mismatch: sequential %+v, merged %+v", a, b)
	}
	if a.Name != b.Name || !a.LastOrderDate.Equal(b.LastOrderDate) {
		t.Fatalf("latest-wins fields mismatch: sequential %+v, merged %+v", a, b)
	}
}

func TestApplyOrderAllowsNegativeBalance(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", Name: "Ana", Phone: "27988286687", Points: 10},
	}
	order := model.Order{
		CustomerName:   "Ana",
		CustomerPhone:  "27988286687",
		PointsEarned:   0,
		PointsRedeemed: 50,
	}

	got := ApplyOrder(customers, order, enabledConfig(), time.Now())
	if got[0].Points != -40 {
		t.Fatalf("ledger must not clamp, points = %d, want -40", got[0].Points)
	}
}

func TestFindByPhoneExactMatch(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", Phone: "27988286687"},
	}

	if _, ok := FindByPhone(customers, "27988286687"); !ok {
		t.Fatalf("exact phone must match")
	}

	// Сопоставление без нормализации: форматирование меняет ключ
	if _, ok := FindByPhone(customers, "27 98828-6687"); ok {
		t.Fatalf("formatted phone must not match")
	}
	if _, ok := FindByPhone(customers, "+5527988286687"); ok {
		t.Fatalf("phone with country code must not match")
	}
}
