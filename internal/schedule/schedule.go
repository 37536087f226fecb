// Package schedule реализует недельное расписание работы заведения
// и выбор активного варианта меню по текущему времени.
package schedule

import (
	"time"

	"github.com/selvadigital/storefront-system/internal/model"
)

// Status описывает результат разрешения расписания: открыто ли заведение
// и какой каталог меню следует показывать.
type Status struct {
	Open    bool
	Variant model.MenuVariant
}

// interval задаёт диапазон минут от местной полуночи. Границы включительные.
type interval struct {
	open    int
	close   int
	variant model.MenuVariant
}

// Недельное расписание. Интервалы внутри дня не пересекаются и не переходят
// через полночь. День недели, отсутствующий в таблице, означает "закрыто".
var week = map[time.Weekday][]interval{
	time.Monday:    {{1050, 1365, model.MenuDinner}},
	time.Tuesday:   {{1050, 1365, model.MenuDinner}},
	time.Wednesday: {{1050, 1365, model.MenuDinner}},
	time.Thursday:  {{1035, 1365, model.MenuDinner}},
	time.Friday:    {{660, 900, model.MenuLunch}, {1050, 1365, model.MenuDinner}},
	time.Saturday:  {{660, 885, model.MenuLunch}, {1050, 1365, model.MenuDinner}},
	time.Sunday:    {{660, 885, model.MenuLunch}, {1050, 1365, model.MenuDinner}},
}

// До этой минуты закрытое заведение показывает обеденное меню, после — вечернее.
const lunchDisplayBoundary = 900

// Resolver вычисляет статус заведения в фиксированном часовом поясе.
// Состояния не имеет, ввода-вывода не выполняет.
type Resolver struct {
	loc *time.Location
}

// NewResolver создаёт резолвер для указанного именованного часового пояса.
// Неизвестный пояс заменяется фиксированным UTC-3 — резолвер всегда работоспособен.
func NewResolver(zone string) *Resolver {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.FixedZone("-03", -3*60*60)
	}
	return &Resolver{loc: loc}
}

// Resolve возвращает статус заведения для указанного момента времени.
func (r *Resolver) Resolve(now time.Time) Status {
	local := now.In(r.loc)
	return resolveMinutes(local.Weekday(), local.Hour()*60+local.Minute())
}

func resolveMinutes(day time.Weekday, minutes int) Status {
	for _, iv := range week[day] {
		if minutes >= iv.open && minutes <= iv.close {
			return Status{Open: true, Variant: iv.variant}
		}
	}

	if minutes < lunchDisplayBoundary {
		return Status{Variant: model.MenuLunch}
	}
	return Status{Variant: model.MenuDinner}
}
