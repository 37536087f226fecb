package schedule

import (
	"context"
	"time"
)

// Watcher периодически пересчитывает статус расписания и вызывает callback
// при его изменении. Владелец — композиционный корень приложения.
type Watcher struct {
	resolver *Resolver
	period   time.Duration
	onChange func(Status)
	now      func() time.Time
}

// NewWatcher создаёт наблюдатель с указанным периодом опроса.
// Callback вызывается сразу при старте и далее только при смене статуса.
func NewWatcher(resolver *Resolver, period time.Duration, onChange func(Status)) *Watcher {
	return &Watcher{
		resolver: resolver,
		period:   period,
		onChange: onChange,
		now:      time.Now,
	}
}

// Run блокируется до отмены контекста.
func (w *Watcher) Run(ctx context.Context) {
	last := w.resolver.Resolve(w.now())
	w.onChange(last)

	ticker := time.NewTicker(w.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.resolver.Resolve(w.now())
			if cur != last {
				last = cur
				w.onChange(cur)
			}
		}
	}
}
