package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/selvadigital/storefront-system/internal/model"
)

func waitStatus(t *testing.T, ch <-chan Status) Status {
	t.Helper()
	select {
	case st := <-ch:
		return st
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for status")
		return Status{}
	}
}

func TestWatcherReportsOnlyChanges(t *testing.T) {
	r := NewResolver("America/Sao_Paulo")

	// Понедельник: 12:00 — закрыто (показываем обед), 18:00 — открыт ужин
	closedAt := time.Date(2026, 8, 31, 12, 0, 0, 0, r.loc)
	openAt := time.Date(2026, 8, 31, 18, 0, 0, 0, r.loc)

	statuses := make(chan Status, 16)
	w := NewWatcher(r, 5*time.Millisecond, func(st Status) {
		statuses <- st
	})

	var calls atomic.Int64
	w.now = func() time.Time {
		// Первые тики видят закрытое заведение, затем статус меняется
		if calls.Add(1) >= 3 {
			return openAt
		}
		return closedAt
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	first := waitStatus(t, statuses)
	if first.Open || first.Variant != model.MenuLunch {
		t.Fatalf("first status = %+v, want closed lunch", first)
	}

	second := waitStatus(t, statuses)
	if !second.Open || second.Variant != model.MenuDinner {
		t.Fatalf("second status = %+v, want open dinner", second)
	}

	cancel()
	<-done

	// Статус больше не менялся — повторных уведомлений быть не должно
	select {
	case st := <-statuses:
		t.Fatalf("unexpected extra status %+v", st)
	default:
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	r := NewResolver("America/Sao_Paulo")
	w := NewWatcher(r, time.Millisecond, func(Status) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("watcher did not stop after context cancel")
	}
}
