package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookdesk/internal/domain"
	"bookdesk/internal/eventbus"
	"bookdesk/internal/logic"
	selectionsvc "bookdesk/internal/ui/services/selection"
)

func fixture() (*logic.MemoryBookingStore, *selectionsvc.Service) {
	store := logic.NewMemoryBookingStore(
		&domain.Booking{ID: "a", Status: domain.StatusAwaitingPayment, HoldExpiresAt: time.Now().Add(time.Minute)},
		&domain.Booking{ID: "b", Status: domain.StatusPaid},
		&domain.Booking{ID: "c", Status: domain.StatusPending},
		&domain.Booking{ID: "d", Status: domain.StatusExpired},
	)
	return store, selectionsvc.NewService(nil)
}

func TestPayOnlyTouchesPayableSelection(t *testing.T) {
	store, sel := fixture()
	sel.ToggleAll([]string{"a", "b"})

	msg := NewExecutor(store, sel, nil).ExecutePay()()
	done := msg.(DoneMsg)

	assert.Equal(t, []string{"a"}, done.IDs)
	assert.Equal(t, []string{"b"}, done.Skipped)
	assert.Equal(t, "paid: 1 booking(s), 1 skipped", done.Summary())

	assert.Equal(t, domain.StatusPaid, store.Get("a").Status)
	assert.Equal(t, domain.StatusPending, store.Get("c").Status, "unselected bookings are untouched")
	assert.Equal(t, []string{"b"}, sel.SelectedIDs(), "changed bookings leave the selection")
}

func TestCancelPublishesEvent(t *testing.T) {
	store, sel := fixture()
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan domain.DomainEvent, 1)
	bus.Subscribe(domain.EventBookingsCancelled, func(e domain.DomainEvent) { got <- e })

	sel.ToggleAll([]string{"b", "c", "d"})
	done := NewExecutor(store, sel, bus).ExecuteCancel()().(DoneMsg)

	assert.Equal(t, []string{"b", "c"}, done.IDs)
	assert.Equal(t, []string{"d"}, done.Skipped)

	select {
	case e := <-got:
		assert.Equal(t, domain.BookingsCancelledEvent{IDs: []string{"b", "c"}}, e)
	case <-time.After(time.Second):
		t.Fatal("cancel event not published")
	}
}

func TestEmptySelectionIsNoop(t *testing.T) {
	store, sel := fixture()
	require.Nil(t, NewExecutor(store, sel, nil).ExecutePay())
}
