package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lumishop/storefront/internal/cart/domain"
	catalog "github.com/lumishop/storefront/internal/catalog/domain"
	"github.com/lumishop/storefront/internal/notify"
)

// Manager is the sole mutator and source of truth for the session's cart. It
// hydrates from the store at construction, persists after every mutation, and
// emits a notification for each successful change. Public operations never
// return errors: persistence failures are logged and the in-memory cart stays
// authoritative for the session.
//
// All operations are serialized behind one mutex, so the merge-or-append
// read-modify-write cannot duplicate or lose a line item under concurrent
// callers.
type Manager struct {
	mu       sync.Mutex
	cart     domain.Cart
	store    Store
	key      string
	notifier notify.Notifier
	log      zerolog.Logger
}

// NewManager builds a manager bound to the given store key and hydrates it
// synchronously. A corrupt persisted record is discarded and deleted; any
// other hydration failure yields an empty cart.
func NewManager(ctx context.Context, store Store, key string, notifier notify.Notifier, log zerolog.Logger) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	m := &Manager{
		store:    store,
		key:      key,
		notifier: notifier,
		log:      log,
	}
	m.hydrate(ctx)
	return m
}

func (m *Manager) hydrate(ctx context.Context) {
	raw, ok, err := m.store.Get(ctx, m.key)
	if err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("cart hydration failed, starting empty")
		return
	}
	if !ok {
		return
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Self-healing: a record we cannot parse is treated as absent and
		// removed so the next session does not trip over it again.
		m.log.Warn().Err(err).Str("key", m.key).Msg("discarding corrupt persisted cart")
		if delErr := m.store.Delete(ctx, m.key); delErr != nil {
			m.log.Warn().Err(delErr).Str("key", m.key).Msg("failed to delete corrupt cart record")
		}
		return
	}

	m.cart.Items = items
}

// persistLocked writes the full current item sequence back under the cart
// key. Callers hold m.mu. A write failure is a logged warning, never an error
// to the caller.
func (m *Manager) persistLocked(ctx context.Context) {
	items := m.cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("failed to serialize cart")
		return
	}
	if err := m.store.Set(ctx, m.key, string(raw)); err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("failed to persist cart, in-memory state kept")
	}
}

// AddToCart merges quantity into an existing line for the product or appends
// a new line, persists, and notifies. Callers conventionally pass quantity
// >= 1.
func (m *Manager) AddToCart(ctx context.Context, p catalog.Product, quantity int) {
	m.mu.Lock()
	newQty, merged := m.cart.Add(p, quantity)
	m.persistLocked(ctx)
	m.mu.Unlock()

	if merged {
		m.notifier.Notify(notify.New(notify.KindQuantityUpdated, p.Title,
			fmt.Sprintf("%s quantity increased to %d", p.Title, newQty)))
		return
	}
	m.notifier.Notify(notify.New(notify.KindAdded, p.Title,
		fmt.Sprintf("%s added to your cart", p.Title)))
}

// RemoveFromCart deletes the line for the product id. Removing an absent id
// is a silent no-op: no state change, no notification.
func (m *Manager) RemoveFromCart(ctx context.Context, productID int) {
	m.mu.Lock()
	removed, ok := m.cart.Remove(productID)
	if ok {
		m.persistLocked(ctx)
	}
	m.mu.Unlock()

	if ok {
		m.notifier.Notify(notify.New(notify.KindRemoved, removed.Title,
			fmt.Sprintf("%s removed from your cart", removed.Title)))
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity of
// zero or less removes the item instead; a non-positive quantity is never
// stored.
func (m *Manager) UpdateQuantity(ctx context.Context, productID, quantity int) {
	if quantity <= 0 {
		m.RemoveFromCart(ctx, productID)
		return
	}

	m.mu.Lock()
	_, ok := m.cart.SetQuantity(productID, quantity)
	if ok {
		m.persistLocked(ctx)
	}
	m.mu.Unlock()
}

// ClearCart empties the cart unconditionally and persists the empty sequence.
func (m *Manager) ClearCart(ctx context.Context) {
	m.mu.Lock()
	m.cart.Clear()
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.notifier.Notify(notify.New(notify.KindCleared, "",
		"All items removed from your cart"))
}

// Items returns a copy of the current line item sequence.
func (m *Manager) Items() []domain.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]domain.LineItem, len(m.cart.Items))
	copy(items, m.cart.Items)
	return items
}

// TotalItems recomputes the quantity sum from current state.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.TotalItems()
}

// TotalPrice recomputes the price sum from current state.
func (m *Manager) TotalPrice() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.TotalPrice()
}
