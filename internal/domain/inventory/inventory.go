package inventory

import (
	"errors"
	"log/slog"
	"sync"

	"furnistore/internal/domain/catalog"
)

var (
	ErrNilItem           = errors.New("item cannot be nil")
	ErrItemNotFound      = errors.New("item not found in inventory")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type event struct {
	item   *catalog.Item
	change ChangeType
}

// Inventory is the authoritative map of catalog items keyed by (kind, name)
// and the single serialization point for all stock reads and writes. Every
// item is reachable at exactly one (kind, name) path.
type Inventory struct {
	mu        sync.Mutex
	items     map[catalog.Kind]map[string]*catalog.Item
	observers []Observer
}

func New() *Inventory {
	return &Inventory{
		items: make(map[catalog.Kind]map[string]*catalog.Item),
	}
}

func (inv *Inventory) RegisterObserver(o Observer) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.observers = append(inv.observers, o)
}

func (inv *Inventory) RemoveObserver(o Observer) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i, existing := range inv.observers {
		if existing == o {
			inv.observers = append(inv.observers[:i], inv.observers[i+1:]...)
			return
		}
	}
}

// AddItem inserts the item, or merges its quantity into the entry already
// registered under the same (kind, name). The merge keeps repeated catalog
// loads accumulating stock instead of overwriting it.
func (inv *Inventory) AddItem(item *catalog.Item) error {
	if item == nil {
		return ErrNilItem
	}

	inv.mu.Lock()
	kind := item.Kind()
	byName, ok := inv.items[kind]
	if !ok {
		byName = make(map[string]*catalog.Item)
		inv.items[kind] = byName
	}

	target := item
	if existing, ok := byName[item.Name()]; ok {
		// merge semantics: existing item stays, quantities accumulate
		_ = existing.SetAvailableQuantity(existing.AvailableQuantity() + item.AvailableQuantity())
		target = existing
	} else {
		byName[item.Name()] = item
	}
	observers := inv.snapshotObserversLocked()
	inv.mu.Unlock()

	dispatch(observers, event{item: target, change: ChangeAdded})
	return nil
}

// RemoveItem deletes the (kind, name) entry. A missing entry is reported,
// never silently ignored.
func (inv *Inventory) RemoveItem(name string, kind catalog.Kind) error {
	inv.mu.Lock()
	byName, ok := inv.items[kind]
	if !ok {
		inv.mu.Unlock()
		return ErrItemNotFound
	}
	item, ok := byName[name]
	if !ok {
		inv.mu.Unlock()
		return ErrItemNotFound
	}
	delete(byName, name)
	observers := inv.snapshotObserversLocked()
	inv.mu.Unlock()

	dispatch(observers, event{item: item, change: ChangeRemoved})
	return nil
}

// UpdateQuantity sets stock to an absolute value. Negative values are
// rejected rather than clamped.
func (inv *Inventory) UpdateQuantity(name string, kind catalog.Kind, newQuantity int) error {
	if newQuantity < 0 {
		return ErrNegativeQuantity
	}

	inv.mu.Lock()
	item, ok := inv.lookupLocked(name, kind)
	if !ok {
		inv.mu.Unlock()
		return ErrItemNotFound
	}
	_ = item.SetAvailableQuantity(newQuantity)
	observers := inv.snapshotObserversLocked()
	inv.mu.Unlock()

	dispatch(observers, event{item: item, change: ChangeUpdated})
	return nil
}

func (inv *Inventory) Find(name string, kind catalog.Kind) (*catalog.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	item, ok := inv.lookupLocked(name, kind)
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (inv *Inventory) AvailableQuantity(name string, kind catalog.Kind) (int, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	item, ok := inv.lookupLocked(name, kind)
	if !ok {
		return 0, ErrItemNotFound
	}
	return item.AvailableQuantity(), nil
}

// Items returns every registered item.
func (inv *Inventory) Items() []*catalog.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	var all []*catalog.Item
	for _, byName := range inv.items {
		for _, item := range byName {
			all = append(all, item)
		}
	}
	return all
}

// Within runs fn under the inventory lock with a transactional view, so a
// checkout's stock validation and deduction are observed as one atomic step
// by concurrent checkouts. When fn fails, every deduction it made is rolled
// back and no events fire. Mutation events fire after the lock is released,
// on the same call.
func (inv *Inventory) Within(fn func(tx *Tx) error) error {
	inv.mu.Lock()
	tx := &Tx{inv: inv}
	err := fn(tx)
	var events []event
	var observers []Observer
	if err == nil {
		events = tx.events
		observers = inv.snapshotObserversLocked()
	} else {
		tx.rollbackLocked()
	}
	inv.mu.Unlock()

	dispatch(observers, events...)
	return err
}

// Tx is the view of the inventory inside a Within critical section.
type Tx struct {
	inv    *Inventory
	events []event
	undo   []undoEntry
}

type undoEntry struct {
	item *catalog.Item
	qty  int
}

func (tx *Tx) rollbackLocked() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		_ = tx.undo[i].item.SetAvailableQuantity(tx.undo[i].qty)
	}
}

func (tx *Tx) Available(name string, kind catalog.Kind) (int, error) {
	item, ok := tx.inv.lookupLocked(name, kind)
	if !ok {
		return 0, ErrItemNotFound
	}
	return item.AvailableQuantity(), nil
}

// Deduct subtracts qty from the item's stock, failing without mutation when
// stock is short.
func (tx *Tx) Deduct(name string, kind catalog.Kind, qty int) error {
	item, ok := tx.inv.lookupLocked(name, kind)
	if !ok {
		return ErrItemNotFound
	}
	if item.AvailableQuantity() < qty {
		return ErrInsufficientStock
	}
	tx.undo = append(tx.undo, undoEntry{item: item, qty: item.AvailableQuantity()})
	_ = item.SetAvailableQuantity(item.AvailableQuantity() - qty)
	tx.events = append(tx.events, event{item: item, change: ChangeUpdated})
	return nil
}

func (inv *Inventory) lookupLocked(name string, kind catalog.Kind) (*catalog.Item, bool) {
	byName, ok := inv.items[kind]
	if !ok {
		return nil, false
	}
	item, ok := byName[name]
	return item, ok
}

func (inv *Inventory) snapshotObserversLocked() []Observer {
	observers := make([]Observer, len(inv.observers))
	copy(observers, inv.observers)
	return observers
}

// dispatch notifies observers in registration order. A panicking observer is
// reported and skipped; the mutation it was told about stays committed.
func dispatch(observers []Observer, events ...event) {
	for _, ev := range events {
		for _, o := range observers {
			notifySafely(o, ev.item, ev.change)
		}
	}
}

func notifySafely(o Observer, item *catalog.Item, change ChangeType) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("inventory observer panicked",
				"item", item.Name(),
				"change", string(change),
				"panic", r,
			)
		}
	}()
	o.Notify(item, change)
}
