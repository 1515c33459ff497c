package cart

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sync"
	"time"

	"restaurant_orders/internal/models"

	"github.com/google/uuid"
)

// MaxQuantity is the per-line quantity cap. Merged additions that would
// exceed it are clamped at the store boundary.
const MaxQuantity = 99

// LineItem is one row in the cart. Name and UnitPrice are snapshots taken
// at add-time so the cart stays stable if catalog prices change later.
type LineItem struct {
	ID                  string    `json:"id"`
	MenuItemID          uint      `json:"menu_item_id"`
	Name                string    `json:"name"`
	UnitPrice           float64   `json:"unit_price"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	AddedAt             time.Time `json:"added_at"`
}

// Store is the single source of truth for one cart: an ordered line-item
// collection plus the drawer-open flag. All mutations go through its
// methods; public operations never return errors and never panic. Every
// item mutation re-derives totals and persists the full snapshot to the
// storage slot best-effort; in-memory state stays authoritative when
// persistence fails.
type Store struct {
	mu           sync.Mutex
	items        []LineItem
	open         bool
	lastModified time.Time
	subscribers  []func()

	taxRate float64
	storage SnapshotStorage
	key     string

	loadOnce sync.Once

	memoValid    bool
	memoSubtotal float64
	memoTax      float64
	memoTotal    float64
	memoCount    int

	persistMu    sync.Mutex
	seq          uint64
	persistedSeq uint64
	pending      sync.WaitGroup
}

func NewStore(storage SnapshotStorage, key string, taxRate float64) *Store {
	// Zero is a valid configured rate; only nonsense rates fall back.
	if taxRate < 0 || math.IsNaN(taxRate) {
		taxRate = DefaultTaxRate
	}
	return &Store{
		items:   []LineItem{},
		taxRate: taxRate,
		storage: storage,
		key:     key,
	}
}

// Load restores a prior snapshot from the storage slot, at most once per
// store; concurrent callers block until the first load completes, so a
// store handed out by the manager is always ready. A missing, unreadable,
// or malformed snapshot leaves the cart empty; loading never fails the
// caller. Lines added before the snapshot arrives are merged, not lost.
func (s *Store) Load(ctx context.Context) {
	s.loadOnce.Do(func() { s.load(ctx) })
}

func (s *Store) load(ctx context.Context) {
	data, err := s.storage.Read(ctx, s.key)
	if err != nil {
		if err != ErrNoSnapshot {
			log.Printf("Warning: failed to read cart snapshot %s, starting empty: %v", s.key, err)
		}
		return
	}

	items, ok := decodeSnapshot(data)
	if !ok {
		log.Printf("Warning: discarding malformed cart snapshot %s", s.key)
		return
	}

	restored := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if item.Quantity > MaxQuantity {
			item.Quantity = MaxQuantity
		}
		restored = append(restored, item)
	}

	s.mu.Lock()
	for _, line := range s.items {
		merged := false
		for i := range restored {
			if restored[i].MenuItemID == line.MenuItemID {
				quantity := restored[i].Quantity + line.Quantity
				if quantity > MaxQuantity {
					quantity = MaxQuantity
				}
				restored[i].Quantity = quantity
				if line.SpecialInstructions != "" {
					restored[i].SpecialInstructions = line.SpecialInstructions
				}
				merged = true
				break
			}
		}
		if !merged {
			restored = append(restored, line)
		}
	}
	s.items = restored
	s.memoValid = false
	s.mu.Unlock()
}

// Subscribe registers a change listener invoked after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// AddItem appends a line for the menu item, or merges into the existing
// line for the same menu item by incrementing its quantity. Instructions
// are kept from the existing line unless non-empty ones are supplied.
// Non-positive quantities and invalid prices are rejected as no-ops.
func (s *Store) AddItem(item models.MenuItem, quantity int, instructions string) {
	if quantity <= 0 {
		log.Printf("Warning: ignoring add of %q with non-positive quantity %d", item.Name, quantity)
		return
	}
	if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
		log.Printf("Warning: ignoring add of %q with invalid price %v", item.Name, item.Price)
		return
	}

	s.mu.Lock()
	if line := s.findByMenuItem(item.ID); line != nil {
		merged := line.Quantity + quantity
		if merged > MaxQuantity {
			log.Printf("Warning: clamping quantity for %q to %d", line.Name, MaxQuantity)
			merged = MaxQuantity
		}
		line.Quantity = merged
		if instructions != "" {
			line.SpecialInstructions = instructions
		}
	} else {
		if quantity > MaxQuantity {
			log.Printf("Warning: clamping quantity for %q to %d", item.Name, MaxQuantity)
			quantity = MaxQuantity
		}
		s.items = append(s.items, LineItem{
			ID:                  uuid.New().String(),
			MenuItemID:          item.ID,
			Name:                item.Name,
			UnitPrice:           item.Price,
			Quantity:            quantity,
			SpecialInstructions: instructions,
			AddedAt:             time.Now(),
		})
	}
	s.touchLocked()
	s.mu.Unlock()
	s.afterMutation()
}

// RemoveItem deletes the line with the given id. Absent lines are a no-op.
func (s *Store) RemoveItem(lineID string) {
	s.mu.Lock()
	changed := false
	for i, item := range s.items {
		if item.ID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		s.touchLocked()
	}
	s.mu.Unlock()
	if changed {
		s.afterMutation()
	}
}

// UpdateQuantity sets (not adds) the line's quantity. A non-positive
// quantity removes the line.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(lineID)
		return
	}
	if quantity > MaxQuantity {
		log.Printf("Warning: clamping quantity for line %s to %d", lineID, MaxQuantity)
		quantity = MaxQuantity
	}

	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if changed {
		s.touchLocked()
	}
	s.mu.Unlock()
	if changed {
		s.afterMutation()
	}
}

// UpdateSpecialInstructions sets free text on the line. No-op if absent.
func (s *Store) UpdateSpecialInstructions(lineID, text string) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].SpecialInstructions = text
			changed = true
			break
		}
	}
	if changed {
		s.touchLocked()
	}
	s.mu.Unlock()
	if changed {
		s.afterMutation()
	}
}

// ClearCart empties the collection and persists an empty-array snapshot.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = []LineItem{}
	s.touchLocked()
	s.mu.Unlock()
	s.afterMutation()
}

func (s *Store) OpenCart() { s.setOpen(true) }

func (s *Store) CloseCart() { s.setOpen(false) }

func (s *Store) ToggleCart() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
	s.notify()
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Store) LastModified() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastModified
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deriveLocked()
	return s.memoCount
}

func (s *Store) GetSubtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deriveLocked()
	return s.memoSubtotal
}

// GetTax returns tax at the store's configured rate.
func (s *Store) GetTax() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deriveLocked()
	return s.memoTax
}

func (s *Store) GetTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deriveLocked()
	return s.memoTotal
}

// GetTaxAt computes tax at a caller-supplied rate, bypassing the memo.
func (s *Store) GetTaxAt(rate float64) float64 {
	return Tax(s.GetSubtotal(), rate)
}

func (s *Store) GetTotalAt(rate float64) float64 {
	subtotal := s.GetSubtotal()
	return Total(subtotal, Tax(subtotal, rate))
}

// Flush waits for in-flight snapshot writes. Used at shutdown and in tests.
func (s *Store) Flush() {
	s.pending.Wait()
}

func (s *Store) findByMenuItem(menuItemID uint) *LineItem {
	for i := range s.items {
		if s.items[i].MenuItemID == menuItemID {
			return &s.items[i]
		}
	}
	return nil
}

// touchLocked marks the collection changed; callers hold s.mu.
func (s *Store) touchLocked() {
	s.lastModified = time.Now()
	s.memoValid = false
}

// deriveLocked recomputes memoized totals if the collection changed since
// the last derivation; callers hold s.mu. Drawer toggles do not invalidate.
func (s *Store) deriveLocked() {
	if s.memoValid {
		return
	}
	s.memoSubtotal = Subtotal(s.items)
	s.memoTax = Tax(s.memoSubtotal, s.taxRate)
	s.memoTotal = Total(s.memoSubtotal, s.memoTax)
	s.memoCount = ItemCount(s.items)
	s.memoValid = true
}

func (s *Store) afterMutation() {
	s.persist()
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn()
	}
}

// persist writes the full snapshot asynchronously. Writes are sequenced so
// a stale snapshot never overwrites a newer one; failures are logged and
// never affect in-memory state.
func (s *Store) persist() {
	s.mu.Lock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("Warning: failed to marshal cart snapshot %s: %v", s.key, err)
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		if seq < s.persistedSeq {
			return
		}
		if err := s.storage.Write(context.Background(), s.key, data); err != nil {
			log.Printf("Warning: failed to persist cart snapshot %s: %v", s.key, err)
			return
		}
		s.persistedSeq = seq
	}()
}
