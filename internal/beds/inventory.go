package beds

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/group8-health/health/internal"
)

// Inventory tracks remaining capacity per bed category. The check-then-
// decrement in Book holds the write lock for the whole step so concurrent
// bookings of the same category cannot both pass the count > 0 guard.
type Inventory struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewInventory(capacities map[string]int) *Inventory {
	counts := make(map[string]int, len(capacities))
	for category, n := range capacities {
		counts[category] = n
	}
	return &Inventory{counts: counts}
}

// LoadInventory reads per-category capacities from a JSON file.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("beds: failed to read capacities %s: %w", path, err)
	}
	var capacities map[string]int
	if err := json.Unmarshal(data, &capacities); err != nil {
		return nil, fmt.Errorf("beds: failed to parse capacities %s: %w", path, err)
	}
	return NewInventory(capacities), nil
}

// Check returns the current available count for the category.
func (inv *Inventory) Check(category string) (int, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	n, ok := inv.counts[category]
	if !ok {
		return 0, internal.ErrUnknownCategory
	}
	return n, nil
}

// Book decrements the category's count by one. When no beds remain it
// returns a NoBedsAvailable rejection and leaves the count at zero; the
// count never goes negative.
func (inv *Inventory) Book(category string) (remaining int, rejection *internal.Rejection, err error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	n, ok := inv.counts[category]
	if !ok {
		return 0, nil, internal.ErrUnknownCategory
	}
	if n <= 0 {
		return 0, &internal.Rejection{
			Reason:  internal.NoBedsAvailable,
			Message: fmt.Sprintf("No %s beds available for booking", category),
		}, nil
	}
	inv.counts[category] = n - 1
	return n - 1, nil, nil
}

// Categories lists the fixed category names, sorted for stable output.
func (inv *Inventory) Categories() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]string, 0, len(inv.counts))
	for category := range inv.counts {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
