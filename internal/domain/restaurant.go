package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// TableClass is a capacity bucket ("4-seat") with the number of physical tables of that size
type TableClass struct {
	Key   string
	Count int
}

// Capacity returns the seat count encoded as the leading integer of the key ("4-seat" -> 4).
// A key without a positive leading integer is a data error.
func (c TableClass) Capacity() (int, error) {
	prefix := c.Key
	if i := strings.Index(prefix, "-"); i >= 0 {
		prefix = prefix[:i]
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil || capacity <= 0 {
		return 0, fmt.Errorf("%w: table class %q has no seat count", ErrDataIntegrity, c.Key)
	}
	return capacity, nil
}

// TableIDs enumerates "{key}-{index}" for index 1..Count
func (c TableClass) TableIDs() []string {
	if c.Count <= 0 {
		return nil
	}
	ids := make([]string, 0, c.Count)
	for i := 1; i <= c.Count; i++ {
		ids = append(ids, TableID(c.Key, i))
	}
	return ids
}

// TableID builds a table identifier from its class key and 1-based index
func TableID(classKey string, index int) string {
	return classKey + "-" + strconv.Itoa(index)
}

// ParseTableID splits "{key}-{index}" at the last dash
func ParseTableID(tableID string) (classKey string, index int, err error) {
	i := strings.LastIndex(tableID, "-")
	if i <= 0 || i == len(tableID)-1 {
		return "", 0, fmt.Errorf("%w: table id %q must look like <class>-<n>", ErrValidation, tableID)
	}
	index, err = strconv.Atoi(tableID[i+1:])
	if err != nil || index <= 0 {
		return "", 0, fmt.Errorf("%w: table id %q has no positive index", ErrValidation, tableID)
	}
	return tableID[:i], index, nil
}

// Restaurant represents a catalog entry
type Restaurant struct {
	ID          string
	Name        string
	CuisineType string
	Rating      float64
	Location    string
	TotalTables int

	// TableConfiguration keeps the order of the persisted mapping
	TableConfiguration []TableClass

	OpeningHours types.TimeString
	ClosingHours types.TimeString
}

// IsOpenAt checks that t is within [OpeningHours, ClosingHours] inclusive.
// Hours that close before they open wrap past midnight.
func (r *Restaurant) IsOpenAt(t types.TimeString) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	open, err := t.IsWithin(r.OpeningHours, r.ClosingHours)
	if err != nil {
		return false, fmt.Errorf("%w: restaurant %s operating hours: %v", ErrDataIntegrity, r.ID, err)
	}
	return open, nil
}

// ConfiguredTables returns the sum of table class counts
func (r *Restaurant) ConfiguredTables() int {
	total := 0
	for _, c := range r.TableConfiguration {
		total += c.Count
	}
	return total
}

// FindTable resolves a table id to its class. ok is false when the class is not
// configured or the index exceeds the class count.
func (r *Restaurant) FindTable(tableID string) (class TableClass, ok bool, err error) {
	key, index, err := ParseTableID(tableID)
	if err != nil {
		return TableClass{}, false, err
	}
	for _, c := range r.TableConfiguration {
		if c.Key == key {
			return c, index <= c.Count, nil
		}
	}
	return TableClass{}, false, nil
}

// MatchesCuisine is case-insensitive; "All" and "" match everything
func (r *Restaurant) MatchesCuisine(cuisine string) bool {
	if cuisine == "" || cuisine == CuisineAll {
		return true
	}
	return strings.EqualFold(r.CuisineType, cuisine)
}

// MatchesQuery is a case-insensitive substring match over name, cuisine and location
func (r *Restaurant) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.CuisineType), q) ||
		strings.Contains(strings.ToLower(r.Location), q)
}
