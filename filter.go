package ui

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"
	"unicode"

	"ashfall/ui/internal/bus"
	"ashfall/ui/internal/console"
)

// FilterConfig describes a reusable category/search/sort pipeline over a
// collection. The zero value of each optional field has a documented default;
// FieldValue resolves dotted-path field names against an element.
type FilterConfig[T any] struct {
	// Categories lists the selectable tabs. The first entry is the default
	// active filter and means "no restriction". Defaults to {"all"}.
	Categories []string
	// SearchFields are dotted paths probed in order; a record matches when any
	// of them contains the query. Defaults to {"name"}.
	SearchFields []string
	// SortOptions lists the sort keys cycled through; the first is the
	// default. Defaults to {"name"}.
	SortOptions []string
	// EnableSearch and EnableSorting gate the corresponding controls.
	EnableSearch  bool
	EnableSorting bool
	// CaseSensitive disables case folding during search.
	CaseSensitive     bool
	SearchPlaceholder string
	// CategoryFilters overrides the default type-equality predicate per
	// category.
	CategoryFilters map[string]func(T) bool
	// SortFunctions overrides the default field comparison per sort key. The
	// result sign is flipped when the direction is "desc".
	SortFunctions map[string]func(a, b T) int
	// FieldValue resolves a dotted-path field name; ok=false skips the field.
	FieldValue func(item T, path string) (value any, ok bool)
	// EventPrefix names the "<prefix>:changed" state broadcast. Defaults to
	// "filter".
	EventPrefix string
}

// FilterState is the transient category/search/sort selection. It is never
// persisted and resets each session.
type FilterState struct {
	Filter        string `json:"filter"`
	Search        string `json:"search"`
	SortBy        string `json:"sortBy"`
	SortDirection string `json:"sortDirection"`
}

// Filter applies its current state to collections handed to FilterData and
// broadcasts every observable state change on the bus.
type Filter[T any] struct {
	mu      sync.Mutex
	cfg     FilterConfig[T]
	state   FilterState
	bus     *bus.Bus
	console *console.Console
}

func NewFilter[T any](b *bus.Bus, c *console.Console, cfg FilterConfig[T]) *Filter[T] {
	if c == nil {
		c = console.New(console.Config{})
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = []string{"all"}
	}
	if len(cfg.SearchFields) == 0 {
		cfg.SearchFields = []string{"name"}
	}
	if len(cfg.SortOptions) == 0 {
		cfg.SortOptions = []string{"name"}
	}
	if cfg.EventPrefix == "" {
		cfg.EventPrefix = "filter"
	}
	return &Filter[T]{
		cfg:     cfg,
		state:   defaultFilterState(cfg),
		bus:     b,
		console: c,
	}
}

func defaultFilterState[T any](cfg FilterConfig[T]) FilterState {
	return FilterState{
		Filter:        cfg.Categories[0],
		SortBy:        cfg.SortOptions[0],
		SortDirection: "asc",
	}
}

// FilterData runs the category, search, and sort stages over items and
// returns a new slice; the input is never reordered. A nil collection is
// treated as empty with a logged warning.
func (f *Filter[T]) FilterData(items []T) []T {
	if items == nil {
		f.console.Warning("Filter received nil collection")
		return []T{}
	}

	f.mu.Lock()
	state := f.state
	f.mu.Unlock()

	filtered := make([]T, len(items))
	copy(filtered, items)

	filtered = f.applyCategory(filtered, state)
	filtered = f.applySearch(filtered, state)
	f.applySort(filtered, state)
	return filtered
}

func (f *Filter[T]) applyCategory(items []T, state FilterState) []T {
	if state.Filter == "all" || state.Filter == f.cfg.Categories[0] {
		return items
	}

	predicate := f.cfg.CategoryFilters[state.Filter]
	if predicate == nil {
		predicate = func(item T) bool {
			value, ok := f.fieldValue(item, "type")
			return ok && fmt.Sprint(value) == state.Filter
		}
	}

	kept := items[:0]
	for _, item := range items {
		if predicate(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

func (f *Filter[T]) applySearch(items []T, state FilterState) []T {
	query := strings.TrimSpace(state.Search)
	if query == "" {
		return items
	}
	if !f.cfg.CaseSensitive {
		query = strings.ToLower(query)
	}

	kept := items[:0]
	for _, item := range items {
		if f.matchesSearch(item, query) {
			kept = append(kept, item)
		}
	}
	return kept
}

func (f *Filter[T]) matchesSearch(item T, query string) bool {
	for _, field := range f.cfg.SearchFields {
		value, ok := f.fieldValue(item, field)
		if !ok || value == nil {
			continue
		}
		text := fmt.Sprint(value)
		if !f.cfg.CaseSensitive {
			text = strings.ToLower(text)
		}
		if strings.Contains(text, query) {
			return true
		}
	}
	return false
}

func (f *Filter[T]) applySort(items []T, state FilterState) {
	if state.SortBy == "" {
		return
	}

	compare := f.cfg.SortFunctions[state.SortBy]
	if compare == nil {
		compare = func(a, b T) int {
			aValue, aOK := f.fieldValue(a, state.SortBy)
			bValue, bOK := f.fieldValue(b, state.SortBy)
			if !aOK || !bOK {
				return 0
			}
			return compareValues(aValue, bValue)
		}
	}

	descending := state.SortDirection == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		result := compare(items[i], items[j])
		if descending {
			result = -result
		}
		return result < 0
	})
}

func (f *Filter[T]) fieldValue(item T, path string) (any, bool) {
	if f.cfg.FieldValue == nil {
		return nil, false
	}
	return f.cfg.FieldValue(item, path)
}

// compareValues orders two field values: numerically when both are numbers,
// lexicographically otherwise. Mixed or missing values tie.
func compareValues(a, b any) int {
	aNum, aIsNum := toFloat(a)
	bNum, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// SetFilter activates a category tab. Re-selecting the active tab is a no-op.
func (f *Filter[T]) SetFilter(category string) {
	f.mu.Lock()
	if f.state.Filter == category {
		f.mu.Unlock()
		return
	}
	f.state.Filter = category
	state := f.state
	f.mu.Unlock()

	f.console.Info("Filter changed to: %s", category)
	f.publishChanged(state)
}

func (f *Filter[T]) SetSearch(query string) {
	f.mu.Lock()
	f.state.Search = query
	state := f.state
	f.mu.Unlock()

	f.console.Debug("Search query: %q", query)
	f.publishChanged(state)
}

// CycleSort advances to the next sort option; wrapping back to the first
// option also flips the sort direction.
func (f *Filter[T]) CycleSort() {
	f.mu.Lock()
	current := 0
	for i, option := range f.cfg.SortOptions {
		if option == f.state.SortBy {
			current = i
			break
		}
	}
	next := (current + 1) % len(f.cfg.SortOptions)
	if next == 0 && len(f.cfg.SortOptions) > 1 {
		if f.state.SortDirection == "asc" {
			f.state.SortDirection = "desc"
		} else {
			f.state.SortDirection = "asc"
		}
	}
	f.state.SortBy = f.cfg.SortOptions[next]
	state := f.state
	f.mu.Unlock()

	f.console.Info("Sorting by: %s (%s)", state.SortBy, state.SortDirection)
	f.publishChanged(state)
}

// Reset restores the configured defaults.
func (f *Filter[T]) Reset() {
	f.mu.Lock()
	f.state = defaultFilterState(f.cfg)
	state := f.state
	f.mu.Unlock()

	f.publishChanged(state)
}

func (f *Filter[T]) State() FilterState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetState replaces the whole state snapshot.
func (f *Filter[T]) SetState(state FilterState) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()

	f.publishChanged(state)
}

func (f *Filter[T]) EventPrefix() string {
	return f.cfg.EventPrefix
}

func (f *Filter[T]) publishChanged(state FilterState) {
	if f.bus == nil {
		return
	}
	f.bus.Publish(f.cfg.EventPrefix+":changed", state)
}

// RenderTabs generates the category tab markup, empty when there is nothing
// to choose between.
func (f *Filter[T]) RenderTabs() string {
	if len(f.cfg.Categories) <= 1 {
		return ""
	}
	state := f.State()

	var sb strings.Builder
	sb.WriteString(`<div class="filter-tabs">`)
	for _, category := range f.cfg.Categories {
		active := ""
		if state.Filter == category {
			active = " active"
		}
		fmt.Fprintf(&sb,
			`<button class="filter-tab%s" data-action="filter" data-category="%s">%s</button>`,
			active, html.EscapeString(category), html.EscapeString(formatLabel(category)))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func (f *Filter[T]) RenderSearchBar() string {
	if !f.cfg.EnableSearch {
		return ""
	}
	state := f.State()
	placeholder := f.cfg.SearchPlaceholder
	if placeholder == "" {
		placeholder = "Search..."
	}
	return fmt.Sprintf(
		`<div class="filter-search"><input type="text" class="search-input" placeholder="%s" value="%s" data-action="search"></div>`,
		html.EscapeString(placeholder), html.EscapeString(state.Search))
}

func (f *Filter[T]) RenderSortControls() string {
	if !f.cfg.EnableSorting || len(f.cfg.SortOptions) <= 1 {
		return ""
	}
	state := f.State()
	arrow := "&uarr;"
	if state.SortDirection == "desc" {
		arrow = "&darr;"
	}
	return fmt.Sprintf(
		`<div class="sort-controls"><button class="sort-btn" data-action="sort">%s Sort: %s</button></div>`,
		arrow, html.EscapeString(formatLabel(state.SortBy)))
}

func formatLabel(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
