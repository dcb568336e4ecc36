package ui

import (
	"strings"
	"testing"

	"ashfall/ui/internal/bus"
	"ashfall/ui/internal/console"
)

func newTestFilter(t *testing.T) (*Filter[Item], *bus.Bus) {
	t.Helper()
	c := console.New(console.Config{})
	b := bus.New(c)
	return NewInventoryFilter(b, c), b
}

func testItems() []Item {
	return []Item{
		{ID: "sword", Name: "Iron Sword", Type: ItemTypeWeapon, Rarity: RarityCommon},
		{ID: "potion", Name: "Health Potion", Type: ItemTypeConsumable, Rarity: RarityCommon, Description: "Heals wounds"},
		{ID: "key", Name: "Ancient Key", Type: ItemTypeKey, Rarity: RarityRare},
		{ID: "relic", Name: "Dragon Relic", Type: ItemTypeMisc, Rarity: RarityLegendary},
		{ID: "bone", Name: "Cracked Bone", Type: ItemTypeJunk, Rarity: RarityJunk},
	}
}

func idsOf(items []Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func expectIDs(t *testing.T, got []Item, want ...string) {
	t.Helper()
	ids := idsOf(got)
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestFilterAllPassesEverythingThrough(t *testing.T) {
	f, _ := newTestFilter(t)

	items := testItems()
	got := f.FilterData(items)

	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
}

func TestFilterDataDoesNotMutateInput(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetFilter("weapons")

	items := testItems()
	f.FilterData(items)

	expectIDs(t, items, "sword", "potion", "key", "relic", "bone")
}

func TestCategoryPredicates(t *testing.T) {
	f, _ := newTestFilter(t)

	f.SetFilter("weapons")
	expectIDs(t, f.FilterData(testItems()), "sword")

	f.SetFilter("consumables")
	expectIDs(t, f.FilterData(testItems()), "potion")

	f.SetFilter("armor")
	expectIDs(t, f.FilterData(testItems()))

	// misc is everything that is not weapon, armor, or consumable.
	f.SetFilter("misc")
	expectIDs(t, f.FilterData(testItems()), "key", "relic", "bone")
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	f, _ := newTestFilter(t)

	f.SetSearch("SWORD")
	expectIDs(t, f.FilterData(testItems()), "sword")

	f.SetSearch("wounds")
	expectIDs(t, f.FilterData(testItems()), "potion")
}

func TestBlankSearchPassesEverythingThrough(t *testing.T) {
	f, _ := newTestFilter(t)

	f.SetSearch("   ")
	if got := f.FilterData(testItems()); len(got) != 5 {
		t.Fatalf("expected blank search to pass all items, got %d", len(got))
	}
}

func TestFilterIdempotence(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetFilter("misc")
	f.SetSearch("a")

	items := testItems()
	first := f.FilterData(items)
	second := f.FilterData(items)

	if len(first) != len(second) {
		t.Fatalf("two runs disagreed: %v vs %v", idsOf(first), idsOf(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("two runs disagreed: %v vs %v", idsOf(first), idsOf(second))
		}
	}
}

func TestNameSortAscending(t *testing.T) {
	f, _ := newTestFilter(t)

	expectIDs(t, f.FilterData(testItems()), "key", "bone", "relic", "potion", "sword")
}

func TestRaritySortOrdersHigherFirst(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetState(FilterState{Filter: "all", SortBy: "rarity", SortDirection: "asc"})

	got := f.FilterData(testItems())
	if got[0].Rarity != RarityLegendary {
		t.Fatalf("expected legendary first, got %s", got[0].Rarity)
	}
	if got[1].Rarity != RarityRare {
		t.Fatalf("expected rare second, got %s", got[1].Rarity)
	}
	if got[len(got)-1].Rarity != RarityJunk {
		t.Fatalf("expected junk last, got %s", got[len(got)-1].Rarity)
	}
}

func TestSortStabilityPreservesTies(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetState(FilterState{Filter: "all", SortBy: "rarity", SortDirection: "asc"})

	// sword and potion are both common; their relative order must survive.
	got := f.FilterData(testItems())
	swordIdx, potionIdx := -1, -1
	for i, item := range got {
		switch item.ID {
		case "sword":
			swordIdx = i
		case "potion":
			potionIdx = i
		}
	}
	if swordIdx < 0 || potionIdx < 0 || swordIdx > potionIdx {
		t.Fatalf("tie order not preserved: %v", idsOf(got))
	}
}

func TestCycleSortAdvancesAndWrapFlipsDirection(t *testing.T) {
	f, _ := newTestFilter(t)

	if state := f.State(); state.SortBy != "name" || state.SortDirection != "asc" {
		t.Fatalf("unexpected initial state %+v", state)
	}

	f.CycleSort()
	if state := f.State(); state.SortBy != "type" || state.SortDirection != "asc" {
		t.Fatalf("expected type/asc, got %+v", state)
	}

	f.CycleSort()
	if state := f.State(); state.SortBy != "rarity" || state.SortDirection != "asc" {
		t.Fatalf("expected rarity/asc, got %+v", state)
	}

	// Wrapping back to the first option flips the direction.
	f.CycleSort()
	if state := f.State(); state.SortBy != "name" || state.SortDirection != "desc" {
		t.Fatalf("expected name/desc after wrap, got %+v", state)
	}
}

func TestDescendingNameSort(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetState(FilterState{Filter: "all", SortBy: "name", SortDirection: "desc"})

	expectIDs(t, f.FilterData(testItems()), "sword", "potion", "relic", "bone", "key")
}

func TestSetFilterPublishesChange(t *testing.T) {
	f, b := newTestFilter(t)

	var got []FilterState
	b.Subscribe(EventInventoryChanged, func(payload any) {
		if state, ok := payload.(FilterState); ok {
			got = append(got, state)
		}
	})

	f.SetFilter("weapons")
	if len(got) != 1 || got[0].Filter != "weapons" {
		t.Fatalf("expected one change event for weapons, got %+v", got)
	}

	// Re-selecting the active tab is a no-op.
	f.SetFilter("weapons")
	if len(got) != 1 {
		t.Fatalf("expected no event on re-selection, got %d", len(got))
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	f, _ := newTestFilter(t)

	f.SetFilter("weapons")
	f.SetSearch("sword")
	f.CycleSort()
	f.Reset()

	state := f.State()
	if state.Filter != "all" || state.Search != "" || state.SortBy != "name" || state.SortDirection != "asc" {
		t.Fatalf("reset left state %+v", state)
	}
}

func TestNilCollection(t *testing.T) {
	f, _ := newTestFilter(t)

	got := f.FilterData(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice for nil input, got %v", got)
	}
}

func TestRenderTabsMarksActive(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetFilter("weapons")

	tabs := f.RenderTabs()
	if !containsAll(tabs, `data-category="weapons"`, `filter-tab active`) {
		t.Fatalf("tabs markup missing active weapons tab:\n%s", tabs)
	}
}

func TestRenderSearchBarEscapesQuery(t *testing.T) {
	f, _ := newTestFilter(t)
	f.SetSearch(`"><script>`)

	markup := f.RenderSearchBar()
	if !containsAll(markup, "&#34;&gt;&lt;script&gt;") {
		t.Fatalf("search markup not escaped:\n%s", markup)
	}
}

func containsAll(markup string, wants ...string) bool {
	for _, want := range wants {
		if !strings.Contains(markup, want) {
			return false
		}
	}
	return true
}
