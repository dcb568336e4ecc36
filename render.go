package ui

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// InventoryView is the structured view-model for the inventory screen. It is
// computed once from a snapshot plus filter state and carries everything the
// markup materialization needs, so rendering stays a pure string function.
type InventoryView struct {
	UsedSlots    int
	MaxSlots     int
	TotalWeight  float64
	Items        []Item
	EmptySlots   int
	SearchBar    string
	Tabs         string
	SortControls string
}

// BuildInventoryView filters the snapshot through the engine and computes the
// header numbers. Slot usage and total weight come from the unfiltered
// sequence: filtering changes which filled slots are shown, never the
// capacity arithmetic.
func BuildInventoryView(snap Snapshot, filter *Filter[Item]) InventoryView {
	view := InventoryView{
		UsedSlots: len(snap.Items),
		MaxSlots:  snap.MaxSlots,
		Items:     snap.Items,
	}
	for _, item := range snap.Items {
		view.TotalWeight += item.CarryWeight()
	}
	view.EmptySlots = snap.MaxSlots - len(snap.Items)
	if view.EmptySlots < 0 {
		view.EmptySlots = 0
	}
	if filter != nil {
		view.Items = filter.FilterData(snap.Items)
		view.SearchBar = filter.RenderSearchBar()
		view.Tabs = filter.RenderTabs()
		view.SortControls = filter.RenderSortControls()
	}
	return view
}

// HTML materializes the view as markup. No storage, network, or clock access.
func (v InventoryView) HTML() string {
	var sb strings.Builder

	sb.WriteString(`<div class="inventory-header">`)
	sb.WriteString(`<div class="inventory-info">`)
	fmt.Fprintf(&sb, `<span class="item-count">%d/%d slots</span>`, v.UsedSlots, v.MaxSlots)
	fmt.Fprintf(&sb, `<span class="weight-info">Weight: %s kg</span>`, formatWeight(v.TotalWeight))
	sb.WriteString(`</div>`)
	sb.WriteString(v.SearchBar)
	sb.WriteString(v.Tabs)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="inventory-footer">`)
	sb.WriteString(`<div class="inventory-actions">`)
	sb.WriteString(v.SortControls)
	sb.WriteString(`<button class="action-btn" data-action="drop-junk">Drop Junk</button>`)
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="inventory-grid">`)
	for _, item := range v.Items {
		sb.WriteString(renderSlot(item))
	}
	for i := 0; i < v.EmptySlots; i++ {
		sb.WriteString(`<div class="inventory-slot empty"></div>`)
	}
	sb.WriteString(`</div>`)

	return sb.String()
}

func renderSlot(item Item) string {
	classes := "btn inventory-slot filled"
	if item.Equipped {
		classes += " equipped"
	}
	if item.QuestItem {
		classes += " quest-item"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<div class="%s" data-item-id="%s" data-action="item-click" title="%s">`,
		classes, html.EscapeString(item.ID), html.EscapeString(tooltipText(item)))
	fmt.Fprintf(&sb, `<i class="%s"></i>`, html.EscapeString(item.Icon))
	fmt.Fprintf(&sb, `<span class="inventory-item-name">%s</span>`, html.EscapeString(item.Name))
	if item.Quantity > 1 {
		fmt.Fprintf(&sb, `<div class="item-quantity">%d</div>`, item.Quantity)
	}
	if item.Equipped {
		sb.WriteString(`<div class="equipped-indicator">E</div>`)
	}
	if item.QuestItem {
		sb.WriteString(`<div class="quest-indicator">Q</div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func tooltipText(item Item) string {
	var sb strings.Builder
	sb.WriteString(item.Name)
	sb.WriteString("\nType: ")
	sb.WriteString(string(item.Type))
	if item.Rarity != "" {
		sb.WriteString("\nRarity: ")
		sb.WriteString(string(item.Rarity))
	}
	if item.Damage != "" {
		sb.WriteString("\nDamage: ")
		sb.WriteString(item.Damage)
	}
	if item.Effect != "" {
		sb.WriteString("\nEffect: ")
		sb.WriteString(item.Effect)
	}
	if item.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(item.Description)
	}
	return sb.String()
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}
