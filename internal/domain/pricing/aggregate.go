// Package pricing reduces budget trees into totals. Every function is pure:
// no I/O, no shared state, deterministic for the same input.
package pricing

import (
	"sort"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
)

// Subtotal is Σ (gross − discount). Order does not matter; empty is zero.
func Subtotal(items []entities.LineItem) money.Money {
	var total money.Money
	for _, it := range items {
		total = money.Add(total, it.Net())
	}
	return total
}

func PhaseTotal(phase entities.Phase) money.Money {
	return Subtotal(phase.Items)
}

func OptionTotal(option entities.Option) money.Money {
	var total money.Money
	for _, ph := range option.Phases {
		total = money.Add(total, PhaseTotal(ph))
	}
	return total
}

// Selection is the outcome of summing a hand-picked set of items.
type Selection struct {
	Total money.Money `json:"total"`

	// Matched lists the selected ids found in the tree, sorted.
	Matched []string `json:"matched_ids"`

	// Dangling lists selected ids not present in the tree, sorted. They do not
	// contribute to Total; callers should surface them.
	Dangling []string `json:"dangling_ids,omitempty"`
}

// SupplierSelectionTotal sums the net value of every item, across all
// suppliers, options and phases, whose id is in selectedItemIDs.
func SupplierSelectionTotal(suppliers []entities.SupplierQuote, selectedItemIDs []string) Selection {
	selected := toSet(selectedItemIDs)
	found := make(map[string]struct{}, len(selected))

	var sel Selection
	for _, s := range suppliers {
		for _, o := range s.Options {
			for _, ph := range o.Phases {
				for _, it := range ph.Items {
					if _, ok := selected[it.ID]; !ok {
						continue
					}
					sel.Total = money.Add(sel.Total, it.Net())
					found[it.ID] = struct{}{}
				}
			}
		}
	}

	for id := range selected {
		if _, ok := found[id]; ok {
			sel.Matched = append(sel.Matched, id)
		} else {
			sel.Dangling = append(sel.Dangling, id)
		}
	}
	sort.Strings(sel.Matched)
	sort.Strings(sel.Dangling)
	return sel
}

// SelectedOptionsTotal sums OptionTotal of every option whose id is selected.
// Unknown option ids are returned as dangling.
func SelectedOptionsTotal(suppliers []entities.SupplierQuote, selectedOptionIDs []string) Selection {
	selected := toSet(selectedOptionIDs)
	found := make(map[string]struct{}, len(selected))

	var sel Selection
	for _, s := range suppliers {
		for _, o := range s.Options {
			if _, ok := selected[o.ID]; !ok {
				continue
			}
			sel.Total = money.Add(sel.Total, OptionTotal(o))
			found[o.ID] = struct{}{}
		}
	}
	for id := range selected {
		if _, ok := found[id]; ok {
			sel.Matched = append(sel.Matched, id)
		} else {
			sel.Dangling = append(sel.Dangling, id)
		}
	}
	sort.Strings(sel.Matched)
	sort.Strings(sel.Dangling)
	return sel
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}
