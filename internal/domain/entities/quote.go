package entities

import "orcamentos_rtv/internal/domain/money"

// LineItem is one priced row inside a Phase.
type LineItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Gross    money.Money `json:"gross_value"`
	Discount money.Money `json:"discount"`
}

// Net may be negative when the discount exceeds the gross value.
func (i LineItem) Net() money.Money {
	return money.Sub(i.Gross, i.Discount)
}

type Phase struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []LineItem `json:"items"`
}

// Option (opção/pacote) is one quoted alternative from a supplier.
type Option struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Phases []Phase `json:"phases"`
}

// SupplierQuote is a supplier's quote inside a budget. Options are mutually
// exclusive alternatives, but choosing one is up to the campaign selection.
type SupplierQuote struct {
	ID         string   `json:"id"`
	SupplierID string   `json:"supplier_id,omitempty"`
	Name       string   `json:"name"`
	Contact    string   `json:"contact,omitempty"`
	Options    []Option `json:"options"`
}

// Campaign groups the supplier quotes priced together. When SelectedItemIDs
// is set it takes precedence over SelectedOptionIDs.
type Campaign struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Suppliers         []SupplierQuote `json:"suppliers"`
	SelectedOptionIDs []string        `json:"selected_option_ids,omitempty"`
	SelectedItemIDs   []string        `json:"selected_item_ids,omitempty"`
}
