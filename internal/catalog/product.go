// internal/catalog/product.go
package catalog

// Money is a price as returned by the commerce platform.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Option is a named axis of customization (e.g. Color) with its values in
// display order.
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// SelectedOption fixes one option to one value on a variant.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a purchasable SKU of a product. SelectedOptions carries exactly
// one entry per product option, in the product's option order.
type Variant struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	Title           string           `json:"title"`
	SelectedOptions []SelectedOption `json:"selected_options"`
	Price           Money            `json:"price"`
	Available       bool             `json:"available"`
	ImageURL        string           `json:"image_url,omitempty"`
}

type Product struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description_html"`
	Options     []Option  `json:"options"`
	Variants    []Variant `json:"variants"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// Selection is the (possibly partial) set of option values a shopper has
// picked so far. Ephemeral UI state, never persisted.
type Selection map[string]string

// OptionValue returns the value a variant carries for the named option.
func (v *Variant) OptionValue(name string) (string, bool) {
	for _, so := range v.SelectedOptions {
		if so.Name == name {
			return so.Value, true
		}
	}
	return "", false
}

// Matches reports whether the variant agrees with every option value present
// in the selection.
func (v *Variant) Matches(sel Selection) bool {
	for name, value := range sel {
		got, ok := v.OptionValue(name)
		if !ok || got != value {
			return false
		}
	}
	return true
}
