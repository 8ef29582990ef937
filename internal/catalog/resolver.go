// internal/catalog/resolver.go
package catalog

// Resolve maps a shopper's (possibly partial) selection to the single variant
// the product page should display. The page always needs a concrete variant
// for price, image and availability, even while the selection is incomplete,
// so the fallback chain is:
//
//  1. empty selection: first available variant, else the first variant
//     regardless of availability (a definitive sold-out option beats nothing);
//  2. selection covering every option: exact tuple match, availability ignored;
//  3. partial selection: first variant agreeing with every selected value,
//     restricted to available variants, then without the restriction.
//
// Ties are broken by variant declaration order. Returns ok=false when the
// product has no variants, or when the selection contradicts all of them.
func Resolve(product *Product, sel Selection) (*Variant, bool) {
	if len(product.Variants) == 0 {
		return nil, false
	}

	if len(sel) == 0 {
		for i := range product.Variants {
			if product.Variants[i].Available {
				return &product.Variants[i], true
			}
		}
		return &product.Variants[0], true
	}

	if coversAllOptions(product, sel) {
		for i := range product.Variants {
			if product.Variants[i].Matches(sel) {
				return &product.Variants[i], true
			}
		}
	}

	for i := range product.Variants {
		v := &product.Variants[i]
		if v.Available && v.Matches(sel) {
			return v, true
		}
	}
	for i := range product.Variants {
		if product.Variants[i].Matches(sel) {
			return &product.Variants[i], true
		}
	}

	// Selection contradicts every variant. Never hand back a variant that
	// disagrees with what the shopper picked.
	return nil, false
}

func coversAllOptions(product *Product, sel Selection) bool {
	for _, opt := range product.Options {
		if _, ok := sel[opt.Name]; !ok {
			return false
		}
	}
	return true
}
