package pricing

import "github.com/shopspring/decimal"

// PriceExtras sums catalog prices for the selected add-on names. The
// selection is treated as a set: duplicates are charged once, and order does
// not matter. Names missing from the catalog contribute zero without error;
// an unknown extra must never fail a quote.
func PriceExtras(selected []string, catalog map[string]Extra) decimal.Decimal {
	total := decimal.Zero
	seen := make(map[string]struct{}, len(selected))

	for _, name := range selected {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if extra, ok := catalog[name]; ok {
			total = total.Add(extra.Price)
		}
	}

	return total
}
