package catalog

import (
	"strconv"
	"strings"
)

// Filter is the category-listing pipeline. Every stage is optional; the
// stages always run in the same order and the result keeps catalog
// storage order (no sort).
type Filter struct {
	Category  string // slug; "" or "all" disables the stage
	Query     string // case-insensitive substring of title or brand
	MinPrice  string // inclusive lower bound on the price after discount
	MaxPrice  string // inclusive upper bound on the price after discount
	Brand     string // exact match
	FlashOnly bool
}

// FilterFromQuery builds a Filter from a listing route's slug and query
// parameters (q, min, max, brand, flash).
func FilterFromQuery(slug string, query map[string]string) Filter {
	return Filter{
		Category:  slug,
		Query:     query["q"],
		MinPrice:  query["min"],
		MaxPrice:  query["max"],
		Brand:     query["brand"],
		FlashOnly: query["flash"] == "1",
	}
}

func (f Filter) Apply(products []Product) []Product {
	out := products
	if f.Category != "" && f.Category != "all" {
		out = keep(out, func(p Product) bool { return p.Category == f.Category })
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		out = keep(out, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Brand), q)
		})
	}
	if min, ok := parseBound(f.MinPrice); ok {
		out = keep(out, func(p Product) bool { return PriceAfter(p) >= min })
	}
	if max, ok := parseBound(f.MaxPrice); ok {
		out = keep(out, func(p Product) bool { return PriceAfter(p) <= max })
	}
	if f.Brand != "" {
		out = keep(out, func(p Product) bool { return p.Brand == f.Brand })
	}
	if f.FlashOnly {
		out = keep(out, func(p Product) bool { return p.IsFlashDeal })
	}
	return out
}

// parseBound reads a price bound from its query value. Unparsable input
// disables the stage rather than filtering everything out.
func parseBound(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func keep(in []Product, pred func(Product) bool) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
