package render

import (
	"strconv"
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
)

// CategoryPage runs the listing pipeline over the catalog and renders the
// filter sidebar next to the result grid.
func CategoryPage(st State, slug string, query map[string]string) string {
	f := catalog.FilterFromQuery(slug, query)
	products := f.Apply(st.Products)

	title := "All Products"
	if slug != "" && slug != "all" {
		title = "Products"
		if c, ok := catalog.CategoryBySlug(slug); ok {
			title = c.Name
		}
	}

	action := slug
	if action == "" {
		action = "all"
	}

	var side strings.Builder
	side.WriteString(`<aside class="sidebar"><div class="side-head">Filters</div>`)
	side.WriteString(`<form id="filters-form" method="get" action="/category/` + esc(action) + `">`)
	side.WriteString(`<label>Brand<select name="brand"><option value="">All</option>`)
	for _, brand := range catalog.Brands {
		sel := ""
		if query["brand"] == brand {
			sel = ` selected`
		}
		side.WriteString(`<option` + sel + `>` + esc(brand) + `</option>`)
	}
	side.WriteString(`</select></label>`)
	side.WriteString(`<label>Min Price<input name="min" type="number" min="0" value="` + esc(query["min"]) + `"></label>`)
	side.WriteString(`<label>Max Price<input name="max" type="number" min="0" value="` + esc(query["max"]) + `"></label>`)
	side.WriteString(`</form></aside>`)

	var main strings.Builder
	main.WriteString(`<div class="listing"><div class="row-head"><h1>` + esc(title) + `</h1>`)
	main.WriteString(`<div class="muted">` + strconv.Itoa(len(products)) + ` items</div></div>`)
	main.WriteString(`<div class="grid grid-4">`)
	for _, p := range products {
		main.WriteString(card(p))
	}
	main.WriteString(`</div></div>`)

	return section("split", side.String()+main.String())
}
