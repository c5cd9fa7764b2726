package render

import (
	"strconv"
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
)

// ProductPage renders the detail view, or the not-found page when the id
// does not resolve.
func ProductPage(st State, id string) string {
	var product *catalog.Product
	for i := range st.Products {
		if st.Products[i].ID == id {
			product = &st.Products[i]
			break
		}
	}
	if product == nil {
		return NotFoundPage()
	}
	p := *product
	after := catalog.PriceAfter(p)

	var gallery strings.Builder
	gallery.WriteString(`<div class="panel">`)
	gallery.WriteString(`<img class="hero" src="` + esc(firstImage(p)) + `" alt="` + esc(p.Title) + `">`)
	gallery.WriteString(`<div class="thumbs">`)
	for _, img := range p.Images {
		gallery.WriteString(`<img src="` + esc(img) + `" alt="">`)
	}
	gallery.WriteString(`</div></div>`)

	var info strings.Builder
	info.WriteString(`<div class="panel">`)
	info.WriteString(`<h1>` + esc(p.Title) + `</h1>`)
	info.WriteString(`<div class="price-row"><span class="price big">` + money(after) + `</span>`)
	if p.Discount > 0 {
		info.WriteString(`<span class="strike">` + money(p.Price) + `</span>`)
	}
	info.WriteString(`<span class="muted">` + strconv.Itoa(p.Discount) + `% OFF</span></div>`)
	info.WriteString(`<div class="muted">Brand: ` + esc(p.Brand) + ` • Rating: ⭐ ` + esc(p.Rating) + `</div>`)
	info.WriteString(`<p>` + esc(p.Description) + `</p>`)
	info.WriteString(`<div class="actions">` + addToCartForm(p.ID))
	info.WriteString(`<a class="button ghost" href="/checkout">Buy Now</a></div>`)
	info.WriteString(`</div>`)

	return section("split-2", gallery.String()+info.String())
}
