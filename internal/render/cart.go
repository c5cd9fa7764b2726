package render

import (
	"strconv"
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
)

// CartPage joins cart entries to products and shows the subtotal. Orphaned
// entries are dropped from the view only; the stored cart keeps them until
// a removal is explicitly invoked.
func CartPage(st State) string {
	lines := catalog.CartLines(st.Products, st.Cart)

	if len(lines) == 0 {
		empty := `<div class="panel center">Your cart is empty. <a href="/">Continue shopping</a></div>`
		return section("", `<h1>Shopping Cart</h1>`+empty)
	}

	var items strings.Builder
	items.WriteString(`<div class="cart-items">`)
	for _, l := range lines {
		p := l.Product
		items.WriteString(`<div class="panel cart-item">`)
		items.WriteString(`<img src="` + esc(firstImage(p)) + `" alt="` + esc(p.Title) + `">`)
		items.WriteString(`<div class="cart-item-info"><div>` + esc(p.Title) + `</div>`)
		items.WriteString(`<div class="price">` + money(catalog.PriceAfter(p)) + `</div>`)
		items.WriteString(`<div class="muted">Qty: ` + strconv.Itoa(l.Qty) + `</div></div>`)
		items.WriteString(`<form method="post" action="/cart/remove">`)
		items.WriteString(`<input type="hidden" name="id" value="` + esc(p.ID) + `">`)
		items.WriteString(`<button class="linklike">Remove</button></form>`)
		items.WriteString(`</div>`)
	}
	items.WriteString(`</div>`)

	summary := `<div class="panel summary"><div class="side-head">Order Summary</div>` +
		`<div class="row-head"><span>Subtotal</span><span>` + money(catalog.Subtotal(lines)) + `</span></div>` +
		`<a class="button" href="/checkout">Proceed to Checkout</a></div>`

	return section("", `<h1>Shopping Cart</h1><div class="split-cart">`+items.String()+summary+`</div>`)
}
