package render

import (
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
)

func CheckoutPage(st State) string {
	lines := catalog.CartLines(st.Products, st.Cart)

	var form strings.Builder
	form.WriteString(`<div class="panel wide"><h1>Secure Checkout</h1>`)
	if st.Auth != nil {
		form.WriteString(`<div class="muted">Logged in as <strong>` + esc(st.Auth.Email) + `</strong></div>`)
	} else {
		form.WriteString(`<div class="muted">Guest checkout • <a href="/login">Login</a></div>`)
	}
	form.WriteString(`<form id="checkout-form" method="post" action="/checkout">`)
	form.WriteString(`<input name="name" required placeholder="Full Name">`)
	form.WriteString(`<input name="email" type="email" required placeholder="Email">`)
	form.WriteString(`<input name="phone" required placeholder="Phone">`)
	form.WriteString(`<input name="address" required placeholder="Address">`)
	form.WriteString(`<select name="payment" required>`)
	form.WriteString(`<option value="cod">Cash on Delivery</option>`)
	form.WriteString(`<option value="esewa">eSewa</option>`)
	form.WriteString(`<option value="khalti">Khalti</option>`)
	form.WriteString(`<option value="card">Card</option>`)
	form.WriteString(`</select>`)
	form.WriteString(`<button>Place Order</button></form></div>`)

	var summary strings.Builder
	summary.WriteString(`<div class="panel summary"><div class="side-head">Order Summary</div>`)
	for _, l := range lines {
		summary.WriteString(`<div class="row-head"><span>` + esc(l.Product.Title) + `</span>`)
		summary.WriteString(`<span>` + money(catalog.PriceAfter(l.Product)*l.Qty) + `</span></div>`)
	}
	summary.WriteString(`<div class="row-head total"><span>Total</span><span>` + money(catalog.Subtotal(lines)) + `</span></div></div>`)

	return section("split-cart", form.String()+summary.String())
}
