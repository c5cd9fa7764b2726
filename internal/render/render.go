// Package render turns store state and route parameters into full HTML
// documents. Every renderer is a pure function over its inputs; none of
// them touches the store. Each navigation replaces the whole document, so
// pages carry no state between renders beyond what the store holds.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/nepkart/storefront/internal/catalog"
)

// State is the slice of the store a page render needs, loaded once per
// request by the HTTP layer.
type State struct {
	Auth     *catalog.AuthSession
	Products []catalog.Product
	Cart     []catalog.CartItem

	// Flash is a one-shot notice: a toast for confirmations, an inline
	// alert for validation errors.
	Flash string
}

// Document wraps a page body in the HTML shell: head, header, footer, the
// one-shot flash toast, and the per-load script that rebinds the banner
// timer, toast dismissal, and filter auto-submit.
func Document(st State, title, body string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + esc(title) + " · NepKart</title>\n")
	b.WriteString("<link rel=\"stylesheet\" href=\"/assets/styles.css\">\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<header id=\"header\">" + header(st) + "</header>\n")
	b.WriteString("<main id=\"view\">" + body + "</main>\n")
	b.WriteString("<footer id=\"footer\">" + footer() + "</footer>\n")
	if st.Flash != "" {
		b.WriteString("<div class=\"toast\" data-toast>" + esc(st.Flash) + "</div>\n")
	}
	b.WriteString("<script src=\"/assets/app.js\"></script>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func header(st State) string {
	var b strings.Builder
	b.WriteString(`<div class="topbar"><div class="container bar">`)
	b.WriteString(`<a class="logo" href="/">NepKart</a>`)
	b.WriteString(`<form id="search-form" class="search" action="/category/all" method="get">`)
	b.WriteString(`<input name="q" placeholder="Search in NepKart"><button>Search</button></form>`)
	b.WriteString(`<nav class="bar">`)
	if st.Auth != nil {
		b.WriteString(`<span>Hello, ` + esc(st.Auth.Name) + `</span>`)
		b.WriteString(`<form class="inline" method="post" action="/logout"><button class="linklike" id="logout-btn">Logout</button></form>`)
	} else {
		b.WriteString(`<a href="/login">Login</a> <a href="/register">Register</a>`)
	}
	b.WriteString(`<a href="/cart">Cart <span class="badge">` + strconv.Itoa(catalog.CartCount(st.Cart)) + `</span></a>`)
	b.WriteString(`<a href="/seller-register">Sell on NepKart</a>`)
	b.WriteString(`<a href="/admin">Admin</a>`)
	b.WriteString(`</nav></div></div>`)

	b.WriteString(`<div class="cat-nav"><div class="container bar">`)
	for _, c := range catalog.Categories {
		b.WriteString(`<a href="/category/` + esc(c.Slug) + `">` + c.Icon + ` ` + esc(c.Name) + `</a>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func footer() string {
	return `<div class="container footer-grid">` +
		`<div><div class="footer-head">Customer Care</div><div>Help Center</div><div>How to Buy</div><div>Returns &amp; Refunds</div></div>` +
		`<div><div class="footer-head">About Us</div><div>About NepKart</div><div>Contact Us</div></div>` +
		`<div><div class="footer-head">Payment</div><div>Cash on Delivery</div><div>Cards, eSewa, Khalti</div></div>` +
		`<div><div class="footer-head">Follow Us</div><div>Facebook</div><div>Instagram</div></div>` +
		`</div><div class="copyright">© ` + strconv.Itoa(time.Now().Year()) + ` NepKart</div>`
}

// card is the product tile shared by the home grid and category listings.
func card(p catalog.Product) string {
	after := catalog.PriceAfter(p)
	var b strings.Builder
	b.WriteString(`<div class="card">`)
	b.WriteString(`<a href="/product/` + esc(p.ID) + `">`)
	b.WriteString(`<img src="` + esc(firstImage(p)) + `" alt="` + esc(p.Title) + `">`)
	b.WriteString(`<div class="card-body"><div class="card-title">` + esc(p.Title) + `</div>`)
	b.WriteString(`<div class="price">` + money(after) + `</div>`)
	if p.Discount > 0 {
		b.WriteString(`<div class="strike">` + money(p.Price) + `</div>`)
	}
	if p.IsFlashDeal {
		d := p.Discount
		if d == 0 {
			d = 10
		}
		b.WriteString(`<div class="badge-flash">Flash ` + strconv.Itoa(d) + `% OFF</div>`)
	}
	b.WriteString(`</div></a>`)
	b.WriteString(addToCartForm(p.ID))
	b.WriteString(`</div>`)
	return b.String()
}

func addToCartForm(id string) string {
	return `<form method="post" action="/cart/add">` +
		`<input type="hidden" name="id" value="` + esc(id) + `">` +
		`<input type="hidden" name="qty" value="1">` +
		`<button data-add="` + esc(id) + `">Add to Cart</button></form>`
}

func firstImage(p catalog.Product) string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// money renders "Rs. 1,234" with en-style thousands grouping, matching the
// original display format.
func money(n int) string {
	return "Rs. " + groupDigits(n)
}

func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func esc(s string) string { return html.EscapeString(s) }

func section(class, inner string) string {
	return fmt.Sprintf(`<section class="container %s">%s</section>`, class, inner)
}
