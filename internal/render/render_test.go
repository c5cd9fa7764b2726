package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nepkart/storefront/internal/catalog"
)

func TestMoneyGrouping(t *testing.T) {
	assert.Equal(t, "Rs. 0", money(0))
	assert.Equal(t, "Rs. 999", money(999))
	assert.Equal(t, "Rs. 1,800", money(1800))
	assert.Equal(t, "Rs. 1,234,567", money(1234567))
}

func TestCartPageSubtotal(t *testing.T) {
	st := State{
		Products: []catalog.Product{{ID: "1", Title: "Widget", Price: 1000, Discount: 10, Images: []string{"x.jpg"}}},
		Cart:     []catalog.CartItem{{ID: "1", Qty: 2}},
	}
	page := CartPage(st)
	assert.Contains(t, page, "Rs. 1,800", "subtotal is round(1000*0.9)*2")
	assert.Contains(t, page, "Widget")
}

func TestCartPageDropsOrphans(t *testing.T) {
	st := State{
		Products: []catalog.Product{{ID: "1", Title: "Widget", Price: 100}},
		Cart:     []catalog.CartItem{{ID: "1", Qty: 1}, {ID: "gone", Qty: 9}},
	}
	page := CartPage(st)
	assert.NotContains(t, page, "gone")
	assert.Contains(t, page, "Rs. 100")
}

func TestCartPageEmpty(t *testing.T) {
	page := CartPage(State{})
	assert.Contains(t, page, "Your cart is empty")
}

func TestHeaderReflectsAuth(t *testing.T) {
	out := Document(State{}, "Home", "")
	assert.Contains(t, out, `href="/login"`)
	assert.NotContains(t, out, "Logout")

	out = Document(State{Auth: &catalog.AuthSession{Name: "Asha"}}, "Home", "")
	assert.Contains(t, out, "Hello, Asha")
	assert.Contains(t, out, "Logout")
}

func TestHeaderCartCount(t *testing.T) {
	st := State{Cart: []catalog.CartItem{{ID: "1", Qty: 2}, {ID: "2", Qty: 3}}}
	assert.Contains(t, Document(st, "Home", ""), `<span class="badge">5</span>`)
}

func TestDocumentEscapesFlash(t *testing.T) {
	out := Document(State{Flash: `<script>alert(1)</script>`}, "Home", "")
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestCategoryPageCountsFilteredItems(t *testing.T) {
	st := State{Products: []catalog.Product{
		{ID: "1", Title: "A", Category: "electronics"},
		{ID: "2", Title: "B", Category: "fashion"},
	}}
	page := CategoryPage(st, "electronics", nil)
	assert.Contains(t, page, "1 items")
	assert.Contains(t, page, "Electronics")

	page = CategoryPage(st, "all", nil)
	assert.Contains(t, page, "2 items")
	assert.Contains(t, page, "All Products")
}

func TestProductPageFallsBackToNotFound(t *testing.T) {
	page := ProductPage(State{}, "missing")
	assert.Contains(t, page, "Page not found")
}

func TestProductPageShowsDiscountedPrice(t *testing.T) {
	st := State{Products: []catalog.Product{{
		ID: "7", Title: "Camera", Brand: "Sony", Price: 20000, Discount: 30,
		Rating: "4.5", Images: []string{"a.jpg", "b.jpg"},
	}}}
	page := ProductPage(st, "7")
	assert.Contains(t, page, "Rs. 14,000")
	assert.Contains(t, page, "30% OFF")
	assert.Contains(t, page, "Camera")
}

func TestAdminPageListsAndPrefills(t *testing.T) {
	st := State{Products: []catalog.Product{{
		ID: "1", Title: "Widget", Price: 1000, Discount: 10, Stock: 42,
		Images: []string{"a.jpg", "b.jpg"},
	}}}
	page := AdminPage(st, nil)
	assert.Contains(t, page, "Rs. 900", "table shows price after discount")
	assert.Contains(t, page, "<td>42</td>", "table shows raw stock")
	assert.Contains(t, page, `value=""`, "form starts blank")

	page = AdminPage(st, map[string]string{"edit": "1"})
	assert.Contains(t, page, `value="Widget"`)
	assert.Contains(t, page, `value="a.jpg, b.jpg"`, "images join back to a comma list")
}

func TestHomePageCapsFlashDeals(t *testing.T) {
	var products []catalog.Product
	for i := 0; i < 20; i++ {
		products = append(products, catalog.Product{
			ID: string(rune('a' + i)), Title: "P", IsFlashDeal: true,
		})
	}
	page := HomePage(State{Products: products})
	assert.Equal(t, 12, strings.Count(page, `class="card"`))
}

func TestRenderersDoNotEmitRawUserHTML(t *testing.T) {
	st := State{Products: []catalog.Product{{
		ID: "1", Title: `<img onerror=x>`, Category: "electronics",
	}}}
	page := CategoryPage(st, "all", map[string]string{"q": ""})
	assert.NotContains(t, page, `<img onerror=x>`)
}
