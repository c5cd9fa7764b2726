package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepkart/storefront/internal/catalog"
	"github.com/nepkart/storefront/internal/events"
	"github.com/nepkart/storefront/internal/shop"
	"github.com/nepkart/storefront/internal/store"
)

func newTestServer(t *testing.T) (*chi.Mux, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemory())
	logger := zerolog.Nop()
	r := NewRouter(logger)
	h := &Storefront{Store: st, Shop: shop.New(st, events.Noop{}), Log: logger}
	h.Register(r)
	return r, st
}

func getPage(r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, target string, form url.Values, referer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", "http://shop.local"+referer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePageRenders(t *testing.T) {
	r, st := newTestServer(t)
	require.NoError(t, st.SaveProducts(context.Background(), []catalog.Product{
		{ID: "1", Title: "Deal", IsFlashDeal: true},
	}))

	w := getPage(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Flash Deals")
	assert.Contains(t, w.Body.String(), "Deal")
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	w := getPage(r, "/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestUnknownProductIsNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	w := getPage(r, "/product/ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestAddToCartStaysOnPageWithToast(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, st.SaveProducts(ctx, []catalog.Product{{ID: "1", Title: "Widget", Price: 100}}))

	w := postForm(r, "/cart/add", url.Values{"id": {"1"}, "qty": {"2"}}, "/product/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Added to cart")
	assert.Contains(t, w.Body.String(), "Widget", "re-renders the referring product page")

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.CartItem{{ID: "1", Qty: 2}}, cart)
}

func TestCheckoutValidationStaysOnCheckout(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, st.SaveCart(ctx, []catalog.CartItem{{ID: "1", Qty: 1}}))

	w := postForm(r, "/checkout", url.Values{"name": {"Asha"}, "address": {""}}, "/checkout")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill required fields")
	assert.Contains(t, w.Body.String(), "Secure Checkout", "no navigation away")

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cart)
}

func TestCheckoutRedirectsHomeWithFlash(t *testing.T) {
	r, st := newTestServer(t)
	require.NoError(t, st.SaveCart(context.Background(), []catalog.CartItem{{ID: "1", Qty: 1}}))

	w := postForm(r, "/checkout", url.Values{"name": {"Asha"}, "address": {"Kathmandu"}}, "/checkout")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var flash *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" {
			flash = c
		}
	}
	require.NotNil(t, flash)

	follow := getPage(r, "/", flash)
	assert.Contains(t, follow.Body.String(), "Order placed!")
}

func TestRegisterDuplicateEmailShowsError(t *testing.T) {
	r, st := newTestServer(t)
	require.NoError(t, st.SaveUsers(context.Background(), []catalog.User{
		{ID: "1", Email: "asha@example.com"},
	}))

	w := postForm(r, "/register",
		url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "password": {"pw"}},
		"/register")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
}

func TestLoginFlow(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, st.SaveUsers(ctx, []catalog.User{
		{ID: "1", Name: "Asha", Email: "asha@example.com", Password: "pw"},
	}))

	w := postForm(r, "/login", url.Values{"email": {"asha@example.com"}, "password": {"bad"}}, "/login")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = postForm(r, "/login", url.Values{"email": {"asha@example.com"}, "password": {"pw"}}, "/login")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	sess, err := st.Auth(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "Asha", sess.Name)

	home := getPage(r, "/")
	assert.Contains(t, home.Body.String(), "Hello, Asha")
}

func TestAdminSaveRendersFreshForm(t *testing.T) {
	r, st := newTestServer(t)

	w := postForm(r, "/admin/products", url.Values{
		"title": {"New Thing"}, "brand": {"Sony"}, "category": {"electronics"}, "price": {"1200"},
	}, "/admin?edit=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Thing")
	assert.NotContains(t, w.Body.String(), `value="New Thing"`, "form resets after save")

	products, err := st.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestAdminDelete(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, st.SaveProducts(ctx, []catalog.Product{{ID: "1", Title: "Widget"}}))

	w := postForm(r, "/admin/products/delete", url.Values{"id": {"1"}}, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)

	products, err := st.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFlashCookieIsOneShot(t *testing.T) {
	r, _ := newTestServer(t)

	w := getPage(r, "/", &http.Cookie{Name: "flash", Value: url.QueryEscape("Hello there")})
	assert.Contains(t, w.Body.String(), "Hello there")

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie must be cleared after rendering")
}

func TestAssetsAreServed(t *testing.T) {
	r, _ := newTestServer(t)
	w := getPage(r, "/assets/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "banner-track")
}

func TestHealthz(t *testing.T) {
	r, _ := newTestServer(t)
	w := getPage(r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
