package httpx

import (
	"context"
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/nepkart/storefront/internal/render"
	"github.com/nepkart/storefront/internal/router"
	"github.com/nepkart/storefront/internal/shop"
	"github.com/nepkart/storefront/internal/store"
)

//go:embed assets
var embeddedAssets embed.FS

type Storefront struct {
	Store *store.Store
	Shop  *shop.Service
	Log   zerolog.Logger
}

func (h *Storefront) Register(r *chi.Mux) {
	r.Get("/assets/*", assetsHandler().ServeHTTP)

	r.Post("/cart/add", h.addToCart)
	r.Post("/cart/remove", h.removeFromCart)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Post("/register", h.register)
	r.Post("/seller-register", h.registerSeller)
	r.Post("/checkout", h.checkout)
	r.Post("/admin/products", h.saveProduct)
	r.Post("/admin/products/delete", h.deleteProduct)

	// Every remaining GET goes through the fragment router, which owns
	// the not-found fallback.
	r.Get("/*", h.page)
}

func assetsHandler() http.Handler {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/assets/", http.FileServer(http.FS(sub)))
}

// --- pages ---

func (h *Storefront) page(w http.ResponseWriter, r *http.Request) {
	rt := router.Resolve(requestLocation(r))
	h.render(w, r, rt, h.popFlash(w, r))
}

func (h *Storefront) render(w http.ResponseWriter, r *http.Request, rt router.Route, flash string) {
	st, err := h.loadState(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	st.Flash = flash

	status := http.StatusOK
	var title, body string
	switch rt.Page {
	case router.PageHome:
		title, body = "Home", render.HomePage(st)
	case router.PageCategory:
		title, body = "Products", render.CategoryPage(st, rt.Param, rt.Query)
	case router.PageProduct:
		title, body = "Product", render.ProductPage(st, rt.Param)
		if !hasProduct(st, rt.Param) {
			status = http.StatusNotFound
		}
	case router.PageCart:
		title, body = "Shopping Cart", render.CartPage(st)
	case router.PageCheckout:
		title, body = "Checkout", render.CheckoutPage(st)
	case router.PageLogin:
		title, body = "Login", render.LoginPage(st)
	case router.PageRegister:
		title, body = "Register", render.RegisterPage(st)
	case router.PageSellerRegister:
		title, body = "Seller Registration", render.SellerRegisterPage(st)
	case router.PageAdmin:
		title, body = "Admin", render.AdminPage(st, rt.Query)
	default:
		title, body = "Not Found", render.NotFoundPage()
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, render.Document(st, title, body))
}

func (h *Storefront) loadState(ctx context.Context) (render.State, error) {
	products, err := h.Store.Products(ctx)
	if err != nil {
		return render.State{}, err
	}
	cart, err := h.Store.Cart(ctx)
	if err != nil {
		return render.State{}, err
	}
	auth, err := h.Store.Auth(ctx)
	if err != nil {
		return render.State{}, err
	}
	return render.State{Products: products, Cart: cart, Auth: auth}, nil
}

func hasProduct(st render.State, id string) bool {
	for _, p := range st.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// --- mutations ---

func (h *Storefront) addToCart(w http.ResponseWriter, r *http.Request) {
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if err != nil || qty <= 0 {
		qty = 1
	}
	if err := h.Shop.AddToCart(r.Context(), r.FormValue("id"), qty); err != nil {
		h.fail(w, err)
		return
	}
	h.rerender(w, r, "Added to cart")
}

func (h *Storefront) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Shop.RemoveFromCart(r.Context(), r.FormValue("id")); err != nil {
		h.fail(w, err)
		return
	}
	h.rerender(w, r, "")
}

func (h *Storefront) login(w http.ResponseWriter, r *http.Request) {
	_, err := h.Shop.Login(r.Context(), r.FormValue("email"), r.FormValue("password"))
	if errors.Is(err, shop.ErrInvalidCredentials) {
		h.rerender(w, r, "Invalid credentials")
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.redirect(w, r, "/", "")
}

func (h *Storefront) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Shop.Logout(r.Context()); err != nil {
		h.fail(w, err)
		return
	}
	h.rerender(w, r, "")
}

func (h *Storefront) register(w http.ResponseWriter, r *http.Request) {
	_, err := h.Shop.Register(r.Context(), r.FormValue("name"), r.FormValue("email"), r.FormValue("password"))
	if errors.Is(err, shop.ErrEmailTaken) {
		h.rerender(w, r, "Email already in use")
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.redirect(w, r, "/", "")
}

func (h *Storefront) registerSeller(w http.ResponseWriter, r *http.Request) {
	err := h.Shop.RegisterSeller(r.Context(),
		r.FormValue("store"), r.FormValue("email"), r.FormValue("phone"), r.FormValue("about"))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.redirect(w, r, "/", "Seller application submitted!")
}

func (h *Storefront) checkout(w http.ResponseWriter, r *http.Request) {
	err := h.Shop.Checkout(r.Context(), r.FormValue("name"), r.FormValue("address"))
	if errors.Is(err, shop.ErrMissingFields) {
		h.rerender(w, r, "Please fill required fields")
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.redirect(w, r, "/", "Order placed! Thank you for shopping with us.")
}

func (h *Storefront) saveProduct(w http.ResponseWriter, r *http.Request) {
	_, err := h.Shop.SaveProduct(r.Context(), shop.ProductInput{
		ID:          r.FormValue("id"),
		Title:       r.FormValue("title"),
		Brand:       r.FormValue("brand"),
		Category:    r.FormValue("category"),
		Price:       r.FormValue("price"),
		Discount:    r.FormValue("discount"),
		Description: r.FormValue("description"),
		Images:      r.FormValue("images"),
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	// Render the admin page without an edit parameter so the form resets.
	h.render(w, r, router.Route{Page: router.PageAdmin, Query: map[string]string{}}, "")
}

func (h *Storefront) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Shop.DeleteProduct(r.Context(), r.FormValue("id")); err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, r, router.Route{Page: router.PageAdmin, Query: map[string]string{}}, "")
}

// --- navigation helpers ---

// rerender responds with the page the form was submitted from. Validation
// failures and same-page mutations stay in place rather than redirecting,
// which is the navigation no-op rule: landing on the page you are already
// on triggers no extra render cycle.
func (h *Storefront) rerender(w http.ResponseWriter, r *http.Request, flash string) {
	h.render(w, r, router.Resolve(refererLocation(r)), flash)
}

// redirect is the cross-page navigation after a successful mutation; the
// flash notice rides a one-shot cookie to the next render.
func (h *Storefront) redirect(w http.ResponseWriter, r *http.Request, target, flash string) {
	if flash != "" {
		http.SetCookie(w, &http.Cookie{
			Name:  "flash",
			Value: url.QueryEscape(flash),
			Path:  "/",
		})
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Storefront) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie("flash")
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: "", Path: "/", MaxAge: -1})
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}

func (h *Storefront) fail(w http.ResponseWriter, err error) {
	h.Log.Error().Err(err).Msg("request failed")
	http.Error(w, "something went wrong", http.StatusInternalServerError)
}

func requestLocation(r *http.Request) string {
	loc := r.URL.Path
	if r.URL.RawQuery != "" {
		loc += "?" + r.URL.RawQuery
	}
	return loc
}

func refererLocation(r *http.Request) string {
	u, err := url.Parse(r.Header.Get("Referer"))
	if err != nil || u.Path == "" {
		return "/"
	}
	loc := u.Path
	if u.RawQuery != "" {
		loc += "?" + u.RawQuery
	}
	return loc
}
