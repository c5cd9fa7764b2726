// Package router resolves a fragment-style location ("/category/fashion?min=100",
// with or without a leading "#") to a page identifier plus its parameters.
// The dispatch table is fixed: exact paths first for the home page, then the
// two prefix routes, then the remaining exact pages; anything else is
// not-found.
package router

import (
	"net/url"
	"strings"
)

// Page identifiers produced by Resolve.
const (
	PageHome           = "home"
	PageCategory       = "category"
	PageProduct        = "product"
	PageCart           = "cart"
	PageCheckout       = "checkout"
	PageLogin          = "login"
	PageRegister       = "register"
	PageSellerRegister = "seller-register"
	PageAdmin          = "admin"
	PageNotFound       = "not-found"
)

type Route struct {
	Page  string
	Param string            // category slug or product id; empty when absent
	Query map[string]string
	Path  string            // normalized path: "/" + segments joined
}

// Parse splits a location into its path segments and query parameters.
// Empty path segments are dropped, query values are URL-decoded, and the
// last occurrence of a repeated key wins.
func Parse(location string) (parts []string, query map[string]string, path string) {
	s := strings.TrimPrefix(location, "#")
	rawQuery := ""
	if i := strings.IndexByte(s, '?'); i >= 0 {
		rawQuery = s[i+1:]
		s = s[:i]
	}
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts, parseQuery(rawQuery), "/" + strings.Join(parts, "/")
}

func parseQuery(raw string) map[string]string {
	query := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		if dk, err := url.QueryUnescape(k); err == nil {
			k = dk
		}
		if dv, err := url.QueryUnescape(v); err == nil {
			v = dv
		}
		if k == "" {
			continue
		}
		query[k] = v
	}
	return query
}

// Resolve maps a location to its page.
func Resolve(location string) Route {
	parts, query, path := Parse(location)
	rt := Route{Query: query, Path: path}

	if path == "/" {
		rt.Page = PageHome
		return rt
	}
	if parts[0] == "category" {
		rt.Page = PageCategory
		if len(parts) > 1 {
			rt.Param = parts[1]
		}
		return rt
	}
	if parts[0] == "product" {
		rt.Page = PageProduct
		if len(parts) > 1 {
			rt.Param = parts[1]
		}
		return rt
	}
	switch path {
	case "/cart":
		rt.Page = PageCart
	case "/checkout":
		rt.Page = PageCheckout
	case "/login":
		rt.Page = PageLogin
	case "/register":
		rt.Page = PageRegister
	case "/seller-register":
		rt.Page = PageSellerRegister
	case "/admin":
		rt.Page = PageAdmin
	default:
		rt.Page = PageNotFound
	}
	return rt
}
