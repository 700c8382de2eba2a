package router

import "strings"

// Page identifies a storefront page
type Page string

const (
	PageHome      Page = "home"
	PageProducts  Page = "products"
	PageCategory  Page = "category"
	PageProduct   Page = "product"
	PageCart      Page = "cart"
	PageAuth      Page = "auth"
	PageCheckout  Page = "checkout"
	PageDashboard Page = "dashboard"
	PageNotFound  Page = "not_found"
)

// Resolution is the outcome of resolving a storefront path
type Resolution struct {
	Page   Page
	Params map[string]string
}

// ResolvePage maps a storefront path to the page that renders it.
// Prefix patterns carry a parameter: /category/<name> and /product/<id>.
// Everything else must match exactly; unknown paths resolve to the
// not-found page rather than an error.
func ResolvePage(path string) Resolution {
	path = normalizePath(path)

	if name, ok := strings.CutPrefix(path, "/category/"); ok && name != "" && !strings.Contains(name, "/") {
		return Resolution{Page: PageCategory, Params: map[string]string{"name": name}}
	}
	if id, ok := strings.CutPrefix(path, "/product/"); ok && id != "" && !strings.Contains(id, "/") {
		return Resolution{Page: PageProduct, Params: map[string]string{"id": id}}
	}

	switch path {
	case "/":
		return Resolution{Page: PageHome}
	case "/products":
		return Resolution{Page: PageProducts}
	case "/cart":
		return Resolution{Page: PageCart}
	case "/auth":
		return Resolution{Page: PageAuth}
	case "/checkout":
		return Resolution{Page: PageCheckout}
	case "/dashboard":
		return Resolution{Page: PageDashboard}
	}
	return Resolution{Page: PageNotFound}
}

func normalizePath(path string) string {
	// Query strings and fragments are not part of matching
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
