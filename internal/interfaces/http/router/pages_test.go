package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		page   Page
		params map[string]string
	}{
		{name: "home", path: "/", page: PageHome},
		{name: "products", path: "/products", page: PageProducts},
		{name: "cart", path: "/cart", page: PageCart},
		{name: "auth", path: "/auth", page: PageAuth},
		{name: "checkout", path: "/checkout", page: PageCheckout},
		{name: "dashboard", path: "/dashboard", page: PageDashboard},
		{name: "category", path: "/category/Kitchen", page: PageCategory, params: map[string]string{"name": "Kitchen"}},
		{name: "product", path: "/product/abc-123", page: PageProduct, params: map[string]string{"id": "abc-123"}},
		{name: "trailing slash normalized", path: "/products/", page: PageProducts},
		{name: "query string stripped", path: "/products?search=milk", page: PageProducts},
		{name: "query string on category", path: "/category/Kitchen?sort=price", page: PageCategory, params: map[string]string{"name": "Kitchen"}},
		{name: "bare query string is home", path: "?utm=x", page: PageHome},
		{name: "fragment stripped", path: "/cart#top", page: PageCart},
		{name: "missing leading slash", path: "cart", page: PageCart},
		{name: "empty path is home", path: "", page: PageHome},
		{name: "unknown path", path: "/warehouse", page: PageNotFound},
		{name: "bare category prefix", path: "/category/", page: PageNotFound},
		{name: "nested category segment", path: "/category/a/b", page: PageNotFound},
		{name: "bare product prefix", path: "/product/", page: PageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePage(tt.path)
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.params, got.Params)
		})
	}
}
