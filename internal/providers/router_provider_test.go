package providers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestRouterProvider_MethodQualifiedPatterns(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/", textHandler("index"))
	rp.Post("/", textHandler("hook"))
	rp.Get("/static/", textHandler("static"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "GET /", routes[0].Pattern)
	assert.Equal(t, "POST /", routes[1].Pattern)
	assert.Equal(t, "GET /static/", routes[2].Pattern)
}

// GET and POST on the same path must land on different handlers once the
// routes are installed into a ServeMux.
func TestRouterProvider_SamePathDifferentMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/", textHandler("index"))
	rp.Post("/", textHandler("hook"))

	mux := http.NewServeMux()
	for _, route := range rp.GetRoutes() {
		mux.Handle(route.Pattern, route.Handler)
	}

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "index", string(body))

	resp, err = http.Post(srv.URL+"/", "application/json", nil)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "hook", string(body))
}
