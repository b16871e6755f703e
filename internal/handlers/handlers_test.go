package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/findosh/onecart/internal/catalog"
	"github.com/findosh/onecart/internal/config"
	"github.com/findosh/onecart/internal/middleware"
	"github.com/findosh/onecart/internal/services/auth"
	"github.com/findosh/onecart/internal/services/checkout"
	"github.com/findosh/onecart/internal/storage"
)

// newTestServer wires the full stack the way cmd/server does
func newTestServer() http.Handler {
	cfg := &config.Config{
		Port:          "8080",
		Environment:   "development",
		SecretKey:     "test-secret",
		AllowedOrigin: "http://localhost:5173",
	}

	cat := catalog.Default()
	userStore := storage.NewUserStore()
	sessionStore := storage.NewSessionStore()
	cartStore := storage.NewCartStore(cat)
	orderStore := storage.NewOrderStore()

	authService := auth.NewService(cfg, userStore, sessionStore)
	checkoutService := checkout.NewService(cat, cartStore, orderStore)

	h := New(cfg, cat, authService, checkoutService, userStore, sessionStore, cartStore, orderStore)
	authMiddleware := middleware.NewAuth(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/api/items", h.ListItems)
	mux.HandleFunc("/api/users", h.Register)
	mux.HandleFunc("/api/users/login", h.Login)
	mux.Handle("/api/users/logout", authMiddleware.RequireAuth(http.HandlerFunc(h.Logout)))
	mux.Handle("/api/carts", authMiddleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.AddToCart(w, r)
		} else {
			h.GetCart(w, r)
		}
	})))
	mux.Handle("/api/orders", authMiddleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.PlaceOrder(w, r)
		} else {
			h.ListOrders(w, r)
		}
	})))

	return middleware.Chain(mux, middleware.Recover, middleware.SecurityHeaders, middleware.CORS(cfg.AllowedOrigin))
}

func doJSON(t *testing.T, srv http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func registerAndLogin(t *testing.T, srv http.Handler, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}
	if rr := doJSON(t, srv, http.MethodPost, "/api/users", "", creds); rr.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr := doJSON(t, srv, http.MethodPost, "/api/users/login", "", creds)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp map[string]string
	decodeBody(t, rr, &resp)
	return resp["token"]
}

func TestHealth(t *testing.T) {
	srv := newTestServer()

	rr := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["status"] != "OK" {
		t.Errorf("Expected status OK, got %v", body["status"])
	}
}

func TestListItems(t *testing.T) {
	srv := newTestServer()

	rr := doJSON(t, srv, http.MethodGet, "/api/items", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var items []map[string]interface{}
	decodeBody(t, rr, &items)
	if len(items) != 5 {
		t.Errorf("Expected 5 catalog items, got %d", len(items))
	}
}

func TestRegister_Validation(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name string
		body map[string]string
		code int
	}{
		{"missing password", map[string]string{"username": "alice"}, http.StatusBadRequest},
		{"missing username", map[string]string{"password": "pw"}, http.StatusBadRequest},
		{"ok", map[string]string{"username": "alice", "password": "pw"}, http.StatusCreated},
		{"duplicate", map[string]string{"username": "alice", "password": "pw"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		rr := doJSON(t, srv, http.MethodPost, "/api/users", "", tt.body)
		if rr.Code != tt.code {
			t.Errorf("%s: expected %d, got %d: %s", tt.name, tt.code, rr.Code, rr.Body.String())
		}
	}
}

func TestLogin_StatusCodes(t *testing.T) {
	srv := newTestServer()
	registerAndLogin(t, srv, "alice", "pw1")

	// Second device is refused while the first session lives
	rr := doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{"username": "alice", "password": "pw1"})
	if rr.Code != http.StatusForbidden {
		t.Errorf("Second login: expected 403, got %d", rr.Code)
	}

	rr = doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{"username": "alice", "password": "wrong"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Bad password: expected 400, got %d", rr.Code)
	}

	rr = doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{"username": "nobody", "password": "pw1"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Unknown user: expected 400, got %d", rr.Code)
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/carts"},
		{http.MethodPost, "/api/carts"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/orders"},
		{http.MethodPost, "/api/users/logout"},
	}

	for _, p := range paths {
		if rr := doJSON(t, srv, p.method, p.path, "", nil); rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: expected 401, got %d", p.method, p.path, rr.Code)
		}
		if rr := doJSON(t, srv, p.method, p.path, "bogus-token", nil); rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s with bad token: expected 401, got %d", p.method, p.path, rr.Code)
		}
	}
}

func TestAddToCart_ItemNotFound(t *testing.T) {
	srv := newTestServer()
	token := registerAndLogin(t, srv, "alice", "pw1")

	rr := doJSON(t, srv, http.MethodPost, "/api/carts", token, map[string]string{"itemId": "999"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	srv := newTestServer()
	token := registerAndLogin(t, srv, "alice", "pw1")

	rr := doJSON(t, srv, http.MethodPost, "/api/orders", token, nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

// Full walkthrough: register, login, second device blocked, add the same
// item twice, checkout, history, logout invalidates the token.
func TestShoppingScenario(t *testing.T) {
	srv := newTestServer()
	token := registerAndLogin(t, srv, "alice", "pw1")

	// Empty cart on first read
	rr := doJSON(t, srv, http.MethodGet, "/api/carts", token, nil)
	var cart struct {
		Items []struct {
			ItemID   string `json:"itemId"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
		Total string `json:"total"`
	}
	decodeBody(t, rr, &cart)
	if len(cart.Items) != 0 || cart.Total != "0" {
		t.Fatalf("Expected empty cart, got %+v", cart)
	}

	// Add the same item twice: one line, quantity 2
	doJSON(t, srv, http.MethodPost, "/api/carts", token, map[string]string{"itemId": "1"})
	rr = doJSON(t, srv, http.MethodPost, "/api/carts", token, map[string]string{"itemId": "1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("AddToCart: expected 200, got %d", rr.Code)
	}
	decodeBody(t, rr, &cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("Expected one line qty 2, got %+v", cart.Items)
	}
	if cart.Total != "2599.98" {
		t.Errorf("Expected total 2599.98, got %s", cart.Total)
	}

	// Checkout
	rr = doJSON(t, srv, http.MethodPost, "/api/orders", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Checkout: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var order struct {
		ID    string `json:"id"`
		Total string `json:"total"`
	}
	decodeBody(t, rr, &order)
	if order.Total != "2599.98" {
		t.Errorf("Expected order total 2599.98, got %s", order.Total)
	}

	// Cart is reset
	rr = doJSON(t, srv, http.MethodGet, "/api/carts", token, nil)
	decodeBody(t, rr, &cart)
	if len(cart.Items) != 0 || cart.Total != "0" {
		t.Errorf("Expected reset cart, got %+v", cart)
	}

	// Order history, newest first
	rr = doJSON(t, srv, http.MethodGet, "/api/orders", token, nil)
	var history []struct {
		ID string `json:"id"`
	}
	decodeBody(t, rr, &history)
	if len(history) != 1 || history[0].ID != order.ID {
		t.Errorf("Expected placed order at head of history, got %+v", history)
	}

	// Logout, then the token is dead
	rr = doJSON(t, srv, http.MethodPost, "/api/users/logout", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Logout: expected 200, got %d", rr.Code)
	}
	rr = doJSON(t, srv, http.MethodGet, "/api/carts", token, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with logged-out token, got %d", rr.Code)
	}

	// And login works again
	rr = doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{"username": "alice", "password": "pw1"})
	if rr.Code != http.StatusOK {
		t.Errorf("Re-login after logout: expected 200, got %d", rr.Code)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	srv := newTestServer()
	aliceToken := registerAndLogin(t, srv, "alice", "pw1")
	bobToken := registerAndLogin(t, srv, "bob", "pw2")

	doJSON(t, srv, http.MethodPost, "/api/carts", aliceToken, map[string]string{"itemId": "1"})

	rr := doJSON(t, srv, http.MethodGet, "/api/carts", bobToken, nil)
	var cart struct {
		Items []interface{} `json:"items"`
	}
	decodeBody(t, rr, &cart)
	if len(cart.Items) != 0 {
		t.Errorf("Expected bob's cart to be empty, got %+v", cart.Items)
	}
}
