// OneCart - single-device shopping cart backend
// Entry point for the API server
package main

import (
	"log"
	"net/http"

	"github.com/findosh/onecart/internal/catalog"
	"github.com/findosh/onecart/internal/config"
	"github.com/findosh/onecart/internal/handlers"
	"github.com/findosh/onecart/internal/middleware"
	"github.com/findosh/onecart/internal/services/auth"
	"github.com/findosh/onecart/internal/services/checkout"
	"github.com/findosh/onecart/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Catalog is fixed for the process lifetime
	cat := catalog.Default()

	// Initialize in-memory stores (state resets on restart)
	userStore := storage.NewUserStore()
	sessionStore := storage.NewSessionStore()
	cartStore := storage.NewCartStore(cat)
	orderStore := storage.NewOrderStore()

	// Initialize services
	authService := auth.NewService(cfg, userStore, sessionStore)
	checkoutService := checkout.NewService(cat, cartStore, orderStore)

	// Initialize handlers
	h := handlers.New(
		cfg,
		cat,
		authService,
		checkoutService,
		userStore,
		sessionStore,
		cartStore,
		orderStore,
	)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuth(authService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/api/items", h.ListItems)
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Register(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Login(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Protected routes (require a live session token)
	mux.Handle("/api/users/logout", authMiddleware.RequireAuth(http.HandlerFunc(h.Logout)))
	mux.Handle("/api/carts", authMiddleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetCart(w, r)
		case http.MethodPost:
			h.AddToCart(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))
	mux.Handle("/api/orders", authMiddleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.ListOrders(w, r)
		case http.MethodPost:
			h.PlaceOrder(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	// Apply global middleware
	handler := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.SecurityHeaders,
		middleware.CORS(cfg.AllowedOrigin),
		middleware.Logger,
	)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("OneCart server starting on http://localhost%s", addr)
	log.Printf("Environment: %s", cfg.Environment)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
