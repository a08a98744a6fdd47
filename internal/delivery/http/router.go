package http

import (
	"net/http"

	_ "product-api/docs"
	"product-api/internal/delivery/http/handler"
	"product-api/internal/delivery/http/middleware"
	"product-api/pkg/response"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router             *mux.Router
	productHandler     *handler.ProductHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		productHandler:     productHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		recoveryMiddleware: recoveryMiddleware,
	}
}

// Setup registers all routes and returns the router wrapped in the
// logging, recovery and CORS middleware, outermost first.
func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product routes
	products := r.router.PathPrefix("/products").Subrouter()
	products.HandleFunc("", r.productHandler.Create).Methods(http.MethodPost)
	products.HandleFunc("", r.productHandler.GetAll).Methods(http.MethodGet)
	products.HandleFunc("/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	products.HandleFunc("/{id}", r.productHandler.Update).Methods(http.MethodPut)
	products.HandleFunc("/{id}", r.productHandler.Delete).Methods(http.MethodDelete)

	// API documentation
	r.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "No handler found for "+req.Method+" "+req.URL.Path)
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(response.MethodNotAllowed)

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
