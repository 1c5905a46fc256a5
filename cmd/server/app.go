package main

import (
	"net/http"

	"github.com/lexcabinet/facturation/internal/handlers"
	"github.com/lexcabinet/facturation/internal/services"
	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	ch := handlers.NewClientHandler(a.db)
	dh := handlers.NewDossierHandler(a.db)
	ih := handlers.NewFeeInvoiceHandler(a.db, services.NewFeeInvoiceService(a.db))

	// Clients
	a.mux.HandleFunc("GET /clients", ch.List)
	a.mux.HandleFunc("POST /clients", ch.Create)
	a.mux.HandleFunc("GET /clients/{id}", ch.Get)

	// Dossiers
	a.mux.HandleFunc("GET /dossiers", dh.List)
	a.mux.HandleFunc("POST /dossiers", dh.Create)
	a.mux.HandleFunc("GET /dossiers/{id}", dh.Get)

	// Factures d'honoraires
	a.mux.HandleFunc("POST /factures/preview", ih.Preview)
	a.mux.HandleFunc("GET /factures", ih.List)
	a.mux.HandleFunc("POST /factures", ih.Create)
	a.mux.HandleFunc("GET /factures/{id}", ih.Get)
	a.mux.HandleFunc("POST /factures/{id}", ih.Update)
	a.mux.HandleFunc("POST /factures/{id}/finalize", ih.Finalize)
	a.mux.HandleFunc("POST /factures/{id}/delete", ih.Delete)
	a.mux.HandleFunc("GET /factures/{id}/pdf", ih.PDF)
}
