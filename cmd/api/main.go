package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/eduardomb/contas/docs"
	"github.com/eduardomb/contas/internal/bill"
	"github.com/eduardomb/contas/internal/config"
	"github.com/eduardomb/contas/internal/database"
	"github.com/eduardomb/contas/internal/receipt"
	"github.com/eduardomb/contas/internal/resident"
	"github.com/eduardomb/contas/internal/settlement"
	"github.com/eduardomb/contas/pkg/logging"
	mw "github.com/eduardomb/contas/pkg/middleware"
)

// @title        Contas do Apartamento API
// @version      1.0
// @description  Shared-household expense ledger and settlement calculator
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection and schema
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Connected to database")

	// Resident feature
	residentRepo := resident.NewRepository(db)
	residentService := resident.NewService(residentRepo)
	residentHandler := resident.NewHandler(residentService)

	// Bill feature
	billRepo := bill.NewRepository(db)
	billService := bill.NewService(billRepo)
	billHandler := bill.NewHandler(billService)

	// Receipt feature
	receiptRepo := receipt.NewRepository(db)
	receiptService := receipt.NewService(receiptRepo, residentRepo)
	receiptHandler := receipt.NewHandler(receiptService)

	// Settlement feature (pure computation over the repositories)
	settlementService := settlement.NewService(residentRepo, billRepo, receiptRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Seed the default roster into an empty store
	if cfg.SeedDefaults {
		if err := residentService.EnsureDefaults(context.Background()); err != nil {
			slog.Error("Failed to seed default residents", "error", err)
			os.Exit(1)
		}
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.AdminIdentity(cfg.AdminResident))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/residents", residentHandler.Routes())
		r.Mount("/bills", billHandler.Routes())
		r.Mount("/receipts", receiptHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port, "admin", cfg.AdminResident)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
