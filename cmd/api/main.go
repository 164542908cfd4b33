package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ecocart/ecocart-backend/internal/modules/analytics"
	"github.com/ecocart/ecocart-backend/internal/modules/auth"
	"github.com/ecocart/ecocart-backend/internal/modules/buyer"
	"github.com/ecocart/ecocart-backend/internal/modules/catalog"
	"github.com/ecocart/ecocart-backend/internal/modules/enrichment"
	"github.com/ecocart/ecocart-backend/internal/modules/order"
	"github.com/ecocart/ecocart-backend/internal/modules/seller"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Accounts & Auth ─────────────────────────────────────
	buyerRepo := buyer.NewPostgresRepository(db)
	buyerService := buyer.NewService(buyerRepo)
	buyer.NewHandler(buyerService).RegisterRoutes(router)

	sellerRepo := seller.NewPostgresRepository(db)
	sellerService := seller.NewService(sellerRepo)
	seller.NewHandler(sellerService).RegisterRoutes(router)

	authService := auth.NewService(buyerRepo, sellerRepo, os.Getenv("JWT_SECRET"))
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & Enrichment ────────────────────────────────
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-pro"
	}
	generator := enrichment.NewGeminiGenerator(os.Getenv("GEMINI_API_KEY"), model)
	enrichmentService := enrichment.NewService(generator)

	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, enrichmentService)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Seller Dashboards ───────────────────────────────────
	analyticsRepo := analytics.NewPostgresRepository(db)
	analyticsService := analytics.NewService(analyticsRepo, catalogRepo)
	analytics.NewHandler(analyticsService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("EcoCart API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
