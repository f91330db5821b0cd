package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ferreirogomes/carteirinha/config"
	"github.com/ferreirogomes/carteirinha/handlers"
	"github.com/ferreirogomes/carteirinha/services"
	"github.com/ferreirogomes/carteirinha/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Falha ao carregar configuração: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Falha ao inicializar logger: %v", err)
	}
	defer logger.Sync()

	var store storage.Store
	if cfg.DatabaseURL != "" {
		db, err := storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Falha fatal ao conectar ao banco de dados e aplicar migrações", zap.Error(err))
		}
		defer db.Close()
		store = db
	} else {
		mem := storage.NewMemDB()
		mem.Seed()
		store = mem
		logger.Info("DATABASE_URL ausente; usando armazenamento em memória com dados de demonstração")
	}

	portfolioService := services.NewPortfolioService(store)

	stockHandler := handlers.NewStockHandler(store, logger)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, logger)
	transactionHandler := handlers.NewTransactionHandler(store, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)

	r.Route("/api", func(r chi.Router) {
		r.Route("/stocks", func(r chi.Router) {
			r.Get("/", stockHandler.GetAllStocks)
			r.Post("/", stockHandler.CreateStock)
		})
		r.Get("/portfolio/{userId}", portfolioHandler.GetPortfolio)
		r.Get("/transactions/{userId}", transactionHandler.GetTransactions)
	})

	addr := ":" + cfg.Port
	fmt.Printf("Servidor backend rodando na porta %s...\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
