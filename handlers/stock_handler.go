package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferreirogomes/carteirinha/models"
	"github.com/ferreirogomes/carteirinha/storage"
	"github.com/ferreirogomes/carteirinha/validation"
)

// StockHandler lida com requisições HTTP relacionadas às ações da watchlist.
type StockHandler struct {
	DB     storage.Store
	Logger *zap.Logger
}

// NewStockHandler cria uma nova instância do handler de ações.
func NewStockHandler(db storage.Store, logger *zap.Logger) *StockHandler {
	return &StockHandler{DB: db, Logger: logger}
}

// GetAllStocks lista todas as ações da watchlist, em ordem de inserção.
// GET /api/stocks
func (h *StockHandler) GetAllStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.DB.GetAllStocks()
	if err != nil {
		internalError(w, h.Logger, "GetAllStocks", err)
		return
	}
	if stocks == nil {
		stocks = []models.Stock{}
	}

	respondJSON(w, http.StatusOK, stocks)
}

// CreateStock valida o payload e grava uma nova ação na watchlist.
// A validação do servidor é a autoritativa: o payload já validado no
// cliente é reavaliado aqui com o mesmo conjunto de regras.
// POST /api/stocks
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var in validation.StockInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if errs := validation.ValidateStock(in); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Message: "payload inválido",
			Errors:  errs,
		})
		return
	}

	// O servidor confia no symbol já normalizado (maiúsculas) pelo cliente;
	// aqui só são garantidas presença e tamanho.
	stock := models.Stock{
		ID:            uuid.New().String(),
		Symbol:        in.Symbol,
		Name:          in.Name,
		Price:         in.Price,
		Change:        in.Change,
		ChangePercent: in.ChangePercent,
		Volume:        *in.Volume,
		MarketCap:     in.MarketCap,
		CreatedAt:     time.Now(),
	}

	created, err := h.DB.CreateStock(stock)
	if err != nil {
		internalError(w, h.Logger, "CreateStock", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}
