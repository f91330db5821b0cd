package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ferreirogomes/carteirinha/models"
	"github.com/ferreirogomes/carteirinha/storage"
)

// TransactionHandler lida com requisições HTTP do histórico de operações.
type TransactionHandler struct {
	DB     storage.Store
	Logger *zap.Logger
}

// NewTransactionHandler cria uma nova instância do handler de operações.
func NewTransactionHandler(db storage.Store, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{DB: db, Logger: logger}
}

// GetTransactions obtém o histórico de operações de um usuário.
// Um usuário sem operações recebe 200 com lista vazia, não 404.
// GET /api/transactions/{userId}
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "ID do usuário é obrigatório")
		return
	}

	txs, err := h.DB.GetTransactions(userID)
	if err != nil {
		internalError(w, h.Logger, "GetTransactions", err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}

	respondJSON(w, http.StatusOK, txs)
}
