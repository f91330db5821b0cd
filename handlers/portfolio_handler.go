package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ferreirogomes/carteirinha/services"
)

// PortfolioHandler lida com requisições HTTP relacionadas a carteiras.
type PortfolioHandler struct {
	Service *services.PortfolioService
	Logger  *zap.Logger
}

// NewPortfolioHandler cria uma nova instância do handler de carteiras.
func NewPortfolioHandler(s *services.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{Service: s, Logger: logger}
}

// GetPortfolio obtém a carteira valorizada de um usuário.
// GET /api/portfolio/{userId}
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "ID do usuário é obrigatório")
		return
	}

	portfolio, found, err := h.Service.GetPortfolio(userID)
	if err != nil {
		internalError(w, h.Logger, "GetPortfolio", err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "Carteira não encontrada")
		return
	}

	respondJSON(w, http.StatusOK, portfolio)
}
