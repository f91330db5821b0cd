package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ferreirogomes/carteirinha/validation"
)

// errorResponse é o corpo JSON de toda resposta de erro. Errors só é
// preenchido em rejeições de validação.
type errorResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// internalError registra o erro real no log e devolve apenas uma mensagem
// genérica; detalhes internos nunca vazam na resposta.
func internalError(w http.ResponseWriter, logger *zap.Logger, where string, err error) {
	logger.Error("erro interno", zap.String("where", where), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "erro interno do servidor")
}
