package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/ferreirogomes/carteirinha/models"
	"github.com/ferreirogomes/carteirinha/validation"
)

// APIError é uma resposta de erro do backend, já decodificada.
// Errors só vem preenchido em rejeições de validação (400).
type APIError struct {
	Status  int                     `json:"-"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("erro HTTP %d", e.Status)
	}
	return fmt.Sprintf("erro HTTP %d: %s", e.Status, e.Message)
}

// Client chama a API do backend da carteirinha.
type Client struct {
	http *resty.Client
}

// New cria um cliente apontando para a URL base do backend.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// ListStocks busca a watchlist completa.
// GET /api/stocks
func (c *Client) ListStocks(ctx context.Context) ([]models.Stock, error) {
	var stocks []models.Stock
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&stocks).
		SetError(&apiErr).
		Get("/api/stocks")
	if err != nil {
		return nil, fmt.Errorf("falha de rede: %w", err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return nil, &apiErr
	}
	return stocks, nil
}

// GetPortfolio busca a carteira valorizada de um usuário.
// GET /api/portfolio/{userId}
func (c *Client) GetPortfolio(ctx context.Context, userID string) (models.Portfolio, error) {
	var portfolio models.Portfolio
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&portfolio).
		SetError(&apiErr).
		Get("/api/portfolio/" + userID)
	if err != nil {
		return models.Portfolio{}, fmt.Errorf("falha de rede: %w", err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return models.Portfolio{}, &apiErr
	}
	return portfolio, nil
}

// GetTransactions busca o histórico de operações de um usuário.
// GET /api/transactions/{userId}
func (c *Client) GetTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&txs).
		SetError(&apiErr).
		Get("/api/transactions/" + userID)
	if err != nil {
		return nil, fmt.Errorf("falha de rede: %w", err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return nil, &apiErr
	}
	return txs, nil
}

// CreateStock envia um payload de criação já validado no cliente.
// POST /api/stocks
func (c *Client) CreateStock(ctx context.Context, in validation.StockInput) (models.Stock, error) {
	var created models.Stock
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&created).
		SetError(&apiErr).
		Post("/api/stocks")
	if err != nil {
		return models.Stock{}, fmt.Errorf("falha de rede: %w", err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return models.Stock{}, &apiErr
	}
	return created, nil
}
