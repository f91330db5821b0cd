package client

import (
	"context"
	"sync"

	"github.com/ferreirogomes/carteirinha/models"
)

// StockCache mantém uma cópia transitória da watchlist no cliente.
// Depois de uma mutação bem-sucedida o cache é invalidado explicitamente;
// a próxima leitura busca a lista de novo no backend.
type StockCache struct {
	api *Client

	mu     sync.Mutex
	stocks []models.Stock
	valid  bool
}

// NewStockCache cria um cache vazio (e inválido) sobre o cliente da API.
func NewStockCache(api *Client) *StockCache {
	return &StockCache{api: api}
}

// Stocks retorna a watchlist em cache, buscando no backend quando o
// cache está inválido.
func (c *StockCache) Stocks(ctx context.Context) ([]models.Stock, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid {
		stocks, err := c.api.ListStocks(ctx)
		if err != nil {
			return nil, err
		}
		c.stocks = stocks
		c.valid = true
	}

	out := make([]models.Stock, len(c.stocks))
	copy(out, c.stocks)
	return out, nil
}

// Invalidate descarta a cópia em cache. É o sinal emitido após cada
// mutação bem-sucedida.
func (c *StockCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stocks = nil
	c.valid = false
}
