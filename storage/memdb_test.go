package storage_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ferreirogomes/carteirinha/models"
	"github.com/ferreirogomes/carteirinha/storage"
)

func newStock(symbol string) models.Stock {
	return models.Stock{
		ID:            uuid.New().String(),
		Symbol:        symbol,
		Name:          symbol + " Corp.",
		Price:         "100.00",
		Change:        "1.00",
		ChangePercent: "1.0",
		Volume:        1000,
		MarketCap:     "$1B",
		CreatedAt:     time.Now(),
	}
}

// TestCreateStockPreservesOrder testa que a listagem segue a ordem de inserção
func TestCreateStockPreservesOrder(t *testing.T) {
	db := storage.NewMemDB()

	symbols := []string{"AAPL", "MSFT", "GOOGL", "AAPL"} // duplicados são permitidos
	for _, sym := range symbols {
		created, err := db.CreateStock(newStock(sym))
		assert.Nil(t, err)
		assert.Equal(t, sym, created.Symbol)
	}

	stocks, err := db.GetAllStocks()
	assert.Nil(t, err)
	assert.Len(t, stocks, len(symbols))
	for i, sym := range symbols {
		assert.Equal(t, sym, stocks[i].Symbol)
	}
}

// TestGetPortfolioNotFound testa que usuário sem carteira retorna found=false
func TestGetPortfolioNotFound(t *testing.T) {
	db := storage.NewMemDB()

	_, found, err := db.GetPortfolio("999")
	assert.Nil(t, err)
	assert.False(t, found)
}

// TestGetPortfolio testa a leitura da carteira gravada
func TestGetPortfolio(t *testing.T) {
	db := storage.NewMemDB()
	db.SavePortfolio(models.Portfolio{
		UserID: "1",
		Holdings: []models.Holding{
			{Symbol: "AAPL", Name: "Apple Inc.", Shares: 10, AvgPrice: "150.00"},
		},
	})

	p, found, err := db.GetPortfolio("1")
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", p.UserID)
	assert.Len(t, p.Holdings, 1)
	assert.Equal(t, "AAPL", p.Holdings[0].Symbol)
}

// TestGetTransactionsEmpty testa que usuário sem operações recebe lista
// vazia, não um erro
func TestGetTransactionsEmpty(t *testing.T) {
	db := storage.NewMemDB()

	txs, err := db.GetTransactions("999")
	assert.Nil(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

// TestGetTransactions testa a leitura do histórico de um usuário
func TestGetTransactions(t *testing.T) {
	db := storage.NewMemDB()
	db.SaveTransaction(models.Transaction{ID: "t1", UserID: "1", Type: "buy", Symbol: "AAPL", Shares: 10, Price: "150.00", Total: "1500.00", ExecutedAt: time.Now()})
	db.SaveTransaction(models.Transaction{ID: "t2", UserID: "2", Type: "sell", Symbol: "MSFT", Shares: 5, Price: "300.00", Total: "1500.00", ExecutedAt: time.Now()})

	txs, err := db.GetTransactions("1")
	assert.Nil(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, "t1", txs[0].ID)
}

// TestSeed testa que o seed carrega a watchlist, a carteira e o histórico
// de demonstração
func TestSeed(t *testing.T) {
	db := storage.NewMemDB()
	db.Seed()

	stocks, err := db.GetAllStocks()
	assert.Nil(t, err)
	assert.Len(t, stocks, 5)
	assert.Equal(t, "AAPL", stocks[0].Symbol)

	_, found, err := db.GetPortfolio("1")
	assert.Nil(t, err)
	assert.True(t, found)

	txs, err := db.GetTransactions("1")
	assert.Nil(t, err)
	assert.NotEmpty(t, txs)
}
