package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ferreirogomes/carteirinha/models"
)

// MemDB é uma implementação em memória do Store, usada quando nenhum
// banco está configurado. As ações são mantidas também em um slice para
// preservar a ordem de inserção nas listagens.
type MemDB struct {
	mu           sync.RWMutex
	stocks       []models.Stock
	portfolios   map[string]models.Portfolio
	transactions map[string][]models.Transaction
}

// NewMemDB cria um MemDB vazio.
func NewMemDB() *MemDB {
	return &MemDB{
		portfolios:   make(map[string]models.Portfolio),
		transactions: make(map[string][]models.Transaction),
	}
}

// GetPortfolio retorna a carteira de um usuário, ou found=false.
func (m *MemDB) GetPortfolio(userID string) (models.Portfolio, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, found := m.portfolios[userID]
	if !found {
		return models.Portfolio{}, false, nil
	}
	// Cópia defensiva dos holdings: o chamador preenche os campos calculados.
	out := p
	out.Holdings = make([]models.Holding, len(p.Holdings))
	copy(out.Holdings, p.Holdings)
	return out, true, nil
}

// GetAllStocks retorna todas as ações em ordem de inserção.
func (m *MemDB) GetAllStocks() ([]models.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Stock, len(m.stocks))
	copy(out, m.stocks)
	return out, nil
}

// GetTransactions retorna o histórico de um usuário; vazio se não houver.
func (m *MemDB) GetTransactions(userID string) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	txs := m.transactions[userID]
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	return out, nil
}

// CreateStock grava uma nova ação ao final da coleção.
func (m *MemDB) CreateStock(stock models.Stock) (models.Stock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stocks = append(m.stocks, stock)
	return stock, nil
}

// SavePortfolio grava a carteira de um usuário. Usado pelo seed e pelos testes.
func (m *MemDB) SavePortfolio(p models.Portfolio) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolios[p.UserID] = p
}

// SaveTransaction acrescenta uma operação ao histórico de um usuário.
func (m *MemDB) SaveTransaction(tx models.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.UserID] = append(m.transactions[tx.UserID], tx)
}

// Seed carrega os dados de demonstração: a watchlist inicial, a carteira
// do usuário "1" e algumas operações históricas.
func (m *MemDB) Seed() {
	now := time.Now()

	seedStocks := []models.Stock{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: "178.72", Change: "2.45", ChangePercent: "1.39", Volume: 52389100, MarketCap: "$2.8T"},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: "141.80", Change: "-0.92", ChangePercent: "-0.64", Volume: 21456700, MarketCap: "$1.8T"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Price: "378.85", Change: "4.12", ChangePercent: "1.10", Volume: 18923400, MarketCap: "$2.8T"},
		{Symbol: "TSLA", Name: "Tesla, Inc.", Price: "248.50", Change: "-5.33", ChangePercent: "-2.10", Volume: 98234500, MarketCap: "$790B"},
		{Symbol: "AMZN", Name: "Amazon.com, Inc.", Price: "145.24", Change: "1.87", ChangePercent: "1.30", Volume: 35672800, MarketCap: "$1.5T"},
	}
	for _, s := range seedStocks {
		s.ID = uuid.New().String()
		s.CreatedAt = now
		_, _ = m.CreateStock(s)
	}

	m.SavePortfolio(models.Portfolio{
		UserID: "1",
		Holdings: []models.Holding{
			{Symbol: "AAPL", Name: "Apple Inc.", Shares: 50, AvgPrice: "150.25"},
			{Symbol: "GOOGL", Name: "Alphabet Inc.", Shares: 25, AvgPrice: "135.40"},
			{Symbol: "MSFT", Name: "Microsoft Corporation", Shares: 15, AvgPrice: "340.00"},
		},
	})

	seedTxs := []models.Transaction{
		{UserID: "1", Type: "buy", Symbol: "AAPL", Shares: 20, Price: "148.50", Total: "2970.00", ExecutedAt: now.AddDate(0, -3, 0)},
		{UserID: "1", Type: "buy", Symbol: "GOOGL", Shares: 25, Price: "135.40", Total: "3385.00", ExecutedAt: now.AddDate(0, -2, 0)},
		{UserID: "1", Type: "buy", Symbol: "AAPL", Shares: 30, Price: "151.42", Total: "4542.60", ExecutedAt: now.AddDate(0, -1, 0)},
		{UserID: "1", Type: "sell", Symbol: "TSLA", Shares: 10, Price: "260.00", Total: "2600.00", ExecutedAt: now.AddDate(0, 0, -7)},
		{UserID: "1", Type: "buy", Symbol: "MSFT", Shares: 15, Price: "340.00", Total: "5100.00", ExecutedAt: now.AddDate(0, 0, -2)},
	}
	for _, tx := range seedTxs {
		tx.ID = uuid.New().String()
		m.SaveTransaction(tx)
	}
}
