package handlers_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/ferreirogomes/carteirinha/models"
)

// MockStore é uma implementação mock do storage.Store para testes de unidade
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetPortfolio(userID string) (models.Portfolio, bool, error) {
	args := m.Called(userID)
	return args.Get(0).(models.Portfolio), args.Bool(1), args.Error(2)
}

func (m *MockStore) GetAllStocks() ([]models.Stock, error) {
	args := m.Called()
	return args.Get(0).([]models.Stock), args.Error(1)
}

func (m *MockStore) GetTransactions(userID string) ([]models.Transaction, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockStore) CreateStock(stock models.Stock) (models.Stock, error) {
	args := m.Called(stock)
	// Retorno nil ecoa a ação recebida, como faz a persistência real.
	if args.Get(0) == nil {
		return stock, args.Error(1)
	}
	return args.Get(0).(models.Stock), args.Error(1)
}
