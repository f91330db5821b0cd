package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ferreirogomes/carteirinha/handlers"
	"github.com/ferreirogomes/carteirinha/models"
	"github.com/ferreirogomes/carteirinha/services"
	"github.com/ferreirogomes/carteirinha/storage"
)

func portfolioRouter(mockDB *MockStore) chi.Router {
	svc := services.NewPortfolioService(mockDB)
	h := handlers.NewPortfolioHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/portfolio/{userId}", h.GetPortfolio)
	return r
}

// TestGetPortfolio testa a obtenção da carteira valorizada de um usuário
func TestGetPortfolio(t *testing.T) {
	mockDB := new(MockStore)

	existing := models.Portfolio{
		UserID: "1",
		Holdings: []models.Holding{
			{Symbol: "AAPL", Name: "Apple Inc.", Shares: 10, AvgPrice: "150.00"},
		},
	}
	quotes := []models.Stock{
		{ID: "s1", Symbol: "AAPL", Name: "Apple Inc.", Price: "170.00", Change: "1.00", ChangePercent: "0.6", Volume: 1000, MarketCap: "$2.7T"},
	}
	mockDB.On("GetPortfolio", "1").Return(existing, true, nil).Once()
	mockDB.On("GetAllStocks").Return(quotes, nil).Once()

	req := httptest.NewRequest("GET", "/api/portfolio/1", nil)
	rr := httptest.NewRecorder()

	portfolioRouter(mockDB).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var p models.Portfolio
	err := json.Unmarshal(rr.Body.Bytes(), &p)
	assert.Nil(t, err)
	assert.Equal(t, "1", p.UserID)
	assert.Len(t, p.Holdings, 1)
	assert.Equal(t, "1700.00", p.Holdings[0].Value)
	assert.Equal(t, "1700.00", p.TotalValue)
	assert.Equal(t, "200.00", p.TotalGain)

	mockDB.AssertExpectations(t)
}

// TestGetPortfolioNotFound testa que usuário sem carteira recebe 404
func TestGetPortfolioNotFound(t *testing.T) {
	mockDB := new(MockStore)
	mockDB.On("GetPortfolio", "999").Return(models.Portfolio{}, false, nil).Once()

	req := httptest.NewRequest("GET", "/api/portfolio/999", nil)
	rr := httptest.NewRecorder()

	portfolioRouter(mockDB).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp errorBody
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.Nil(t, err)
	assert.NotEmpty(t, resp.Message)

	mockDB.AssertExpectations(t)
}

// TestGetPortfolioStorageError testa que falha de leitura vira 500
func TestGetPortfolioStorageError(t *testing.T) {
	mockDB := new(MockStore)
	mockDB.On("GetPortfolio", "1").Return(models.Portfolio{}, false, storage.ErrStorage).Once()

	req := httptest.NewRequest("GET", "/api/portfolio/1", nil)
	rr := httptest.NewRecorder()

	portfolioRouter(mockDB).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockDB.AssertExpectations(t)
}
