package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ferreirogomes/carteirinha/models"
	"github.com/ferreirogomes/carteirinha/storage"
)

// PortfolioService calcula a valorização das carteiras a partir das
// cotações atuais da watchlist.
type PortfolioService struct {
	DB storage.Store
}

// NewPortfolioService cria uma nova instância do serviço de carteiras.
func NewPortfolioService(db storage.Store) *PortfolioService {
	return &PortfolioService{DB: db}
}

// GetPortfolio busca a carteira de um usuário e precifica cada posição
// com a cotação atual da ação correspondente. Toda a aritmética é feita
// em decimal exato; os valores retornam formatados com duas casas.
func (s *PortfolioService) GetPortfolio(userID string) (models.Portfolio, bool, error) {
	p, found, err := s.DB.GetPortfolio(userID)
	if err != nil || !found {
		return models.Portfolio{}, found, err
	}

	stocks, err := s.DB.GetAllStocks()
	if err != nil {
		return models.Portfolio{}, false, err
	}
	// Com símbolos duplicados na watchlist, a cotação mais recente vence.
	prices := make(map[string]string, len(stocks))
	for _, st := range stocks {
		prices[st.Symbol] = st.Price
	}

	totalValue := decimal.Zero
	totalCost := decimal.Zero
	for i := range p.Holdings {
		h := &p.Holdings[i]

		avg, err := decimal.NewFromString(h.AvgPrice)
		if err != nil {
			return models.Portfolio{}, false, fmt.Errorf("preço médio inválido para %s: %w", h.Symbol, err)
		}
		// Sem cotação na watchlist, a posição vale o preço médio de compra.
		cur := avg
		if raw, ok := prices[h.Symbol]; ok {
			cur, err = decimal.NewFromString(raw)
			if err != nil {
				return models.Portfolio{}, false, fmt.Errorf("cotação inválida para %s: %w", h.Symbol, err)
			}
		}

		shares := decimal.NewFromInt(h.Shares)
		value := cur.Mul(shares)
		cost := avg.Mul(shares)
		gain := value.Sub(cost)

		h.CurrentPrice = cur.StringFixed(2)
		h.Value = value.StringFixed(2)
		h.Gain = gain.StringFixed(2)
		h.GainPercent = percent(gain, cost)

		totalValue = totalValue.Add(value)
		totalCost = totalCost.Add(cost)
	}

	totalGain := totalValue.Sub(totalCost)
	p.TotalValue = totalValue.StringFixed(2)
	p.TotalGain = totalGain.StringFixed(2)
	p.TotalGainPercent = percent(totalGain, totalCost)
	return p, true, nil
}

func percent(gain, cost decimal.Decimal) string {
	if cost.IsZero() {
		return "0.00"
	}
	return gain.Div(cost).Mul(decimal.NewFromInt(100)).StringFixed(2)
}
