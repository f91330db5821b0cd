package models

// Holding representa uma posição dentro da carteira de um usuário.
// CurrentPrice, Value, Gain e GainPercent são calculados na leitura,
// a partir da cotação atual da ação correspondente.
type Holding struct {
	Symbol       string `json:"symbol" db:"symbol"`
	Name         string `json:"name" db:"name"`
	Shares       int64  `json:"shares" db:"shares"`
	AvgPrice     string `json:"avgPrice" db:"avg_price"` // Preço médio de compra
	CurrentPrice string `json:"currentPrice" db:"-"`
	Value        string `json:"value" db:"-"`
	Gain         string `json:"gain" db:"-"`
	GainPercent  string `json:"gainPercent" db:"-"`
}

// Portfolio agrega as posições e a valorização da carteira de um usuário.
type Portfolio struct {
	UserID           string    `json:"userId" db:"user_id"`
	Holdings         []Holding `json:"holdings"`
	TotalValue       string    `json:"totalValue" db:"-"`
	TotalGain        string    `json:"totalGain" db:"-"`
	TotalGainPercent string    `json:"totalGainPercent" db:"-"`
}
