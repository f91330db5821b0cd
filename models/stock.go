package models

import "time"

// Stock representa uma ação acompanhada na watchlist.
// Os campos de preço são strings para preservar a representação
// formatada exata (ex: "173.50"), sem arredondamento binário.
type Stock struct {
	ID            string    `json:"id" db:"id"`
	Symbol        string    `json:"symbol" db:"symbol"`                // Ex: "AAPL", "PETR4"
	Name          string    `json:"name" db:"name"`                    // Ex: "Apple Inc."
	Price         string    `json:"price" db:"price"`                  // Ex: "173.50"
	Change        string    `json:"change" db:"change"`                // Variação absoluta do dia
	ChangePercent string    `json:"changePercent" db:"change_percent"` // Variação percentual do dia
	Volume        int64     `json:"volume" db:"volume"`
	MarketCap     string    `json:"marketCap" db:"market_cap"` // Formato livre, ex: "$2.7T"
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
