package models

import "time"

// Transaction representa uma operação histórica (compra ou venda) de um usuário.
type Transaction struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Type       string    `json:"type" db:"type"` // "buy" ou "sell"
	Symbol     string    `json:"symbol" db:"symbol"`
	Shares     int64     `json:"shares" db:"shares"`
	Price      string    `json:"price" db:"price"`
	Total      string    `json:"total" db:"total"`
	ExecutedAt time.Time `json:"executedAt" db:"executed_at"`
}
