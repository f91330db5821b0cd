package client

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/ferreirogomes/carteirinha/validation"
)

// ErrSubmitInFlight sinaliza uma tentativa de envio com outro envio do
// mesmo formulário ainda pendente.
var ErrSubmitInFlight = errors.New("envio já em andamento")

// SubmitState descreve o estado do fluxo de envio do formulário.
type SubmitState int

const (
	StateIdle SubmitState = iota
	StateSubmitting
	StateSuccess
	StateFailure
)

// Notifier abstrai a superfície de notificação (toasts) da interface.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// FormValues são os valores brutos digitados no formulário de cadastro.
type FormValues struct {
	Symbol        string
	Name          string
	Price         string
	Change        string
	ChangePercent string
	Volume        string
	MarketCap     string
}

// StockForm implementa o fluxo de cadastro de uma ação:
// idle → submitting → {success, failure}. Um envio por vez; entrada
// inválida bloqueia o envio sem chamada de rede; em falha os valores
// digitados são preservados para correção e reenvio manual.
type StockForm struct {
	api      *Client
	cache    *StockCache
	notifier Notifier

	mu     sync.Mutex
	state  SubmitState
	values FormValues
}

// NewStockForm cria um formulário vazio, em estado idle.
func NewStockForm(api *Client, cache *StockCache, notifier Notifier) *StockForm {
	return &StockForm{api: api, cache: cache, notifier: notifier}
}

// SetValues substitui os valores digitados no formulário.
func (f *StockForm) SetValues(v FormValues) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

// Values retorna os valores atuais do formulário.
func (f *StockForm) Values() FormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// State retorna o estado atual do fluxo de envio.
func (f *StockForm) State() SubmitState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit valida os valores do formulário e, se aceitos, envia a criação
// ao backend. Entrada inválida retorna os erros por campo e NÃO gera
// chamada de rede. Sucesso invalida o cache da watchlist, limpa o
// formulário e notifica; falha notifica e preserva os valores.
func (f *StockForm) Submit(ctx context.Context) ([]validation.FieldError, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	in, ferrs := buildInput(f.values)
	if len(ferrs) > 0 {
		f.mu.Unlock()
		return ferrs, nil
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	_, err := f.api.CreateStock(ctx, in)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateFailure
		f.notifier.Error("Não foi possível adicionar a ação. Tente novamente.")
		return nil, err
	}

	f.state = StateSuccess
	f.values = FormValues{}
	f.cache.Invalidate()
	f.notifier.Success("Ação adicionada à watchlist.")
	return nil, nil
}

// buildInput normaliza os valores do formulário (symbol em maiúsculas,
// espaços aparados) e avalia o mesmo conjunto de regras do servidor.
func buildInput(v FormValues) (validation.StockInput, []validation.FieldError) {
	in := validation.StockInput{
		Symbol:        strings.ToUpper(strings.TrimSpace(v.Symbol)),
		Name:          strings.TrimSpace(v.Name),
		Price:         strings.TrimSpace(v.Price),
		Change:        strings.TrimSpace(v.Change),
		ChangePercent: strings.TrimSpace(v.ChangePercent),
		MarketCap:     strings.TrimSpace(v.MarketCap),
	}

	var extra []validation.FieldError
	if raw := strings.TrimSpace(v.Volume); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			extra = append(extra, validation.FieldError{Field: "volume", Message: "deve ser um número inteiro"})
			// Valor sentinela para não duplicar o erro de campo obrigatório.
			zero := int64(0)
			in.Volume = &zero
		} else {
			in.Volume = &n
		}
	}

	return in, append(validation.ValidateStock(in), extra...)
}
