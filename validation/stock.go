package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StockInput é o registro de validação para a criação de uma ação.
// Volume é ponteiro para distinguir um campo ausente de um zero legítimo.
type StockInput struct {
	Symbol        string `json:"symbol" validate:"required,min=1,max=5"`
	Name          string `json:"name" validate:"required"`
	Price         string `json:"price" validate:"required"`
	Change        string `json:"change" validate:"required"`
	ChangePercent string `json:"changePercent" validate:"required"`
	Volume        *int64 `json:"volume" validate:"required,gte=0"`
	MarketCap     string `json:"marketCap" validate:"required"`
}

// FieldError descreve a rejeição de um campo específico do payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reporta os campos pelo nome do tag json, igual ao payload enviado.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStock aplica o conjunto de regras de criação a um payload.
// Retorna a lista de erros por campo; lista vazia significa payload aceito.
// O mesmo conjunto de regras é avaliado no cliente e no servidor — o
// servidor é a avaliação autoritativa.
func ValidateStock(in StockInput) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "payload inválido"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min", "max":
		return "deve ter entre 1 e 5 caracteres"
	case "gte":
		return "deve ser maior ou igual a zero"
	}
	return "valor inválido"
}
