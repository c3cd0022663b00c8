package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xavierca1/epayco-charge/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateChargeRequest só checa presença. Número do cartão, CVC e afins
// ficam por conta do gateway.
func ValidateChargeRequest(req *entity.ChargeRequest) []ValidationError {
	var errors []ValidationError

	if req == nil {
		return []ValidationError{{"body", "is required"}}
	}
	if req.HasRequiredData() {
		return nil
	}
	if req.Card.IsEmpty() {
		errors = append(errors, ValidationError{"card", "is required"})
	}
	if req.Customer.IsEmpty() {
		errors = append(errors, ValidationError{"customer", "is required"})
	}
	if req.Due.IsEmpty() {
		errors = append(errors, ValidationError{"due", "is required"})
	}

	return errors
}

// toInt converte como o int() do Python: inteiros, strings numéricas e
// floats (truncados). Qualquer outra coisa é erro.
func toInt(field string, v any) (int64, error) {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, nil
		}
		f, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s: número inválido %q", field, val.String())
		}
		return truncate(field, f)
	case float64:
		return truncate(field, val)
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: valor inválido para inteiro %q", field, val)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%s: valor ausente", field)
	default:
		return 0, fmt.Errorf("%s: tipo não suportado %T", field, v)
	}
}

func truncate(field string, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s: número fora do intervalo", field)
	}
	return int64(f), nil
}

// intOrDefault aplica o default quando o campo opcional não veio.
func intOrDefault(field string, v, fallback any) (int64, error) {
	if v == nil {
		v = fallback
	}
	return toInt(field, v)
}
