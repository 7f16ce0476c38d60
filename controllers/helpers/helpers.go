package helpers

import (
	"github.com/gookit/validate"

	"github.com/cnagroup/cnacoin/types"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Validate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

func ValidateTranslateFields() map[string]string {
	return validate.MS{}
}

func ValidateOrderBy(val types.OrderBy) bool {
	return len(val) == 0 || val == types.OrderByAsc || val == types.OrderByDesc
}

func ValidateRosterOrder(val types.RosterOrder) bool {
	switch val {
	case "", types.RosterOrderNameAsc, types.RosterOrderNameDesc, types.RosterOrderSaldoAsc, types.RosterOrderSaldoDesc:
		return true
	default:
		return false
	}
}

func ValidateKind(val types.MovementKind) bool {
	return val == types.KindEntrada || val == types.KindSaida
}
