package validator

import (
	"testing"

	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	CNPJ   entity.Value `validate:"truthy"`
	Number entity.Value `validate:"truthy"`
	Note   entity.Value
}

func TestValidate_Truthy(t *testing.T) {
	cv := New()

	tests := []struct {
		name    string
		input   signup
		wantErr bool
	}{
		{"numbers are accepted", signup{CNPJ: entity.Value(`123`), Number: entity.Value(`7`)}, false},
		{"empty array is present", signup{CNPJ: entity.StringValue("1"), Number: entity.Value(`[]`)}, false},
		{"absent field", signup{CNPJ: entity.StringValue("1")}, true},
		{"empty string", signup{CNPJ: entity.StringValue(""), Number: entity.Value(`1`)}, true},
		{"zero", signup{CNPJ: entity.StringValue("1"), Number: entity.Value(`0`)}, true},
		{"false", signup{CNPJ: entity.Value(`false`), Number: entity.Value(`1`)}, true},
		{"null", signup{CNPJ: entity.NullValue, Number: entity.Value(`1`)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
