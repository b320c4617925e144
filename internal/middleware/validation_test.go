package middleware

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"omitempty,min=1"`
	Price     float64 `json:"price" validate:"omitempty,gt=0"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantFields []string
	}{
		{"valid", `{"product_id": 3, "quantity": 2}`, false, nil},
		{"missing product", `{"quantity": 2}`, true, []string{"product_id"}},
		{"zero quantity allowed as omitted", `{"product_id": 1, "quantity": 0}`, false, nil},
		{"negative price", `{"product_id": 1, "price": -1}`, true, []string{"price"}},
		{"unknown field", `{"product_id": 1, "colour": "red"}`, true, []string{"body"}},
		{"malformed json", `{"product_id": `, true, []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			var v sampleRequest
			err := DecodeAndValidate(req, &v)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fields []string
			for _, ve := range FormatValidationErrors(err) {
				fields = append(fields, ve.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestDecodeAndValidate_EmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))

	var v sampleRequest
	err := DecodeAndValidate(req, &v)
	assert.True(t, errors.Is(err, ErrEmptyBody))
}

func TestProperty_ValidationRejectsNonPositiveIDs(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("product_id must be positive", prop.ForAll(
		func(id int64) bool {
			err := ValidateRequest(&sampleRequest{ProductID: id})
			if id > 0 {
				return err == nil
			}
			errs := FormatValidationErrors(err)
			return len(errs) == 1 && errs[0].Field == "product_id"
		},
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestGetErrorMessage_UsesParams(t *testing.T) {
	err := ValidateRequest(&struct {
		Packaging string `json:"packaging" validate:"oneof=glass paper"`
	}{Packaging: "tin"})

	errs := FormatValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "packaging", errs[0].Field)
	assert.Equal(t, "Value must be one of: glass paper", errs[0].Message)
}
