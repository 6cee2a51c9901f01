package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlinks/internal/validation"
)

func TestIsValidAlias(t *testing.T) {
	tests := []struct {
		alias string
		want  bool
	}{
		{"promo", true},
		{"Spring_Sale-2024", true},
		{"a", true},
		{"", false},
		{"has space", false},
		{"slash/inside", false},
		{"dot.ted", false},
		{"ünïcode", false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidAlias(tt.alias))
		})
	}
}

func TestIsReservedAlias(t *testing.T) {
	assert.True(t, validation.IsReservedAlias("api"))
	assert.True(t, validation.IsReservedAlias("Health"))
	assert.True(t, validation.IsReservedAlias("METRICS"))
	assert.False(t, validation.IsReservedAlias("promo"))
}

func TestStructValidator(t *testing.T) {
	type aliasReq struct {
		Alias string `validate:"omitempty,max=64,shortcode,notreserved"`
	}
	type loginReq struct {
		Email    string `validate:"required"`
		Password string `validate:"required"`
	}

	v := validation.NewStructValidator()

	tests := []struct {
		name    string
		in      any
		wantErr error
	}{
		{"empty alias is optional", &aliasReq{}, nil},
		{"valid alias", &aliasReq{Alias: "promo"}, nil},
		{"bad characters", &aliasReq{Alias: "no spaces"}, validation.ErrInvalidAlias},
		{"too long", &aliasReq{Alias: strings.Repeat("a", 65)}, validation.ErrInvalidAlias},
		{"reserved", &aliasReq{Alias: "api"}, validation.ErrReservedAlias},
		{"login complete", &loginReq{Email: "a@b.c", Password: "pw"}, nil},
		{"login missing password", &loginReq{Email: "a@b.c"}, validation.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
