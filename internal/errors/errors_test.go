package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"without cause", Input("months must not be negative"), "[INPUT_ERROR] months must not be negative"},
		{"with cause", Parsing("parse catalog", io.ErrUnexpectedEOF), "[PARSING_ERROR] parse catalog: unexpected EOF"},
		{"formatted", Newf(TypeCatalog, "%d violations", 3), "[CATALOG_ERROR] 3 violations"},
		{"not found", NotFound("provider", "Acme"), "[NOT_FOUND] provider not found: Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsTypeFollowsWrapping(t *testing.T) {
	base := Config("load config", io.EOF)
	wrapped := fmt.Errorf("startup: %w", base)

	assert.True(t, IsType(wrapped, TypeConfig))
	assert.False(t, IsType(wrapped, TypeInput))
	assert.Equal(t, TypeConfig, TypeOf(wrapped))
	assert.Equal(t, TypeInternal, TypeOf(io.EOF))
	require.ErrorIs(t, wrapped, io.EOF)
}

func TestWithContext(t *testing.T) {
	err := Catalog("duplicate provider").WithContext("provider", "Backblaze")

	require.True(t, err.HasType(TypeCatalog))
	assert.Equal(t, "Backblaze", err.Context["provider"])
}
