package paymee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name:     "validation failure",
			code:     "-1",
			expected: "Falha em validar as informações fornecidas, verifique o erro no log e tente novamente.",
		},
		{
			name:     "transaction not found",
			code:     "998",
			expected: "Não foi possivel recuperar a transação pelo identificador informado.",
		},
		{
			name:     "transaction not pending",
			code:     "999",
			expected: "A situação da transação não está pendente.",
		},
		{
			name:     "transaction not paid",
			code:     "1000",
			expected: "A transação não está com o status Pago ou não existe.",
		},
		{
			name:     "duplicate reference code",
			code:     "1001",
			expected: "O código de referência informado já existe para outra venda.",
		},
		{
			name:     "unknown code falls back to generic",
			code:     "31337",
			expected: "Ocorreu um erro, tente novamente ou contate o administrador do site.",
		},
		{
			name:     "empty code falls back to generic",
			code:     "",
			expected: "Ocorreu um erro, tente novamente ou contate o administrador do site.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorMessage(tc.code))
		})
	}
}
