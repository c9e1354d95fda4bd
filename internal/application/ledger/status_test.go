package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magasin-tech/stock-atelier/internal/application/ledger"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     string
	}{
		{"por encima del mínimo", 6, 2, entity.StatusOptimal},
		{"igual al mínimo", 5, 5, entity.StatusCritical},
		{"por debajo del mínimo", 3, 10, entity.StatusCritical},
		{"mínimo cero con stock", 1, 0, entity.StatusOptimal},
		{"todo en cero", 0, 0, entity.StatusCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ledger.DeriveStatus(tc.stock, tc.minStock))
		})
	}
}

// Idempotencia: derivar sobre un estado ya derivado no lo cambia.
func TestDeriveStatus_Idempotente(t *testing.T) {
	first := ledger.DeriveStatus(2, 5)
	assert.Equal(t, first, ledger.DeriveStatus(2, 5))
}
