package departments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magasin-tech/stock-atelier/pkg/departments"
)

// Solo el departamento técnico administra el catálogo y ve todo.
func TestAll_Capacidades(t *testing.T) {
	require.Len(t, departments.All, 5)
	for _, d := range departments.All {
		if d.ID == "technique" {
			assert.True(t, d.CanAddProducts)
			assert.True(t, d.CanViewAll)
			continue
		}
		assert.False(t, d.CanAddProducts, "departamento %s no debe administrar el catálogo", d.ID)
		assert.False(t, d.CanViewAll, "departamento %s no debe ver todo", d.ID)
	}
}

func TestFind(t *testing.T) {
	d, ok := departments.Find("qualite")
	require.True(t, ok)
	assert.Equal(t, "Qualité", d.Name)

	_, ok = departments.Find("ventas")
	assert.False(t, ok)
}
