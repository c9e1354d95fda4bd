package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magasin-tech/stock-atelier/internal/domain"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/infrastructure/memory"
)

func TestProductRepo_CicloBasico(t *testing.T) {
	repo := memory.NewProductRepository()

	require.NoError(t, repo.Create(&entity.Product{ID: "p1", Name: "pince"}))
	require.NoError(t, repo.Create(&entity.Product{ID: "p2", Name: "lampe"}))

	// ID duplicado.
	err := repo.Create(&entity.Product{ID: "p1", Name: "otro"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	p, err := repo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "pince", p.Name)

	// Inexistente: nil sin error.
	missing, err := repo.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID, "el listado conserva el orden de inserción")

	require.NoError(t, repo.Delete("p1"))
	list, err = repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p2", list[0].ID)
}

// Las lecturas devuelven copias: mutar el resultado no toca la colección.
func TestProductRepo_DevuelveCopias(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(&entity.Product{ID: "p1", Name: "pince", Stock: 5}))

	p, err := repo.GetByID("p1")
	require.NoError(t, err)
	p.Stock = 999

	again, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Stock)
}

func TestEntryRepo_UpdateInexistente(t *testing.T) {
	repo := memory.NewEntryRepository()
	err := repo.Update(&entity.StockEntry{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntryRepo_ListByDepartment(t *testing.T) {
	repo := memory.NewEntryRepository()
	require.NoError(t, repo.Create(&entity.StockEntry{ID: "e1", Department: "qualite"}))
	require.NoError(t, repo.Create(&entity.StockEntry{ID: "e2", Department: "production"}))
	require.NoError(t, repo.Create(&entity.StockEntry{ID: "e3", Department: "qualite"}))

	got, err := repo.ListByDepartment("qualite")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e3", got[1].ID)
}

func TestSeedDemo_CargaElJuegoDeDatos(t *testing.T) {
	products := memory.NewProductRepository()
	entries := memory.NewEntryRepository()
	exits := memory.NewExitRepository()

	require.NoError(t, memory.SeedDemo(products, entries, exits))

	ps, err := products.List()
	require.NoError(t, err)
	assert.Len(t, ps, 3)

	es, err := entries.List()
	require.NoError(t, err)
	assert.Len(t, es, 1)

	xs, err := exits.List()
	require.NoError(t, err)
	assert.Len(t, xs, 4)

	// El snapshot ya refleja el histórico: pince queda crítica.
	pince, err := products.GetByID("demo-1")
	require.NoError(t, err)
	require.NotNil(t, pince)
	assert.Equal(t, 3, pince.Stock)
	assert.Equal(t, entity.StatusCritical, pince.Status)

	// Cargar dos veces es un error de ID duplicado, no una duplicación silenciosa.
	err = memory.SeedDemo(products, entries, exits)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
