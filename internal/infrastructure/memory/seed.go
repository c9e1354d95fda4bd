package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
)

// SeedDemo carga el juego de datos de demostración directamente en las
// colecciones, antes de entregárselas al motor. Los stocks del snapshot ya
// reflejan los movimientos del histórico: no se reproducen por el motor para
// no aplicarlos dos veces.
func SeedDemo(products *ProductRepo, entries *EntryRepo, exits *ExitRepo) error {
	now := time.Now()
	d19 := time.Date(2025, time.August, 19, 0, 0, 0, 0, time.UTC)
	d20 := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)

	demoProducts := []entity.Product{
		{
			ID: "demo-1", Name: "pince", Description: "pince 215",
			Stock: 3, MinStock: 10, MaxStock: 50,
			Price: decimal.RequireFromString("7.50"), Status: entity.StatusCritical,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-2", Name: "lampe", Description: "lampe bureau",
			Stock: 6, MinStock: 2, MaxStock: 10,
			Price: decimal.RequireFromString("10.00"), Status: entity.StatusOptimal,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-3", Name: "Cable.68", Description: "Cable - Cable NYY 3*2.5 mm2",
			Stock: 380, MinStock: 0, MaxStock: 1000,
			Price: decimal.Zero, Status: entity.StatusOptimal,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for i := range demoProducts {
		if err := products.Create(&demoProducts[i]); err != nil {
			return err
		}
	}

	demoEntries := []entity.StockEntry{
		{
			ID: "demo-e1", ProductID: "demo-1", ProductName: "pince",
			Supplier: "Monastir", Quantity: 40, MinCommand: 5, MaxCommand: 45,
			Date: d19, Status: entity.EntryStatusPending, Department: "technique",
			CreatedAt: now,
		},
	}
	for i := range demoEntries {
		if err := entries.Create(&demoEntries[i]); err != nil {
			return err
		}
	}

	demoExits := []entity.StockExit{
		{
			ID: "demo-s1", ProductID: "demo-2", ProductName: "lampe",
			Quantity: 3, Department: "administration", Reason: "Installation nouvelle",
			User: "ooo", Date: d19, CreatedAt: now,
		},
		{
			ID: "demo-s2", ProductID: "demo-1", ProductName: "pince",
			Quantity: 1, Department: "production", Reason: "Réparation équipement",
			Date: d19, CreatedAt: now,
		},
		{
			ID: "demo-s3", ProductID: "demo-1", ProductName: "pince",
			Quantity: 1, Department: "qualite", Reason: "Autre",
			Date: d19, CreatedAt: now,
		},
		{
			ID: "demo-s4", ProductID: "demo-3", ProductName: "Cable.68",
			Quantity: 20, Department: "qualite", Reason: "Installation nouvelle",
			Date: d20, CreatedAt: now,
		},
	}
	for i := range demoExits {
		if err := exits.Create(&demoExits[i]); err != nil {
			return err
		}
	}
	return nil
}
