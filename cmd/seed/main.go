// seed crea el esquema y puebla la base con el inventario y las recetas de
// arranque de la cervecería. Es idempotente: si ya hay ingredientes no hace
// nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
	"github.com/jhoicas/brewme-api/internal/infrastructure/postgres"
	"github.com/jhoicas/brewme-api/pkg/config"
	"github.com/jhoicas/brewme-api/pkg/logger"
)

type seedIngredient struct {
	name     string
	category string
	cost     string
	detail   string // SRM o alfa-ácido según categoría
	unit     string
}

// Fermentables y lúpulos arrancan con 10 unidades; el resto con 20.
var seedIngredients = []seedIngredient{
	{"Pilsner Malt", entity.CategoryFermentable, "1.00", "2.0", "lb"},
	{"Pale Malt", entity.CategoryFermentable, "1.10", "4.0", "lb"},
	{"Munich Malt", entity.CategoryFermentable, "1.20", "10.0", "lb"},
	{"Crystal Malt 40L", entity.CategoryFermentable, "1.30", "40.0", "lb"},
	{"Chocolate Malt", entity.CategoryFermentable, "1.50", "350.0", "lb"},
	{"Pumpkin Puree", entity.CategoryFermentable, "0.75", "0.0", "lb"},
	{"Oats", entity.CategoryFermentable, "0.90", "1.0", "lb"},
	{"Wheat Malt", entity.CategoryFermentable, "1.15", "2.5", "lb"},
	{"Flaked Barley", entity.CategoryFermentable, "0.95", "1.0", "lb"},
	{"Lactose", entity.CategoryFermentable, "1.80", "0.0", "lb"},

	{"Saaz Hops", entity.CategoryHop, "0.50", "3.0", "oz"},
	{"Magnum Hops", entity.CategoryHop, "0.45", "12.0", "oz"},
	{"Cascade Hops", entity.CategoryHop, "0.40", "5.5", "oz"},
	{"Centennial Hops", entity.CategoryHop, "0.55", "10.0", "oz"},
	{"Citra Hops", entity.CategoryHop, "0.60", "12.0", "oz"},
	{"Willamette Hops", entity.CategoryHop, "0.48", "5.0", "oz"},
	{"Coriander", entity.CategoryHop, "0.30", "0.0", "oz"},
	{"Orange Peel", entity.CategoryHop, "0.35", "0.0", "oz"},

	{"Lager Yeast", entity.CategoryOther, "5.50", "0.0", "packet"},
	{"Ale Yeast", entity.CategoryOther, "5.00", "0.0", "packet"},
	{"Belgian Yeast", entity.CategoryOther, "6.00", "0.0", "packet"},
	{"Coffee Beans", entity.CategoryOther, "0.15", "0.0", "oz"},
	{"Pumpkin Spice Blend", entity.CategoryOther, "0.10", "0.0", "oz"},
	{"Mango Puree", entity.CategoryOther, "12.00", "0.0", "gal"},
}

type seedRecipe struct {
	name  string
	items map[string]string // nombre de ingrediente -> cantidad
}

// Carta inicial: lotes de 15 BBL.
var seedRecipes = []seedRecipe{
	{"Bohemian Pilsner", map[string]string{
		"Pilsner Malt": "600", "Saaz Hops": "15", "Lager Yeast": "4",
	}},
	{"American Lager", map[string]string{
		"Pale Malt": "550", "Magnum Hops": "5", "Cascade Hops": "8", "Lager Yeast": "4",
	}},
	{"Imperial Pumpkin Ale", map[string]string{
		"Pale Malt": "800", "Munich Malt": "120", "Pumpkin Puree": "25",
		"Magnum Hops": "10", "Willamette Hops": "15", "Lactose": "30",
		"Pumpkin Spice Blend": "5", "Ale Yeast": "4",
	}},
	{"IPA", map[string]string{
		"Pale Malt": "750", "Crystal Malt 40L": "40", "Magnum Hops": "8",
		"Centennial Hops": "30", "Citra Hops": "20", "Ale Yeast": "4",
	}},
	{"Belgian Witbier", map[string]string{
		"Wheat Malt": "400", "Pale Malt": "250", "Coriander": "3",
		"Orange Peel": "3", "Magnum Hops": "3", "Belgian Yeast": "4",
	}},
	{"Imperial Stout-Nitro", map[string]string{
		"Pale Malt": "1000", "Chocolate Malt": "150", "Flaked Barley": "75",
		"Magnum Hops": "15", "Ale Yeast": "5",
	}},
	{"Coffee Stout-Nitro", map[string]string{
		"Pale Malt": "700", "Oats": "70", "Chocolate Malt": "100",
		"Lactose": "20", "Magnum Hops": "6", "Coffee Beans": "10", "Ale Yeast": "4",
	}},
	{"Oktoberfest", map[string]string{
		"Munich Malt": "750", "Pilsner Malt": "150", "Magnum Hops": "8",
		"Saaz Hops": "5", "Lager Yeast": "4",
	}},
	{"Mango Wheat", map[string]string{
		"Wheat Malt": "400", "Pale Malt": "300", "Citra Hops": "12",
		"Mango Puree": "1.5", "Ale Yeast": "4",
	}},
	{"Bomb Pop Blonde", map[string]string{
		"Pale Malt": "650", "Wheat Malt": "70", "Cascade Hops": "10", "Ale Yeast": "3",
	}},
	{"Schwarzbier (Coming Soon)", map[string]string{
		"Pilsner Malt": "450", "Munich Malt": "200", "Chocolate Malt": "50",
		"Magnum Hops": "7", "Lager Yeast": "4",
	}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	ingredientRepo := postgres.NewIngredientRepository(pool)
	existing, err := ingredientRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("leer inventario")
	}
	if len(existing) > 0 {
		log.Info().Int("ingredientes", len(existing)).Msg("la base ya tiene datos, no se siembra")
		return
	}

	baseVolume := decimal.NewFromInt(15)
	qtyStandard := decimal.NewFromInt(10)
	qtyOther := decimal.NewFromInt(20)

	txRunner := postgres.NewTxRunner(pool)
	err = txRunner.Run(ctx, func(
		ingRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		_ repository.BatchLogRepository,
		_ repository.StockMovementRepository,
	) error {
		now := time.Now()

		// 1. Ingredientes
		idByName := make(map[string]int64, len(seedIngredients))
		costByName := make(map[string]decimal.Decimal, len(seedIngredients))
		for _, s := range seedIngredients {
			qty := qtyStandard
			if s.category == entity.CategoryOther {
				qty = qtyOther
			}
			ing := &entity.Ingredient{
				Name:      s.name,
				Category:  s.category,
				UnitCost:  decimal.RequireFromString(s.cost),
				Detail:    decimal.RequireFromString(s.detail),
				Unit:      s.unit,
				OnHandQty: qty,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := ingRepo.Create(ing); err != nil {
				return err
			}
			idByName[s.name] = ing.ID
			costByName[s.name] = ing.UnitCost
		}

		// 2. Recetas con costo base a costos de siembra
		for _, s := range seedRecipes {
			baseCost := decimal.Zero
			for name, qtyStr := range s.items {
				baseCost = baseCost.Add(decimal.RequireFromString(qtyStr).Mul(costByName[name]))
			}
			recipe := &entity.Recipe{
				Name:       s.name,
				BaseVolume: baseVolume,
				BaseCost:   baseCost,
				CreatedAt:  now,
			}
			if err := recipeRepo.Create(recipe); err != nil {
				return err
			}
			for name, qtyStr := range s.items {
				item := &entity.RecipeItem{
					RecipeID:     recipe.ID,
					IngredientID: idByName[name],
					Quantity:     decimal.RequireFromString(qtyStr),
				}
				if err := recipeRepo.AddItem(item); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos")
	}

	log.Info().
		Int("ingredientes", len(seedIngredients)).
		Int("recetas", len(seedRecipes)).
		Msg("siembra completada")
}
