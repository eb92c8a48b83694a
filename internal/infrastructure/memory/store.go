// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en tests y como backend efímero para desarrollo local sin
// PostgreSQL.
package memory

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
)

// Store guarda todo el estado en memoria. Un mutex grueso alcanza: el
// paquete existe para tests, no para servir tráfico concurrente.
type Store struct {
	mu sync.Mutex

	ingredients map[int64]*entity.Ingredient
	recipes     map[int64]*entity.Recipe
	recipeItems []entity.RecipeItem
	batchLog    []*entity.BatchRecord
	movements   []*entity.StockMovement

	nextIngredientID int64
	nextRecipeID     int64
	nextBatchID      int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		ingredients:      make(map[int64]*entity.Ingredient),
		recipes:          make(map[int64]*entity.Recipe),
		nextIngredientID: 1,
		nextRecipeID:     1,
		nextBatchID:      1,
	}
}

// snapshot copia el estado completo, para rollback en el TxRunner.
func (s *Store) snapshot() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := &Store{
		ingredients:      make(map[int64]*entity.Ingredient, len(s.ingredients)),
		recipes:          make(map[int64]*entity.Recipe, len(s.recipes)),
		recipeItems:      append([]entity.RecipeItem(nil), s.recipeItems...),
		batchLog:         append([]*entity.BatchRecord(nil), s.batchLog...),
		movements:        append([]*entity.StockMovement(nil), s.movements...),
		nextIngredientID: s.nextIngredientID,
		nextRecipeID:     s.nextRecipeID,
		nextBatchID:      s.nextBatchID,
	}
	for id, ing := range s.ingredients {
		c := *ing
		cp.ingredients[id] = &c
	}
	for id, rec := range s.recipes {
		c := *rec
		cp.recipes[id] = &c
	}
	return cp
}

// restore repone el estado desde una copia previa.
func (s *Store) restore(cp *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ingredients = cp.ingredients
	s.recipes = cp.recipes
	s.recipeItems = cp.recipeItems
	s.batchLog = cp.batchLog
	s.movements = cp.movements
	s.nextIngredientID = cp.nextIngredientID
	s.nextRecipeID = cp.nextRecipeID
	s.nextBatchID = cp.nextBatchID
}

// ── IngredientRepository ──────────────────────────────────────────────────────

// IngredientRepo implementa repository.IngredientRepository sobre el Store.
type IngredientRepo struct {
	s *Store
}

// NewIngredientRepository construye el adaptador en memoria.
func NewIngredientRepository(s *Store) *IngredientRepo {
	return &IngredientRepo{s: s}
}

func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.ingredients {
		if existing.Name == ing.Name {
			return domain.ErrDuplicateName
		}
	}
	ing.ID = r.s.nextIngredientID
	r.s.nextIngredientID++
	c := *ing
	r.s.ingredients[ing.ID] = &c
	return nil
}

func (r *IngredientRepo) GetByID(id int64) (*entity.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ing, ok := r.s.ingredients[id]
	if !ok {
		return nil, nil
	}
	c := *ing
	return &c, nil
}

func (r *IngredientRepo) List() ([]*entity.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]*entity.Ingredient, 0, len(r.s.ingredients))
	for _, ing := range r.s.ingredients {
		c := *ing
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *IngredientRepo) UpdateCost(id int64, cost decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ing, ok := r.s.ingredients[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.UnitCost = cost
	return nil
}

func (r *IngredientRepo) AdjustStock(id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ing, ok := r.s.ingredients[id]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	newQty := ing.OnHandQty.Add(delta)
	if newQty.IsNegative() {
		newQty = decimal.Zero
	}
	ing.OnHandQty = newQty
	return newQty, nil
}

func (r *IngredientRepo) GetForUpdate(id int64) (*entity.Ingredient, error) {
	return r.GetByID(id)
}

func (r *IngredientRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ingredients[id]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.recipeItems {
		if it.IngredientID == id {
			return domain.ErrIngredientInUse
		}
	}
	delete(r.s.ingredients, id)
	return nil
}

// ── RecipeRepository ──────────────────────────────────────────────────────────

// RecipeRepo implementa repository.RecipeRepository sobre el Store.
type RecipeRepo struct {
	s *Store
}

// NewRecipeRepository construye el adaptador en memoria.
func NewRecipeRepository(s *Store) *RecipeRepo {
	return &RecipeRepo{s: s}
}

func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.recipes {
		if existing.Name == recipe.Name {
			return domain.ErrDuplicateName
		}
	}
	recipe.ID = r.s.nextRecipeID
	r.s.nextRecipeID++
	c := *recipe
	r.s.recipes[recipe.ID] = &c
	return nil
}

func (r *RecipeRepo) GetByID(id int64) (*entity.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, nil
	}
	c := *rec
	return &c, nil
}

func (r *RecipeRepo) GetComposition(recipeID int64) ([]entity.RecipeItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []entity.RecipeItem
	for _, it := range r.s.recipeItems {
		if it.RecipeID == recipeID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].IngredientID < items[j].IngredientID })
	return items, nil
}

func (r *RecipeRepo) AddItem(item *entity.RecipeItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range r.s.recipeItems {
		if it.RecipeID == item.RecipeID && it.IngredientID == item.IngredientID {
			return domain.ErrDuplicateName
		}
	}
	r.s.recipeItems = append(r.s.recipeItems, *item)
	return nil
}

func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]*entity.Recipe, 0, len(r.s.recipes))
	for _, rec := range r.s.recipes {
		c := *rec
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *RecipeRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.recipes, id)
	kept := r.s.recipeItems[:0]
	for _, it := range r.s.recipeItems {
		if it.RecipeID != id {
			kept = append(kept, it)
		}
	}
	r.s.recipeItems = kept
	return nil
}

// ── BatchLogRepository ────────────────────────────────────────────────────────

// BatchLogRepo implementa repository.BatchLogRepository sobre el Store.
type BatchLogRepo struct {
	s *Store
}

// NewBatchLogRepository construye el adaptador en memoria.
func NewBatchLogRepository(s *Store) *BatchLogRepo {
	return &BatchLogRepo{s: s}
}

func (r *BatchLogRepo) Append(rec *entity.BatchRecord) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec.ID = r.s.nextBatchID
	r.s.nextBatchID++
	c := *rec
	r.s.batchLog = append(r.s.batchLog, &c)
	return rec.ID, nil
}

func (r *BatchLogRepo) List() ([]*entity.BatchRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]*entity.BatchRecord, 0, len(r.s.batchLog))
	for i := len(r.s.batchLog) - 1; i >= 0; i-- {
		c := *r.s.batchLog[i]
		list = append(list, &c)
	}
	return list, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

// StockMovementRepo implementa repository.StockMovementRepository sobre el Store.
type StockMovementRepo struct {
	s *Store
}

// NewStockMovementRepository construye el adaptador en memoria.
func NewStockMovementRepository(s *Store) *StockMovementRepo {
	return &StockMovementRepo{s: s}
}

func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *mov
	r.s.movements = append(r.s.movements, &c)
	return nil
}

func (r *StockMovementRepo) ListByIngredient(ingredientID int64, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var all []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].IngredientID == ingredientID {
			c := *r.s.movements[i]
			all = append(all, &c)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
