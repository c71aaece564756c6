package repository

import (
	"context"
	"sync"

	"menu-qr/models"
)

// MemoryRepository keeps rows in process; nothing survives a restart.
type MemoryRepository struct {
	mu     sync.Mutex
	rows   []models.MenuEntry
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) EnsureSchema(ctx context.Context) error { return nil }

func (r *MemoryRepository) ListAll(ctx context.Context) ([]models.MenuEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MenuEntry, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, dish, price string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.rows = append(r.rows, models.MenuEntry{ID: id, Dish: dish, Price: price})
	return id, nil
}

func (r *MemoryRepository) DeleteByDish(ctx context.Context, dish string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	var n int64
	for _, e := range r.rows {
		if e.Dish == dish {
			n++
			continue
		}
		kept = append(kept, e)
	}
	r.rows = kept
	return n, nil
}

func (r *MemoryRepository) Close() error { return nil }
