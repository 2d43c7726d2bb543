package repository

import (
	"context"
	"sync"

	"garageonline/internal/domain/model"
)

// CartMemoryRepository はセッションIDごとのカートをメモリに保持する。
// プロセス内限定で、再起動すると消える。
type CartMemoryRepository struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
}

func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{carts: make(map[string]*model.Cart)}
}

// 無ければ空カートを作る。呼び出し側でロックを取ること。
func (r *CartMemoryRepository) getOrCreate(sessionID string) *model.Cart {
	c, ok := r.carts[sessionID]
	if !ok {
		c = &model.Cart{}
		r.carts[sessionID] = c
	}
	return c
}

func (r *CartMemoryRepository) Snapshot(ctx context.Context, sessionID string) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getOrCreate(sessionID).Snapshot(), nil
}

func (r *CartMemoryRepository) AddItem(ctx context.Context, sessionID string, v model.Vehicle, qty int64) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.getOrCreate(sessionID)
	if err := c.AddItem(v, qty); err != nil {
		return model.Cart{}, err
	}
	return c.Snapshot(), nil
}

func (r *CartMemoryRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.getOrCreate(sessionID).Clear()
	return nil
}
