package repository

import (
	"context"
	"strings"

	"garageonline/internal/domain/model"
	repo "garageonline/internal/repository"
)

// CatalogMemoryRepository は取得済みカタログをメモリに保持する読み取り専用ストア。
// カタログが取得できなかった場合は空のまま動く（検索は空、コード検索は常にNotFound）。
type CatalogMemoryRepository struct {
	vehicles []model.Vehicle
	byCode   map[int64]model.Vehicle
}

// DI
func NewCatalogMemoryRepository(vehicles []model.Vehicle) *CatalogMemoryRepository {
	byCode := make(map[int64]model.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byCode[v.Code] = v
	}
	return &CatalogMemoryRepository{vehicles: vehicles, byCode: byCode}
}

func (r *CatalogMemoryRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

func (r *CatalogMemoryRepository) FindByCode(ctx context.Context, code int64) (model.Vehicle, error) {
	v, ok := r.byCode[code]
	if !ok {
		return model.Vehicle{}, repo.ErrNotFound
	}
	return v, nil
}

// 部分一致検索。元データは変更しない。
func (r *CatalogMemoryRepository) Search(ctx context.Context, q string) ([]model.Vehicle, error) {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return r.List(ctx)
	}

	out := make([]model.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		if strings.Contains(strings.ToLower(v.Brand), term) ||
			strings.Contains(strings.ToLower(v.Model), term) ||
			strings.Contains(strings.ToLower(v.Category), term) {
			out = append(out, v)
		}
	}
	return out, nil
}
