package repository

import (
	"context"
	"errors"

	"garageonline/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 取得済みカタログの読み取り口。取得そのものは infra/source が担う。
type CatalogRepository interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	FindByCode(ctx context.Context, code int64) (model.Vehicle, error)
	// brand/model/categoryの部分一致（大文字小文字を区別しない）
	Search(ctx context.Context, q string) ([]model.Vehicle, error)
}
