package repository

import (
	"context"

	"garageonline/internal/domain/model"
)

// セッションIDごとのカート台帳の置き場。
type CartRepository interface {
	// カートの独立したコピーを返す（無ければ空カート）
	Snapshot(ctx context.Context, sessionID string) (model.Cart, error)
	// 追加（同一コードは数量加算）。追加後のコピーを返す。
	AddItem(ctx context.Context, sessionID string, v model.Vehicle, qty int64) (model.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}
