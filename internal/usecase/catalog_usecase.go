package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"garageonline/internal/domain/model"
	repo "garageonline/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は車両一覧・検索・詳細のロジック。
type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
}

// DI
func NewCatalogUsecase(catalogRepo repo.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo}
}

// GET /vehiclesの入力DTO
type ListVehiclesInput struct {
	Q string
}

type VehicleListOutput struct {
	Items []model.Vehicle
	Total int
}

// 一覧＋検索。qが空なら全件、一致なしは空（エラーにしない）。
func (u *CatalogUsecase) ListVehicles(ctx context.Context, in ListVehiclesInput) (VehicleListOutput, error) {
	if len(in.Q) > 100 {
		return VehicleListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, err := u.catalogRepo.Search(ctx, strings.TrimSpace(in.Q))
	if err != nil {
		return VehicleListOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	return VehicleListOutput{
		Items: items,
		Total: len(items),
	}, nil
}

func (u *CatalogUsecase) GetVehicleDetail(ctx context.Context, code int64) (model.Vehicle, error) {
	if code <= 0 {
		return model.Vehicle{}, NewHTTPError(http.StatusBadRequest, "invalid code")
	}

	v, err := u.catalogRepo.FindByCode(ctx, code)
	if err == repo.ErrNotFound {
		return model.Vehicle{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Vehicle{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	return v, nil
}
