package usecase

import (
	"context"
	"fmt"

	"realestate-form-intake/internal/domain"
)

type healthUsecase struct {
	repo   domain.ContactRepository
	driver string
}

func NewHealthUsecase(repo domain.ContactRepository, driver string) domain.HealthUsecase {
	return &healthUsecase{repo: repo, driver: driver}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	status := map[string]string{
		"status": "ok",
		"store":  u.driver,
	}
	if err := u.repo.Ping(ctx); err != nil {
		status["status"] = "degraded"
		return status, fmt.Errorf("%s store unreachable: %w", u.driver, err)
	}
	return status, nil
}
