package mpa

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListRatings(context context.Context) ([]*MPA, error) {
	return service.repo.ListRatings(context)
}

func (service *Service) GetRating(context context.Context, id int64) (*MPA, error) {
	return service.repo.GetRatingByID(context, id)
}
