package service

import (
	"context"
	"errors"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/pkg/e"
	"safesignal/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=favorites.go -destination=mocks/mock_favorites.go
type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.FavoritePlace) error
	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*domain.FavoritePlace, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.FavoritePlace, error)
	Update(ctx context.Context, fav *domain.FavoritePlace) error
	Delete(ctx context.Context, id, deviceID uuid.UUID) error
}

type favoriteService struct {
	repo   FavoriteRepository
	logger *slog.Logger
}

func NewFavoriteService(repo FavoriteRepository, logger *slog.Logger) FavoriteService {
	return &favoriteService{repo: repo, logger: logger}
}

func (s *favoriteService) Create(ctx context.Context, req domain.CreateFavoriteRequest) (*domain.FavoritePlace, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Wrap("invalid favorite", e.ErrInvalidInput)
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return nil, e.ErrInvalidDeviceID
	}

	alertDistance := req.AlertDistanceM
	if alertDistance == 0 {
		alertDistance = domain.DefaultAlertDistanceMeters
	}
	enableAlerts := true
	if req.EnableSafetyAlerts != nil {
		enableAlerts = *req.EnableSafetyAlerts
	}

	fav := &domain.FavoritePlace{
		ID:                 uuid.New(),
		DeviceID:           deviceID,
		Name:               req.Name,
		Description:        req.Description,
		Lat:                req.Lat,
		Lng:                req.Lng,
		AlertDistanceM:     alertDistance,
		EnableSafetyAlerts: enableAlerts,
	}

	if err := s.repo.Create(ctx, fav); err != nil {
		return nil, err
	}

	s.logger.Info("favorite created",
		slog.String("id", fav.ID.String()),
		slog.String("name", fav.Name),
		slog.Float64("alert_distance_m", fav.AlertDistanceM),
	)

	return fav, nil
}

func (s *favoriteService) List(ctx context.Context, deviceID uuid.UUID) ([]*domain.FavoritePlace, error) {
	if deviceID == uuid.Nil {
		return nil, e.ErrInvalidDeviceID
	}
	return s.repo.ListByDevice(ctx, deviceID)
}

func (s *favoriteService) Get(ctx context.Context, id, deviceID uuid.UUID) (*domain.FavoritePlace, error) {
	fav, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// favorites are private to the device that created them
	if fav.DeviceID != deviceID {
		return nil, e.ErrNotFound
	}
	return fav, nil
}

func (s *favoriteService) Update(ctx context.Context, id, deviceID uuid.UUID, req domain.UpdateFavoriteRequest) (*domain.FavoritePlace, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Wrap("invalid favorite update", e.ErrInvalidInput)
	}

	fav, err := s.Get(ctx, id, deviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		fav.Name = *req.Name
	}
	if req.Description != nil {
		fav.Description = *req.Description
	}
	if req.Lat != nil {
		fav.Lat = *req.Lat
	}
	if req.Lng != nil {
		fav.Lng = *req.Lng
	}
	if req.AlertDistanceM != nil {
		fav.AlertDistanceM = *req.AlertDistanceM
	}
	if req.EnableSafetyAlerts != nil {
		fav.EnableSafetyAlerts = *req.EnableSafetyAlerts
	}

	if err := s.repo.Update(ctx, fav); err != nil {
		return nil, err
	}

	return fav, nil
}

func (s *favoriteService) Delete(ctx context.Context, id, deviceID uuid.UUID) error {
	err := s.repo.Delete(ctx, id, deviceID)
	if err != nil && !errors.Is(err, e.ErrNotFound) {
		s.logger.Error("favorite delete failed", slog.String("id", id.String()), slog.Any("error", err))
	}
	return err
}
