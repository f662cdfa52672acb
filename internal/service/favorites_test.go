package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safesignal/internal/domain"
	"safesignal/internal/service"
	mock_service "safesignal/internal/service/mocks"
	"safesignal/pkg/e"
)

func TestFavoriteService_Create_DefaultsAlertDistance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	deviceID := uuid.New()
	req := domain.CreateFavoriteRequest{
		DeviceID: deviceID.String(),
		Name:     "Home",
		Lat:      40.7128,
		Lng:      -74.0060,
		// AlertDistanceM left unset
	}

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fav *domain.FavoritePlace) error {
			if fav.AlertDistanceM != domain.DefaultAlertDistanceMeters {
				t.Fatalf("expected default alert distance, got %f", fav.AlertDistanceM)
			}
			if !fav.EnableSafetyAlerts {
				t.Fatalf("expected safety alerts enabled by default")
			}
			return nil
		}).
		Times(1)

	fav, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fav.DeviceID != deviceID {
		t.Fatalf("device id mismatch")
	}
}

func TestFavoriteService_Create_KeepsExplicitDistance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	disabled := false
	req := domain.CreateFavoriteRequest{
		DeviceID:           uuid.New().String(),
		Name:               "Work",
		Lat:                40.7484,
		Lng:                -73.9857,
		AlertDistanceM:     500,
		EnableSafetyAlerts: &disabled,
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	fav, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fav.AlertDistanceM != 500 {
		t.Fatalf("expected 500m alert distance, got %f", fav.AlertDistanceM)
	}
	if fav.EnableSafetyAlerts {
		t.Fatalf("expected safety alerts disabled")
	}
}

func TestFavoriteService_Create_EquatorAccepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	// Quito sits almost exactly on the equator.
	req := domain.CreateFavoriteRequest{
		DeviceID: uuid.New().String(),
		Name:     "Abuela's house",
		Lat:      0,
		Lng:      -78.4678,
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	fav, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fav.Lat != 0 {
		t.Fatalf("latitude changed: %f", fav.Lat)
	}
}

func TestFavoriteService_Create_InvalidInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	req := domain.CreateFavoriteRequest{
		DeviceID: uuid.New().String(),
		// Name missing
		Lat: 40.7128,
		Lng: -74.0060,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFavoriteService_Get_OtherDeviceSeesNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	owner := uuid.New()
	stranger := uuid.New()
	favID := uuid.New()

	repo.EXPECT().
		Get(gomock.Any(), favID).
		Return(&domain.FavoritePlace{ID: favID, DeviceID: owner, Name: "Home"}, nil).
		Times(1)

	_, err := svc.Get(context.Background(), favID, stranger)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another device, got %v", err)
	}
}

func TestFavoriteService_Update_MergesFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	deviceID := uuid.New()
	favID := uuid.New()
	existing := &domain.FavoritePlace{
		ID:                 favID,
		DeviceID:           deviceID,
		Name:               "Home",
		Lat:                40.7128,
		Lng:                -74.0060,
		AlertDistanceM:     domain.DefaultAlertDistanceMeters,
		EnableSafetyAlerts: true,
	}

	repo.EXPECT().Get(gomock.Any(), favID).Return(existing, nil).Times(1)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fav *domain.FavoritePlace) error {
			if fav.Name != "New home" {
				t.Fatalf("name not updated: %q", fav.Name)
			}
			if fav.AlertDistanceM != 800 {
				t.Fatalf("alert distance not updated: %f", fav.AlertDistanceM)
			}
			if fav.Lat != 40.7128 {
				t.Fatalf("lat should be untouched")
			}
			return nil
		}).
		Times(1)

	name := "New home"
	dist := 800.0
	got, err := svc.Update(context.Background(), favID, deviceID, domain.UpdateFavoriteRequest{
		Name:           &name,
		AlertDistanceM: &dist,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "New home" {
		t.Fatalf("unexpected name %q", got.Name)
	}
}

func TestFavoriteService_Delete_Propagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	favID := uuid.New()
	deviceID := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), favID, deviceID).Return(e.ErrNotFound).Times(1)

	if err := svc.Delete(context.Background(), favID, deviceID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoriteService_List_NilDevice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockFavoriteRepository(ctrl)
	svc := service.NewFavoriteService(repo, testLogger())

	if _, err := svc.List(context.Background(), uuid.Nil); !errors.Is(err, e.ErrInvalidDeviceID) {
		t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
	}
}
