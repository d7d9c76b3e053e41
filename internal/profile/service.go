// internal/profile/service.go

package profile

import (
	"context"
	"errors"
)

var ErrProfileNotFound = errors.New("profile not found")

type Service interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error)
	// UpdateLocation stores the coordinate pair and reports whether anything
	// changed; an identical location is acknowledged without a write.
	UpdateLocation(ctx context.Context, userID int64, lat, lon float64) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error) {
	return s.repo.Update(ctx, userID, req)
}

func (s *service) UpdateLocation(ctx context.Context, userID int64, lat, lon float64) (bool, error) {
	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	if current.HasLocation() && *current.Latitude == lat && *current.Longitude == lon {
		return false, nil
	}

	if err := s.repo.UpdateLocation(ctx, userID, lat, lon); err != nil {
		return false, err
	}
	return true, nil
}
