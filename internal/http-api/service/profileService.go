package service

import (
	"context"
	"errors"

	"profilehub/internal/http-api/dto"
	"profilehub/internal/http-api/models"
	"profilehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, in dto.CreateProfileDTO) (*dto.ProfileResponse, error)
	GetProfileByID(ctx context.Context, id string) (*dto.ProfileResponse, error)
	GetPaginatedProfiles(ctx context.Context, limit, offset int) ([]dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// CreateProfile creates a new profile and returns it with its generated ID
func (s *profileService) CreateProfile(ctx context.Context, in dto.CreateProfileDTO) (*dto.ProfileResponse, error) {
	profile := &models.Profile{
		Username: in.Username,
		Name:     in.Name,
		Age:      in.Age,
		ImageURL: in.ImageURL,
		Gender:   in.Gender,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return dto.FromModelToProfileResponse(profile), nil
}

// GetProfileByID retrieves a single profile
func (s *profileService) GetProfileByID(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return dto.FromModelToProfileResponse(profile), nil
}

// GetPaginatedProfiles retrieves profiles in insertion order
func (s *profileService) GetPaginatedProfiles(ctx context.Context, limit, offset int) ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.GetPaginated(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, *dto.FromModelToProfileResponse(&profile))
	}
	return responses, nil
}
