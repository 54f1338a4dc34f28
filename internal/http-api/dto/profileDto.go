package dto

import (
	"time"

	"profilehub/internal/http-api/models"
)

// CreateProfileDTO for creating a profile
type CreateProfileDTO struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Age      int    `json:"age" binding:"required,gte=0,lte=150"`
	ImageURL string `json:"imageUrl" binding:"required,url"`
	Gender   string `json:"gender" binding:"required"`
}

// ProfileResponse for returning profile information
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	ImageURL  string    `json:"imageUrl"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToProfileResponse converts a Profile model to ProfileResponse DTO
func FromModelToProfileResponse(profile *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        profile.ID,
		Username:  profile.Username,
		Name:      profile.Name,
		Age:       profile.Age,
		ImageURL:  profile.ImageURL,
		Gender:    profile.Gender,
		CreatedAt: profile.CreatedAt,
	}
}
