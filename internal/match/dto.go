// internal/match/dto.go
package match

// DTOs for API requests

type LikeRequest struct {
	TargetID int64   `json:"target_id" validate:"required"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url"`
	Comment  *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type CreateMatchRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}
