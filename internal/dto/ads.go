package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

type AdResponseDTO struct {
	ID              int64  `json:"id" example:"1"`
	Title           string `json:"title" example:"Summer sale"`
	Type            string `json:"type" example:"video"`
	Category        string `json:"category" example:"shopping"`
	DurationSeconds int    `json:"duration_seconds" example:"30"`
	Reward          string `json:"reward" example:"5.00"`
	NetworkCode     string `json:"network_code" example:"adsterra_video_001"`
	IsActive        bool   `json:"is_active" example:"true"`
}

func NewAdResponse(ad *domain.Ad) AdResponseDTO {
	return AdResponseDTO{
		ID:              ad.ID,
		Title:           ad.Title,
		Type:            string(ad.Type),
		Category:        ad.Category,
		DurationSeconds: ad.DurationSeconds,
		Reward:          Money(ad.Reward),
		NetworkCode:     ad.NetworkCode,
		IsActive:        ad.IsActive,
	}
}

func NewAdsResponse(ads []domain.Ad) []AdResponseDTO {
	resp := make([]AdResponseDTO, len(ads))
	for i := range ads {
		resp[i] = NewAdResponse(&ads[i])
	}
	return resp
}

type CreateAdRequestDTO struct {
	Title           string          `json:"title" validate:"required,max=200" example:"Summer sale"`
	Type            string          `json:"type" validate:"required,oneof=video banner interactive" example:"video"`
	Category        string          `json:"category" validate:"max=100" example:"shopping"`
	DurationSeconds int             `json:"duration_seconds" validate:"required,gt=0" example:"30"`
	Reward          decimal.Decimal `json:"reward" swaggertype:"string" example:"5.00"`
	NetworkCode     string          `json:"network_code" validate:"max=100" example:"adsterra_video_001"`
	IsActive        *bool           `json:"is_active" example:"true"`
}

func (r *CreateAdRequestDTO) ToDomain() *domain.Ad {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Ad{
		Title:           r.Title,
		Type:            domain.AdType(r.Type),
		Category:        r.Category,
		DurationSeconds: r.DurationSeconds,
		Reward:          r.Reward,
		NetworkCode:     r.NetworkCode,
		IsActive:        active,
	}
}

// UpdateAdRequestDTO is a partial update: nil fields keep their value.
type UpdateAdRequestDTO struct {
	Title           *string          `json:"title" validate:"omitempty,max=200"`
	Type            *string          `json:"type" validate:"omitempty,oneof=video banner interactive"`
	Category        *string          `json:"category" validate:"omitempty,max=100"`
	DurationSeconds *int             `json:"duration_seconds" validate:"omitempty,gt=0"`
	Reward          *decimal.Decimal `json:"reward" swaggertype:"string"`
	NetworkCode     *string          `json:"network_code" validate:"omitempty,max=100"`
	IsActive        *bool            `json:"is_active"`
}

func (r *UpdateAdRequestDTO) Apply(ad *domain.Ad) {
	if r.Title != nil {
		ad.Title = *r.Title
	}
	if r.Type != nil {
		ad.Type = domain.AdType(*r.Type)
	}
	if r.Category != nil {
		ad.Category = *r.Category
	}
	if r.DurationSeconds != nil {
		ad.DurationSeconds = *r.DurationSeconds
	}
	if r.Reward != nil {
		ad.Reward = *r.Reward
	}
	if r.NetworkCode != nil {
		ad.NetworkCode = *r.NetworkCode
	}
	if r.IsActive != nil {
		ad.IsActive = *r.IsActive
	}
}

type ViewResponseDTO struct {
	ID              int64      `json:"id" example:"42"`
	AdID            int64      `json:"ad_id" example:"1"`
	Reward          string     `json:"reward" example:"5.00"`
	DurationSeconds int        `json:"duration_seconds" example:"30"`
	Completed       bool       `json:"completed" example:"false"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-05-03T10:15:00Z"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" example:"2024-05-03T10:15:31Z"`
}

func NewViewResponse(v *domain.AdView) ViewResponseDTO {
	return ViewResponseDTO{
		ID:              v.ID,
		AdID:            v.AdID,
		Reward:          Money(v.Reward),
		DurationSeconds: v.DurationSeconds,
		Completed:       v.Completed,
		CreatedAt:       v.CreatedAt,
		CompletedAt:     v.CompletedAt,
	}
}

func NewViewsResponse(views []domain.AdView) []ViewResponseDTO {
	resp := make([]ViewResponseDTO, len(views))
	for i := range views {
		resp[i] = NewViewResponse(&views[i])
	}
	return resp
}
