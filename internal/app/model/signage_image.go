package model

import "time"

// SignageImage is a selectable overlay image (icon or symbol), stored as an
// SVG or raster asset at a known URL.
type SignageImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	ImageName *string   `json:"image_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SignageImage) TableName() string {
	return "signage_images"
}
