package model

import "time"

// ShapeSize is a catalog sign shape. Image is the background SVG URL and may
// be null for shapes whose artwork has not been uploaded yet; such shapes are
// selectable in the admin but cannot be rendered. Width and Height are
// physical dimensions used for display only.
type ShapeSize struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ShapeName string    `gorm:"not null" json:"shape_name"`
	Image     *string   `json:"image"`
	Width     *float64  `json:"width"`
	Height    *float64  `json:"height"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShapeSize) TableName() string {
	return "shapes_sizes"
}
