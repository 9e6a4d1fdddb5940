package model

import "time"

// Link tables bind a Shopify product (by its opaque string id) to catalog
// options. Each carries a composite unique index so the database, not just
// the application-level existence check, rejects duplicate
// (product, option) pairs under concurrent writes.

// ProductImage links a product to a selectable overlay image. The price delta
// belongs to the link: the same image can cost different amounts on different
// products.
type ProductImage struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ProductID       string    `gorm:"index;not null;uniqueIndex:idx_product_image" json:"product_id"`
	ImageID         uint      `gorm:"not null;uniqueIndex:idx_product_image" json:"image_id"`
	AdditionalPrice float64   `gorm:"default:0" json:"additional_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Image SignageImage `gorm:"foreignKey:ImageID" json:"image"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

// ProductTextColor links a product to a text color from the shared color
// catalog.
type ProductTextColor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID string    `gorm:"index;not null;uniqueIndex:idx_product_text_color" json:"product_id"`
	ColorID   uint      `gorm:"not null;uniqueIndex:idx_product_text_color" json:"color_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Color AvailableColor `gorm:"foreignKey:ColorID" json:"color"`
}

func (ProductTextColor) TableName() string {
	return "product_text_colors"
}

// ProductBackgroundColor links a product to a background color. It shares the
// color catalog with ProductTextColor but is a distinct relation.
type ProductBackgroundColor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID string    `gorm:"index;not null;uniqueIndex:idx_product_bg_color" json:"product_id"`
	ColorID   uint      `gorm:"not null;uniqueIndex:idx_product_bg_color" json:"color_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Color AvailableColor `gorm:"foreignKey:ColorID" json:"color"`
}

func (ProductBackgroundColor) TableName() string {
	return "product_background_colors"
}

// ProductShape links a product to a sign shape, with a per-link price delta.
type ProductShape struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ProductID       string    `gorm:"index;not null;uniqueIndex:idx_product_shape" json:"product_id"`
	ShapeID         uint      `gorm:"not null;uniqueIndex:idx_product_shape" json:"shape_id"`
	AdditionalPrice float64   `gorm:"default:0" json:"additional_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Shape ShapeSize `gorm:"foreignKey:ShapeID" json:"shape"`
}

func (ProductShape) TableName() string {
	return "product_shapes"
}
