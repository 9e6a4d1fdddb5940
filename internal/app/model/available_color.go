package model

import (
	"regexp"
	"time"
)

// hexPattern matches a 6-digit CSS hex color such as "#1A2B3C".
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// AvailableColor is a catalog color. The same catalog serves both the text
// color and the background color link tables.
type AvailableColor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ColorName string    `gorm:"not null" json:"color_name"`
	HexValue  string    `gorm:"size:7;not null;uniqueIndex" json:"hex_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AvailableColor) TableName() string {
	return "available_colors"
}

// ValidHex reports whether s is a well-formed 6-digit hex color.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}
