package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProductID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Bare id", "8421716312345", "8421716312345"},
		{"Composite GID", "gid://shopify/Product/8421716312345", "8421716312345"},
		{"Whitespace trimmed", "  8421716312345 ", "8421716312345"},
		{"Trailing slash left as-is", "gid://shopify/Product/", "gid://shopify/Product/"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProductID(tt.input))
		})
	}
}
