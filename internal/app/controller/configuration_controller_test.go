package controller

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want IDList
	}{
		{"scalar", `3`, IDList{3}},
		{"array", `[3, 7]`, IDList{3, 7}},
		{"empty array", `[]`, IDList{}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IDList
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var got IDList
	assert.Error(t, json.Unmarshal([]byte(`"three"`), &got))
}

func TestIDList_AbsentFieldStaysNil(t *testing.T) {
	var req configurationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":"1"}`), &req))

	assert.Nil(t, req.TextColorIDs)
	assert.Nil(t, req.BackgroundColorIDs)
	assert.Nil(t, req.ConfiguredImages)
	assert.Nil(t, req.ConfiguredShapes)
}

func TestIDList_PresentEmptyIsNotNil(t *testing.T) {
	var req configurationRequest
	payload := `{"product_id":"1","text_color_id":[],"configured_images":[]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.NotNil(t, req.TextColorIDs)
	assert.Empty(t, req.TextColorIDs)
	assert.NotNil(t, req.ConfiguredImages)
	assert.Empty(t, req.ConfiguredImages)
}

func TestPriceValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want PriceValue
	}{
		{"number", `5.5`, 5.5},
		{"integer", `3`, 3},
		{"string", `"5.0"`, 5},
		{"string with spaces", `" 2.5 "`, 2.5},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got PriceValue
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var got PriceValue
	assert.Error(t, json.Unmarshal([]byte(`"free"`), &got))
}

func TestConfigurationRequest_ToInput(t *testing.T) {
	payload := `{
		"product_id": "1234567890",
		"text_color_id": 3,
		"background_color_id": [9],
		"configured_images": [{"id": 7, "additional_price": "5.0"}]
	}`

	var req configurationRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	input := req.toInput()
	assert.Equal(t, []uint{3}, input.TextColorIDs)
	assert.Equal(t, []uint{9}, input.BackgroundColorIDs)
	require.Len(t, input.Images, 1)
	assert.Equal(t, uint(7), input.Images[0].ID)
	assert.Equal(t, 5.0, input.Images[0].AdditionalPrice)
	assert.Nil(t, input.Shapes)
}
