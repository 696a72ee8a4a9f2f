package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	desc := "with extra cheese"
	item, err := NewMenuItem("  Beshbarmak  ", &desc, 12.50, " Mains ", 25)
	require.NoError(t, err)
	assert.Equal(t, "Beshbarmak", item.Name)
	assert.Equal(t, "Mains", item.Category)
	assert.Equal(t, 25, item.PreparationTimeMinutes)
}

func TestNewMenuItemValidation(t *testing.T) {
	cases := []struct {
		name     string
		itemName string
		price    float64
		category string
		prepTime int
	}{
		{"empty name", "", 10, "Mains", 10},
		{"name too long", strings.Repeat("x", 101), 10, "Mains", 10},
		{"empty category", "Plov", 10, "", 10},
		{"zero price", "Plov", 0, "Mains", 10},
		{"negative price", "Plov", -1, "Mains", 10},
		{"zero prep time", "Plov", 10, "Mains", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMenuItem(tc.itemName, nil, tc.price, tc.category, tc.prepTime)
			assert.Error(t, err)
		})
	}
}
