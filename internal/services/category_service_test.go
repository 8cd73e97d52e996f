package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Embedded(t *testing.T) {
	svc, err := NewCategoryService()
	require.NoError(t, err)

	all := svc.List()
	assert.Len(t, all, 15)

	c, ok := svc.Find(" beach ")
	require.True(t, ok)
	assert.Equal(t, "Beach", c.Label)
	assert.NotEmpty(t, c.Icon)

	_, ok = svc.Find("")
	assert.False(t, ok)

	all[0].Label = "mutated"
	assert.NotEqual(t, "mutated", svc.List()[0].Label)
}

func TestParseCategories_Rejects(t *testing.T) {
	_, err := ParseCategories([]byte("- label: A\n- label: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseCategories([]byte("- icon: x\n"))
	assert.ErrorContains(t, err, "without label")

	_, err = ParseCategories([]byte("{not a list"))
	assert.Error(t, err)
}
