package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAttributeCatalog(t *testing.T) {
	ids := NewIDAllocator(NewRand(42))
	now := time.Now().UTC()

	attributes, values, index := BuildAttributeCatalog(ids, "tenant-1", now)

	require.Len(t, attributes, 5)
	assert.Equal(t, []string{AttrSize, AttrColor, AttrVoltage, AttrFlavor, AttrWeight}, index.Names())

	// 6 sizes + 9 colors + 3 voltages + 5 flavors + 5 weights.
	assert.Len(t, values, 28)

	byAttr := make(map[string]int)
	for _, v := range values {
		assert.Equal(t, "tenant-1", v.TenantID)
		byAttr[v.AttributeID]++
	}

	size, ok := index.Attribute(AttrSize)
	require.True(t, ok)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL", "XXL"}, size.Values())
	assert.Equal(t, 6, byAttr[size.ID])

	color, ok := index.Attribute(AttrColor)
	require.True(t, ok)
	assert.Equal(t, 9, byAttr[color.ID])

	id, ok := size.ValueID("M")
	require.True(t, ok)
	assert.NotEmpty(t, id)

	_, ok = size.ValueID("XXXL")
	assert.False(t, ok)
	_, ok = index.Attribute("Material")
	assert.False(t, ok)
}
