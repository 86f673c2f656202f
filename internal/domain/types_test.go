package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray{"S", "M"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["S","M"]`, v)

	// nil 落库成空数组，不是 NULL
	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(`["S","M"]`))
	assert.Equal(t, StringArray{"S", "M"}, a)

	require.NoError(t, a.Scan([]byte(`["L"]`)))
	assert.Equal(t, StringArray{"L"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Equal(t, StringArray{}, a)

	assert.Error(t, a.Scan(42))
	assert.Error(t, a.Scan("not json"))
}
