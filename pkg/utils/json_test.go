package utils

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Price      FlexString `json:"price"`
		SalesCount FlexString `json:"salesCount"`
		AdSpend    FlexString `json:"adSpend"`
	}

	err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(
		[]byte(`{"price": 3999, "salesCount": "4", "adSpend": null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, "3999", payload.Price.String())
	assert.Equal(t, "4", payload.SalesCount.String())
	assert.Equal(t, "", payload.AdSpend.String())
}
