//go:build !integration

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPayloadsSerializeAsEmptyArrays(t *testing.T) {
	t.Run("segment series", func(t *testing.T) {
		data, err := json.Marshal(EmptySegmentSeries())
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":[],"values":[]}`, string(data))
	})

	t.Run("segment counts", func(t *testing.T) {
		data, err := json.Marshal(EmptySegmentCounts())
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":[],"values":[]}`, string(data))
	})

	t.Run("monthly series", func(t *testing.T) {
		data, err := json.Marshal(EmptyMonthlySeries())
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":[],"datasets":[]}`, string(data))
	})

	t.Run("top customers", func(t *testing.T) {
		data, err := json.Marshal(EmptyTopCustomers())
		require.NoError(t, err)
		assert.JSONEq(t, `{"rows":[]}`, string(data))
	})
}

func TestDashboardFieldNamesMatchEndpoints(t *testing.T) {
	data, err := json.Marshal(Dashboard{})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"kpis",
		"revenue_by_segment",
		"avg_order_value_by_segment",
		"orders_count_by_segment",
		"monthly_revenue_by_segment",
	} {
		assert.Contains(t, decoded, key)
	}
}
