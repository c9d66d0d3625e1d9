package alert

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		qty   int
		level string
		due   bool
	}{
		{0, LevelOut, true},
		{1, LevelLow, true},
		{5, LevelLow, true},
		{6, "", false},
	}
	for _, tt := range tests {
		level, due := Level(tt.qty, 5)
		assert.Equal(t, tt.level, level, "qty %d", tt.qty)
		assert.Equal(t, tt.due, due, "qty %d", tt.qty)
	}
}

func TestMemoryRecorder_NewestFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	rec := NewMemoryRecorder()
	for i := 0; i < maxAlerts+5; i++ {
		require.NoError(t, rec.Record(ctx, models.StockAlert{ProductID: fmt.Sprint(i)}))
	}

	all, err := rec.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, maxAlerts)
	assert.Equal(t, fmt.Sprint(maxAlerts+4), all[0].ProductID)

	two, err := rec.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}
