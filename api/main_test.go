package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/alert"
	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

func TestRedisBackends_FallBackToMemory(t *testing.T) {
	tests := []struct {
		name  string
		redis config.RedisConfig
	}{
		{"disabled", config.RedisConfig{Enabled: false}},
		{"unreachable", config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cfg := &config.Config{Redis: tt.redis}

			cache, recorder, closeFn := redisBackends(ctx, cfg, zap.NewNop())
			assert.Nil(t, cache)
			assert.IsType(t, &alert.MemoryRecorder{}, recorder)
			require.NotNil(t, closeFn)

			// The alert log stays usable after the signal context is done and until the
			// closer runs.
			cancel()
			require.NoError(t, recorder.Record(context.Background(), models.StockAlert{ProductID: "p", At: time.Now()}))
			got, err := recorder.Recent(context.Background(), 5)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			closeFn()
		})
	}
}
