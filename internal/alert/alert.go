package alert

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/redissvc"
)

const (
	LevelLow = "low"
	LevelOut = "out"

	// StockAlertKey is the Redis list holding the most recent alerts, newest first.
	StockAlertKey = "inventory:stockalerts"
	maxAlerts     = 100
)

// Recorder keeps the recent stock alerts for the dashboard.
type Recorder interface {
	Record(ctx context.Context, a models.StockAlert) error
	Recent(ctx context.Context, limit int) ([]models.StockAlert, error)
}

// Level classifies a remaining stock quantity. It returns false when no alert is due.
func Level(quantity, lowMax int) (string, bool) {
	switch {
	case quantity == 0:
		return LevelOut, true
	case quantity <= lowMax:
		return LevelLow, true
	default:
		return "", false
	}
}

type RedisRecorder struct {
	rs *redissvc.RedisService
}

func NewRedisRecorder(rs *redissvc.RedisService) *RedisRecorder {
	return &RedisRecorder{rs: rs}
}

func (r *RedisRecorder) Record(ctx context.Context, a models.StockAlert) error {
	return r.rs.PushCapped(ctx, StockAlertKey, a, maxAlerts)
}

func (r *RedisRecorder) Recent(ctx context.Context, limit int) ([]models.StockAlert, error) {
	entries, err := r.rs.Range(ctx, StockAlertKey, int64(limit))
	if err != nil {
		return nil, err
	}

	alerts := make([]models.StockAlert, 0, len(entries))
	for _, item := range entries {
		var a models.StockAlert
		if err := json.Unmarshal([]byte(item), &a); err == nil {
			alerts = append(alerts, a)
		}
	}
	return alerts, nil
}

// MemoryRecorder is used when Redis is disabled and in tests.
type MemoryRecorder struct {
	mu     sync.Mutex
	alerts []models.StockAlert
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) Record(_ context.Context, a models.StockAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts = append([]models.StockAlert{a}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}
	return nil
}

func (m *MemoryRecorder) Recent(_ context.Context, limit int) ([]models.StockAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.alerts)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.StockAlert{}, m.alerts[:n]...), nil
}
