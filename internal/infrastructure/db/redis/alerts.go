package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const alertTTL = time.Hour

// AlertMarker records which products have already raised a low-stock alert,
// so repeated adjustments on an already-low product do not re-alert within
// the TTL window. Key format: lowstock:<product_id>
type AlertMarker struct {
	client *redis.Client
}

// NewAlertMarker creates an AlertMarker wrapping the given Redis client.
func NewAlertMarker(client *redis.Client) *AlertMarker {
	return &AlertMarker{client: client}
}

// Seen reports whether an alert for this product is still active.
func (m *AlertMarker) Seen(ctx context.Context, productID string) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(productID)).Result()
	if err != nil {
		return false, fmt.Errorf("alert check: %w", err)
	}
	return n > 0, nil
}

// Mark records that an alert was raised for this product (expires after alertTTL).
func (m *AlertMarker) Mark(ctx context.Context, productID string) error {
	return m.client.Set(ctx, m.key(productID), "1", alertTTL).Err()
}

func (m *AlertMarker) key(productID string) string {
	return "lowstock:" + productID
}
