package valkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/redis/go-redis/v9"

	"github.com/vero4ka/botutils/domain/delivery"
	"github.com/vero4ka/botutils/pkg/logger"
)

const keyPrefix = "botutils:delivery:"

var (
	redisSetOK  = metrics.NewCounter(`redis_operations_total{operation="set",status="ok"}`)
	redisSetErr = metrics.NewCounter(`redis_operations_total{operation="set",status="error"}`)
	redisSetDur = metrics.NewHistogram(`redis_operation_duration_seconds{operation="set"}`)

	redisGetOK   = metrics.NewCounter(`redis_operations_total{operation="get",status="ok"}`)
	redisGetErr  = metrics.NewCounter(`redis_operations_total{operation="get",status="error"}`)
	redisGetMiss = metrics.NewCounter(`redis_operations_total{operation="get",status="miss"}`)
	redisGetDur  = metrics.NewHistogram(`redis_operation_duration_seconds{operation="get"}`)
)

type deliveryData struct {
	RecipientID string    `json:"recipient_id"`
	MessageID   string    `json:"message_id"`
	Kind        string    `json:"kind"`
	SentAt      time.Time `json:"sent_at"`
}

// DeliveryRepository keeps the latest delivery per recipient; older
// deliveries are overwritten.
type DeliveryRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDeliveryRepository(client *redis.Client, ttl time.Duration, logger *slog.Logger) *DeliveryRepository {
	return &DeliveryRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *DeliveryRepository) Save(ctx context.Context, d *delivery.Delivery) error {
	key := keyPrefix + d.RecipientID()
	start := time.Now()

	data := deliveryData{
		RecipientID: d.RecipientID(),
		MessageID:   d.MessageID(),
		Kind:        string(d.Kind()),
		SentAt:      d.SentAt(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal delivery data: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, r.ttl).Err(); err != nil {
		duration := time.Since(start).Milliseconds()
		r.logger.Error("Redis SET failed",
			logger.RedisFieldsWithError("set", key, duration, err.Error()),
		)
		redisSetErr.Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	duration := time.Since(start).Milliseconds()
	r.logger.Debug("Redis SET completed",
		logger.RedisFields("set", key, duration),
	)
	redisSetOK.Inc()
	redisSetDur.Update(float64(duration) / 1000)

	return nil
}

func (r *DeliveryRepository) FindLatest(ctx context.Context, recipientID string) (*delivery.Delivery, error) {
	key := keyPrefix + recipientID
	start := time.Now()

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		duration := time.Since(start).Milliseconds()
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Redis GET miss",
				logger.RedisFields("get", key, duration),
			)
			redisGetMiss.Inc()
			return nil, delivery.ErrNotFound
		}
		r.logger.Error("Redis GET failed",
			logger.RedisFieldsWithError("get", key, duration, err.Error()),
		)
		redisGetErr.Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var data deliveryData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, fmt.Errorf("unmarshal delivery data: %w", err)
	}

	duration := time.Since(start).Milliseconds()
	r.logger.Debug("Redis GET completed",
		logger.RedisFields("get", key, duration),
	)
	redisGetOK.Inc()
	redisGetDur.Update(float64(duration) / 1000)

	return delivery.RestoreDelivery(data.RecipientID, data.MessageID, delivery.Kind(data.Kind), data.SentAt), nil
}

func (r *DeliveryRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
