package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest snapshot of the external dependencies the
// booking flow needs: mongo for bookings and each redis role (cache, auth,
// quote) keyed by name.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// checkHealth pings every dependency once and stores the snapshot.
func checkHealth(ctx context.Context, redisClients map[string]*redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{
		Redis:     make(map[string]bool, len(redisClients)),
		CheckedAt: time.Now(),
	}
	for role, client := range redisClients {
		status.Redis[role] = client != nil && client.Ping(ctx).Err() == nil
	}
	status.Mongo = mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
	return status
}

// StartHealthMonitor checks the dependencies once immediately and then on the
// given interval (a minute when non-positive), logging each unreachable
// dependency by its role.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		logger := GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := checkHealth(ctx, redisClients, mongoClient)
			cancel()

			if !status.Mongo {
				logger.Warn("health check: mongo unreachable")
			}
			for role, ok := range status.Redis {
				if !ok {
					logger.Warn("health check: redis unreachable", zap.String("role", role))
				}
			}
			<-ticker.C
		}
	}()
}
