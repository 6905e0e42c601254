package presence

import (
	"context"
	"fmt"
	"time"

	"driveshare/internal/infra"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Store tracks who is currently looking at a vehicle listing. Each
// viewer holds one key with a TTL; a viewer that stops heartbeating
// simply expires.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func viewerKey(vehicleID, userID uuid.UUID) string {
	return fmt.Sprintf("presence:vehicle:%s:viewer:%s", vehicleID, userID)
}

func viewerPattern(vehicleID uuid.UUID) string {
	return fmt.Sprintf("presence:vehicle:%s:viewer:*", vehicleID)
}

func (s *Store) Heartbeat(ctx context.Context, vehicleID, userID uuid.UUID) error {
	if err := s.client.Set(ctx, viewerKey(vehicleID, userID), "1", s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to record presence heartbeat", err)
	}
	return nil
}

func (s *Store) Leave(ctx context.Context, vehicleID, userID uuid.UUID) error {
	if err := s.client.Del(ctx, viewerKey(vehicleID, userID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to clear presence", err)
	}
	return nil
}

// CountViewers scans rather than KEYS so a large keyspace cannot stall
// the server.
func (s *Store) CountViewers(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	var (
		count  int
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, viewerPattern(vehicleID), 100).Result()
		if err != nil {
			return 0, infra.WrapRepoErr("failed to scan presence keys", err)
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return count, nil
}
