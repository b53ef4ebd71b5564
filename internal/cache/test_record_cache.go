package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"careercompass/internal/model"
)

// TestRecordCache is a best-effort read accelerator in front of the test
// record collection. Mongo stays the source of truth; entries are
// rewritten on every successful persist.
type TestRecordCache interface {
	Get(ctx context.Context, userID string) (*model.TestRecord, error)
	Set(ctx context.Context, record *model.TestRecord) error
	Delete(ctx context.Context, userID string) error
}

type testRecordCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTestRecordCache creates a new test record cache
func NewTestRecordCache(client *redis.Client) TestRecordCache {
	return &testRecordCache{
		client: client,
		ttl:    30 * time.Minute,
	}
}

func (c *testRecordCache) key(userID string) string {
	return "testrecord:" + userID
}

func (c *testRecordCache) Get(ctx context.Context, userID string) (*model.TestRecord, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record model.TestRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *testRecordCache) Set(ctx context.Context, record *model.TestRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(record.UserID), data, c.ttl).Err()
}

func (c *testRecordCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
