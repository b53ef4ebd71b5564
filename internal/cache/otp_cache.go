package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPCache stores pending one-time passcodes keyed by email. Codes are
// single-use and expire on their own via TTL.
type OTPCache interface {
	Set(ctx context.Context, email, code string) error
	// Consume checks the code and deletes it on match. A wrong code
	// leaves the stored one in place.
	Consume(ctx context.Context, email, code string) (bool, error)
}

type otpCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPCache creates a new OTP cache with a 10 minute code lifetime.
func NewOTPCache(client *redis.Client) OTPCache {
	return &otpCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *otpCache) key(email string) string {
	return "otp:" + email
}

func (c *otpCache) Set(ctx context.Context, email, code string) error {
	return c.client.Set(ctx, c.key(email), code, c.ttl).Err()
}

func (c *otpCache) Consume(ctx context.Context, email, code string) (bool, error) {
	stored, err := c.client.Get(ctx, c.key(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := c.client.Del(ctx, c.key(email)).Err(); err != nil {
		return false, err
	}
	return true, nil
}
