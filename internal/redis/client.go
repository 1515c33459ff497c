package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

type AuthSession struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Raw exposes the underlying client for components that manage their own
// keys, such as the cart snapshot storage.
func (c *Client) Raw() *redis.Client {
	return c.rdb
}

// Auth session management
func (c *Client) SetAuthSession(session *AuthSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}

	return c.rdb.Set(ctx, "auth:"+session.Token, jsonData, ttl).Err()
}

func (c *Client) GetAuthSession(token string) (*AuthSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "auth:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get auth session: %w", err)
	}

	var session AuthSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteAuthSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "auth:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
