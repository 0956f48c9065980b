package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sahay/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// FraudStatsKey builds the cache key for a user's fraud statistics.
func (s *CacheService) FraudStatsKey(userID uint) string {
	return s.GenerateKey("fraud", "stats", userID)
}

// User caching
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	keys := []string{
		s.GenerateKey("user", "id", user.ID),
		s.GenerateKey("user", "email", user.Email),
	}
	if user.Phone != "" {
		keys = append(keys, s.GenerateKey("user", "phone", user.Phone))
	}

	for _, key := range keys {
		if err := s.Set(ctx, key, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, redis.Nil
	}
	return &user, nil
}

// InvalidateUser removes every cached view of a user, including the fraud
// statistics derived from it.
func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	key := s.GenerateKey("user", "id", userID)
	user, err := s.GetUser(ctx, key)
	keys := []string{key, s.FraudStatsKey(userID)}
	if err == nil && user != nil {
		keys = append(keys, s.GenerateKey("user", "email", user.Email))
		if user.Phone != "" {
			keys = append(keys, s.GenerateKey("user", "phone", user.Phone))
		}
	}
	return s.Delete(ctx, keys...)
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
