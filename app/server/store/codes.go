package store

import (
	"biolink/app/server/constants"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrCodeNotFound = errors.New("confirmation code not found")

// ConfirmationCodes 管理一次性邮箱确认码：签发后只能兑换一次，超时自动失效
type ConfirmationCodes interface {
	Issue(ctx context.Context, identityID string) (string, error)
	Redeem(ctx context.Context, code string) (string, error)
}

type RedisConfirmationCodes struct {
	rdb *redis.Client
}

func NewRedisConfirmationCodes(rdb *redis.Client) *RedisConfirmationCodes {
	return &RedisConfirmationCodes{rdb: rdb}
}

func (s *RedisConfirmationCodes) Issue(ctx context.Context, identityID string) (string, error) {
	code := uuid.NewString()
	key := fmt.Sprintf(constants.CacheKeyConfirmCode, code)
	if err := s.rdb.Set(ctx, key, identityID, constants.CacheExpireConfirmCode).Err(); err != nil {
		return "", fmt.Errorf("failed to store confirmation code: %w", err)
	}
	return code, nil
}

func (s *RedisConfirmationCodes) Redeem(ctx context.Context, code string) (string, error) {
	key := fmt.Sprintf(constants.CacheKeyConfirmCode, code)
	identityID, err := s.rdb.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCodeNotFound
		}
		return "", fmt.Errorf("failed to redeem confirmation code: %w", err)
	}
	return identityID, nil
}
