package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// SessionStore 会话与令牌黑名单存储
// 设计说明：
// 1. 登出时把刷新令牌加入黑名单，TTL与令牌剩余有效期一致，
//    过期后自动清理，避免黑名单无限膨胀
// 2. 会话记录最近一次登录信息，供管理侧排查使用
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:user:%d", userID)
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:token:%s", token)
}

// SaveSession 记录用户最近登录时间
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, ttl time.Duration) error {
	err := s.client.Set(ctx, sessionKey(userID), time.Now().Unix(), ttl).Err()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeRedisError, "failed to save session")
	}
	return nil
}

// DeleteSession 清除用户会话
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeRedisError, "failed to delete session")
	}
	return nil
}

// AddToBlacklist 把令牌加入黑名单
// ttl应取令牌的剩余有效期，已过期的令牌无需入黑名单
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), 1, ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeRedisError, "failed to blacklist token")
	}
	return nil
}

// IsInBlacklist 检查令牌是否已被吊销
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeRedisError, "failed to check blacklist")
	}
	return n > 0, nil
}
