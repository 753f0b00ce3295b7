package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	RedisDisabled = "disabled"
	RedisOK       = "ok"
)

// RedisStatus ping Redis แบบจำกัดเวลา
// คืนค่า "disabled" ถ้าไม่ได้ตั้งค่า Redis ไว้ (dev mode)
func RedisStatus(ctx context.Context, client *redis.Client) string {
	if client == nil {
		return RedisDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return err.Error()
	}
	return RedisOK
}
