package database

import (
	"github.com/hibiken/asynq"
)

// AsynqRedisOpt ค่าเชื่อมต่อ Redis ที่ใช้ร่วมกันระหว่าง client และ worker
func AsynqRedisOpt(addr string) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: addr}
}

// NewAsynqClient สร้าง client สำหรับ enqueue งาน
// คืนค่า nil ถ้าไม่ได้ตั้งค่า Redis
func NewAsynqClient(addr string) *asynq.Client {
	if addr == "" {
		return nil
	}
	return asynq.NewClient(AsynqRedisOpt(addr))
}
