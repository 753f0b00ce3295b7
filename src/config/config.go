package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดที่อ่านจาก environment
type Config struct {
	Port           string `validate:"required,numeric"`
	Env            string `validate:"oneof=production development"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	AllowedOrigins string `validate:"required"`
	StaticDir      string `validate:"required"`
	SeedFile       string
	RedisURI       string `validate:"omitempty,hostname_port"`
	NotifyQueue    string `validate:"required"`
	SMTP           SMTPConfig
}

// SMTPConfig ใช้ส่ง email ยืนยันการสมัคร (ไม่บังคับ)
type SMTPConfig struct {
	Host string
	Port int `validate:"omitempty,min=1,max=65535"`
	User string
	Pass string
	From string `validate:"omitempty,email"`
}

// Enabled ครบทุกค่าหรือไม่
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.Port != 0 && s.User != "" && s.Pass != "" && s.From != ""
}

// Load โหลดค่าจาก .env (ถ้ามี) แล้วอ่าน environment
func Load() (*Config, error) {
	// ไม่มีไฟล์ .env ก็ทำงานต่อได้ ใช้ค่าจาก environment แทน
	envErr := godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if envErr != nil && !os.IsNotExist(envErr) {
		return cfg, fmt.Errorf("loading .env: %w", envErr)
	}
	return cfg, nil
}

// FromEnv อ่านค่าจาก environment พร้อมค่า default และตรวจสอบ
func FromEnv() (*Config, error) {
	smtpPort := 0
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		smtpPort = p
	}

	cfg := &Config{
		Port:           getEnv("APP_URI", "8000"),
		Env:            getEnv("APP_ENV", "production"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		StaticDir:      getEnv("STATIC_DIR", "src/static"),
		SeedFile:       os.Getenv("SEED_FILE"),
		RedisURI:       os.Getenv("REDIS_URI"),
		NotifyQueue:    getEnv("NOTIFY_QUEUE", "default"),
		SMTP: SMTPConfig{
			Host: os.Getenv("SMTP_HOST"),
			Port: smtpPort,
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: os.Getenv("SMTP_FROM"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
