package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	futils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestLogger บันทึก log 1 บรรทัดต่อ request
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// ให้ error handler ตั้ง status ก่อน จะได้ log status ที่ส่งจริง
		if err != nil {
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// Method/Path ชี้ไปที่ buffer ของ fasthttp ซึ่งถูกใช้ซ้ำใน request ถัดไป
		fields := []zap.Field{
			zap.String("method", futils.CopyString(c.Method())),
			zap.String("path", futils.CopyString(c.Path())),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		}
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Info("request", fields...)
		default:
			logger.Debug("request", fields...)
		}
		return nil
	}
}
