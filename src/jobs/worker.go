package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// HandleRosterTask ส่ง email ยืนยันให้นักเรียนเมื่อสมัคร/ยกเลิกสำเร็จ
func HandleRosterTask(sender MailSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p RosterPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode roster payload: %v: %w", err, asynq.SkipRetry)
		}
		p.Normalize()
		if p.Activity == "" || p.Email == "" {
			return fmt.Errorf("incomplete roster payload: %w", asynq.SkipRetry)
		}

		subject, body, err := renderRosterEmail(t.Type(), p)
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err := sender.Send(p.Email, subject, body); err != nil {
			logger.Warn("send roster mail failed",
				zap.String("type", t.Type()),
				zap.String("email", p.Email),
				zap.Error(err),
			)
			return err
		}

		logger.Info("roster mail sent",
			zap.String("type", t.Type()),
			zap.String("activity", p.Activity),
			zap.String("email", p.Email),
		)
		return nil
	}
}

// RegisterHandlers ผูก handler กับชนิดของ task
func RegisterHandlers(mux *asynq.ServeMux, sender MailSender, logger *zap.Logger) {
	handler := HandleRosterTask(sender, logger)
	mux.HandleFunc(TypeRosterSignedUp, handler)
	mux.HandleFunc(TypeRosterUnregistered, handler)
}

// Worker ประมวลผล task ของ roster ภายใน process เดียวกับ API
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(redisOpt asynq.RedisConnOpt, queue string, sender MailSender, logger *zap.Logger) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{queue: 1},
		Logger:      logger.Sugar(),
	})

	mux := asynq.NewServeMux()
	RegisterHandlers(mux, sender, logger)

	return &Worker{server: server, mux: mux}
}

// Start เริ่ม worker แบบไม่ block
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
