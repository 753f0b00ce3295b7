package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultEnqueueTimeout จำกัดเวลาที่รอ Redis ตอนเข้าคิว
const DefaultEnqueueTimeout = 3 * time.Second

// Notifier ส่งงานแจ้งเตือนเข้าคิว asynq
// ทุกอย่างทำใน goroutine แยก request จึงไม่ต้องรอ Redis หรือ SMTP
type Notifier struct {
	client  *asynq.Client
	queue   string
	sender  MailSender
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewNotifier(client *asynq.Client, queue string, sender MailSender, logger *zap.Logger) *Notifier {
	return &Notifier{
		client:  client,
		queue:   queue,
		sender:  sender,
		logger:  logger,
		timeout: DefaultEnqueueTimeout,
	}
}

func (n *Notifier) SignedUp(ctx context.Context, activity, email string) {
	n.dispatch(ctx, TypeRosterSignedUp, activity, email)
}

func (n *Notifier) Unregistered(ctx context.Context, activity, email string) {
	n.dispatch(ctx, TypeRosterUnregistered, activity, email)
}

// Wait รอให้การส่งแบบ background เสร็จทั้งหมด (ใช้ตอนปิด server)
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) dispatch(_ context.Context, taskType, activity, email string) {
	task, err := NewRosterTask(taskType, activity, email)
	if err != nil {
		n.logger.Error("create roster task", zap.Error(err))
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		// มี Redis → เข้าคิว, ไม่มี → ส่งทันที
		if n.client != nil {
			n.enqueue(taskType, task)
			return
		}
		if err := HandleRosterTask(n.sender, n.logger)(context.Background(), task); err != nil {
			n.logger.Warn("deliver roster mail failed", zap.String("type", taskType), zap.Error(err))
		}
	}()
}

func (n *Notifier) enqueue(taskType string, task *asynq.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	info, err := n.client.EnqueueContext(ctx, task,
		asynq.Queue(n.queue),
		asynq.MaxRetry(3),
		asynq.TaskID("roster-"+uuid.NewString()),
	)
	if err != nil {
		n.logger.Warn("enqueue roster task failed", zap.String("type", taskType), zap.Error(err))
		return
	}
	n.logger.Debug("roster task enqueued", zap.String("type", taskType), zap.String("id", info.ID))
}
