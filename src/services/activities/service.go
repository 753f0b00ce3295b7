package activities

import (
	"context"
	"errors"

	"mergington-api/src/metrics"

	"go.uber.org/zap"
)

// Notifier ถูกเรียกหลังจากเปลี่ยนรายชื่อสำเร็จเท่านั้น
type Notifier interface {
	SignedUp(ctx context.Context, activity, email string)
	Unregistered(ctx context.Context, activity, email string)
}

// Service รวม registry เข้ากับ logging, metrics และการแจ้งเตือน
type Service struct {
	registry *Registry
	logger   *zap.Logger
	metrics  *metrics.Metrics
	notifier Notifier
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func NewService(registry *Registry, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics != nil {
		snapshot := registry.Snapshot()
		for _, name := range snapshot.Names() {
			a, _ := snapshot.Get(name)
			s.metrics.SetParticipants(name, len(a.Participants))
		}
	}
	return s
}

// ✅ 1. ดึงกิจกรรมทั้งหมด พร้อมรายชื่อผู้เข้าร่วมปัจจุบัน
func (s *Service) ListActivities() Snapshot {
	return s.registry.Snapshot()
}

// Count จำนวนกิจกรรมทั้งหมด
func (s *Service) Count() int {
	return s.registry.Len()
}

// ✅ 2. นักเรียนสมัครเข้ากิจกรรม (กันลงซ้ำ + กันเต็มโควต้า)
func (s *Service) SignUp(ctx context.Context, activityName, email string) (string, error) {
	normalized, size, err := s.registry.SignUp(activityName, email)
	s.observe(activityName, size, err, true)
	if err != nil {
		s.logger.Debug("signup rejected",
			zap.String("activity", activityName),
			zap.String("email", normalized),
			zap.Error(err),
		)
		return normalized, err
	}

	s.logger.Info("student signed up",
		zap.String("activity", activityName),
		zap.String("email", normalized),
		zap.Int("participants", size),
	)
	if s.notifier != nil {
		s.notifier.SignedUp(ctx, activityName, normalized)
	}
	return normalized, nil
}

// ✅ 3. นักเรียนยกเลิกการสมัคร
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	normalized, size, err := s.registry.Unregister(activityName, email)
	s.observe(activityName, size, err, false)
	if err != nil {
		s.logger.Debug("unregister rejected",
			zap.String("activity", activityName),
			zap.String("email", normalized),
			zap.Error(err),
		)
		return normalized, err
	}

	s.logger.Info("student unregistered",
		zap.String("activity", activityName),
		zap.String("email", normalized),
		zap.Int("participants", size),
	)
	if s.notifier != nil {
		s.notifier.Unregistered(ctx, activityName, normalized)
	}
	return normalized, nil
}

func (s *Service) observe(activityName string, size int, err error, signup bool) {
	if s.metrics == nil {
		return
	}

	result := resultLabel(err)
	label := activityName
	if errors.Is(err, ErrActivityNotFound) {
		label = metrics.UnknownActivity
	}

	if signup {
		s.metrics.ObserveSignUp(label, result)
	} else {
		s.metrics.ObserveUnregister(label, result)
	}
	if err == nil {
		s.metrics.SetParticipants(activityName, size)
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrActivityNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrAlreadySignedUp):
		return metrics.ResultDuplicate
	case errors.Is(err, ErrActivityFull):
		return metrics.ResultFull
	case errors.Is(err, ErrNotRegistered):
		return metrics.ResultNotRegistered
	default:
		return metrics.ResultError
	}
}
