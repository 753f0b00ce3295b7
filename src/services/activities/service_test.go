package activities

import (
	"context"
	"sync"
	"testing"

	"mergington-api/src/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rosterCall struct {
	action   string
	activity string
	email    string
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []rosterCall
}

func (f *fakeNotifier) SignedUp(_ context.Context, activity, email string) {
	f.record("signed-up", activity, email)
}

func (f *fakeNotifier) Unregistered(_ context.Context, activity, email string) {
	f.record("unregistered", activity, email)
}

func (f *fakeNotifier) record(action, activity, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, rosterCall{action: action, activity: activity, email: email})
}

func newTestService(t *testing.T) (*Service, *metrics.Metrics, *fakeNotifier) {
	t.Helper()
	m := metrics.New()
	n := &fakeNotifier{}
	s := NewService(newTestRegistry(t), zap.NewNop(), WithMetrics(m), WithNotifier(n))
	return s, m, n
}

func TestServiceSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessNotifiesAndCounts", func(t *testing.T) {
		s, m, n := newTestService(t)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Participants("Basketball Club")))

		email, err := s.SignUp(ctx, "Basketball Club", " NewStudent@Mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, "newstudent@mergington.edu", email)

		assert.Equal(t, []rosterCall{{"signed-up", "Basketball Club", "newstudent@mergington.edu"}}, n.calls)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SignUps("Basketball Club", metrics.ResultOK)))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.Participants("Basketball Club")))
	})

	t.Run("FailuresDoNotNotify", func(t *testing.T) {
		s, m, n := newTestService(t)

		_, err := s.SignUp(ctx, "Basketball Club", "alex@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)
		_, err = s.SignUp(ctx, "No Such Club", "alex@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
		_, err = s.SignUp(ctx, "Tiny Club", "one@mergington.edu")
		require.NoError(t, err)
		_, err = s.SignUp(ctx, "Tiny Club", "two@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityFull)

		assert.Len(t, n.calls, 1)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SignUps("Basketball Club", metrics.ResultDuplicate)))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SignUps(metrics.UnknownActivity, metrics.ResultNotFound)))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SignUps("Tiny Club", metrics.ResultFull)))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Participants("Basketball Club")))
	})
}

func TestServiceUnregister(t *testing.T) {
	ctx := context.Background()
	s, m, n := newTestService(t)

	email, err := s.Unregister(ctx, "Basketball Club", "ALEX@mergington.edu ")
	require.NoError(t, err)
	assert.Equal(t, "alex@mergington.edu", email)

	_, err = s.Unregister(ctx, "Basketball Club", "alex@mergington.edu")
	assert.ErrorIs(t, err, ErrNotRegistered)

	assert.Equal(t, []rosterCall{{"unregistered", "Basketball Club", "alex@mergington.edu"}}, n.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Unregistrations("Basketball Club", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Unregistrations("Basketball Club", metrics.ResultNotRegistered)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Participants("Basketball Club")))
}

func TestServiceWithoutOptions(t *testing.T) {
	s := NewService(newTestRegistry(t), zap.NewNop())

	_, err := s.SignUp(context.Background(), "Drama Club", "x@mergington.edu")
	require.NoError(t, err)
	_, err = s.Unregister(context.Background(), "Drama Club", "x@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 3, s.ListActivities().Len())
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		" Foo@Bar.com ":          "foo@bar.com",
		"\tSTUDENT@SCHOOL.EDU\n": "student@school.edu",
		"not-an-email":           "not-an-email",
		"":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeEmail(in), "input %q", in)
	}
}
