package activities

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"mergington-api/src/models"
	"mergington-api/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedActivities() []models.Activity {
	return []models.Activity{
		{
			Name:            "Basketball Club",
			Description:     "Join our basketball team for practice and competitions",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in school plays and develop acting skills",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Tiny Club",
			Description:     "A very small club",
			Schedule:        "Mondays",
			MaxParticipants: 1,
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(seedActivities())
	require.NoError(t, err)
	return r
}

func TestRegistrySignUp(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Registry Sign Up Tests")
	defer suiteResult.PrintSummary()

	t.Run("AppendsNormalizedEmail", func(t *testing.T) {
		suiteResult.Track(t, "Appends Normalized Email", 50*time.Millisecond)

		r := newTestRegistry(t)
		email, size, err := r.SignUp("Basketball Club", "  Foo@Bar.com ")
		require.NoError(t, err)
		assert.Equal(t, "foo@bar.com", email)
		assert.Equal(t, 2, size)

		a, err := r.Get("Basketball Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"alex@mergington.edu", "foo@bar.com"}, a.Participants)
	})

	t.Run("UnknownActivity", func(t *testing.T) {
		suiteResult.Track(t, "Unknown Activity", 50*time.Millisecond)

		r := newTestRegistry(t)
		_, _, err := r.SignUp("Unknown", "student@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	t.Run("NameIsCaseSensitive", func(t *testing.T) {
		suiteResult.Track(t, "Name Is Case Sensitive", 50*time.Millisecond)

		r := newTestRegistry(t)
		_, _, err := r.SignUp("basketball club", "student@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
		_, _, err = r.SignUp(" Basketball Club", "student@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	t.Run("DuplicateLeavesRosterUnchanged", func(t *testing.T) {
		suiteResult.Track(t, "Duplicate Leaves Roster Unchanged", 50*time.Millisecond)

		r := newTestRegistry(t)
		_, _, err := r.SignUp("Basketball Club", " ALEX@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)

		a, err := r.Get("Basketball Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"alex@mergington.edu"}, a.Participants)
	})

	t.Run("CapacityIsEnforced", func(t *testing.T) {
		suiteResult.Track(t, "Capacity Is Enforced", 50*time.Millisecond)

		r := newTestRegistry(t)
		_, _, err := r.SignUp("Tiny Club", "first@mergington.edu")
		require.NoError(t, err)

		_, _, err = r.SignUp("Tiny Club", "second@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityFull)

		a, err := r.Get("Tiny Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"first@mergington.edu"}, a.Participants)
	})

	t.Run("DuplicateCheckedBeforeCapacity", func(t *testing.T) {
		suiteResult.Track(t, "Duplicate Checked Before Capacity", 50*time.Millisecond)

		r := newTestRegistry(t)
		_, _, err := r.SignUp("Tiny Club", "first@mergington.edu")
		require.NoError(t, err)

		_, _, err = r.SignUp("Tiny Club", "FIRST@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)
	})
}

func TestRegistryUnregister(t *testing.T) {
	t.Run("RemovesAndKeepsOrder", func(t *testing.T) {
		r := newTestRegistry(t)
		for _, email := range []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"} {
			_, _, err := r.SignUp("Drama Club", email)
			require.NoError(t, err)
		}

		email, size, err := r.Unregister("Drama Club", " B@Mergington.edu ")
		require.NoError(t, err)
		assert.Equal(t, "b@mergington.edu", email)
		assert.Equal(t, 4, size)

		a, err := r.Get("Drama Club")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"isabella@mergington.edu",
			"lucas@mergington.edu",
			"a@mergington.edu",
			"c@mergington.edu",
		}, a.Participants)
	})

	t.Run("RoundTripRestoresRoster", func(t *testing.T) {
		r := newTestRegistry(t)
		before, err := r.Get("Drama Club")
		require.NoError(t, err)

		_, _, err = r.SignUp("Drama Club", "new@mergington.edu")
		require.NoError(t, err)
		_, _, err = r.Unregister("Drama Club", "new@mergington.edu")
		require.NoError(t, err)

		after, err := r.Get("Drama Club")
		require.NoError(t, err)
		assert.Equal(t, before.Participants, after.Participants)
	})

	t.Run("NotRegistered", func(t *testing.T) {
		r := newTestRegistry(t)
		_, _, err := r.Unregister("Basketball Club", "ghost@mergington.edu")
		assert.ErrorIs(t, err, ErrNotRegistered)

		_, _, err = r.Unregister("Basketball Club", "alex@mergington.edu")
		require.NoError(t, err)
		_, _, err = r.Unregister("Basketball Club", "alex@mergington.edu")
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("UnknownActivity", func(t *testing.T) {
		r := newTestRegistry(t)
		_, _, err := r.Unregister("Unknown", "alex@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestRegistryAdd(t *testing.T) {
	t.Run("RejectsDuplicateName", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.Add(models.Activity{Name: "Tiny Club", MaxParticipants: 3})
		assert.ErrorIs(t, err, ErrActivityExists)
		assert.Equal(t, 3, r.Len())
	})

	t.Run("NormalizesSeededEmails", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Add(models.Activity{
			Name:            "Chess Club",
			MaxParticipants: 12,
			Participants:    []string{" Michael@Mergington.edu "},
		}))

		a, err := r.Get("Chess Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"michael@mergington.edu"}, a.Participants)
	})

	invalid := []struct {
		name     string
		activity models.Activity
	}{
		{"MissingName", models.Activity{MaxParticipants: 1}},
		{"ZeroCapacity", models.Activity{Name: "Zero", MaxParticipants: 0}},
		{"OverCapacity", models.Activity{Name: "Over", MaxParticipants: 1, Participants: []string{"a@x.edu", "b@x.edu"}}},
		{"DuplicateAfterNormalize", models.Activity{Name: "Dup", MaxParticipants: 5, Participants: []string{"a@x.edu", " A@X.edu"}}},
		{"BlankEmail", models.Activity{Name: "Blank", MaxParticipants: 5, Participants: []string{"   "}}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRegistry(t)
			err := r.Add(tc.activity)
			assert.ErrorIs(t, err, ErrInvalidActivity)
			assert.Equal(t, 3, r.Len())
		})
	}

	t.Run("NewRegistryFailsOnBadSeed", func(t *testing.T) {
		seed := append(seedActivities(), models.Activity{Name: "Basketball Club", MaxParticipants: 2})
		_, err := NewRegistry(seed)
		assert.ErrorIs(t, err, ErrActivityExists)
	})
}

func TestRegistrySnapshot(t *testing.T) {
	t.Run("IsACopy", func(t *testing.T) {
		r := newTestRegistry(t)
		snapshot := r.Snapshot()

		_, _, err := r.SignUp("Basketball Club", "later@mergington.edu")
		require.NoError(t, err)

		a, ok := snapshot.Get("Basketball Club")
		require.True(t, ok)
		assert.Equal(t, []string{"alex@mergington.edu"}, a.Participants)
	})

	t.Run("EncodesInRegistryOrder", func(t *testing.T) {
		r := newTestRegistry(t)
		body, err := json.Marshal(r.Snapshot())
		require.NoError(t, err)

		s := string(body)
		basketball := strings.Index(s, `"Basketball Club"`)
		drama := strings.Index(s, `"Drama Club"`)
		tiny := strings.Index(s, `"Tiny Club"`)
		assert.True(t, basketball >= 0 && basketball < drama && drama < tiny, s)

		var decoded map[string]models.Activity
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Len(t, decoded, 3)
		assert.Equal(t, 15, decoded["Basketball Club"].MaxParticipants)
		assert.Equal(t, "Mondays", decoded["Tiny Club"].Schedule)
	})

	t.Run("EmptyRosterEncodesAsArray", func(t *testing.T) {
		r := newTestRegistry(t)
		body, err := json.Marshal(r.Snapshot())
		require.NoError(t, err)
		assert.Contains(t, string(body), `"Tiny Club":{"description":"A very small club","schedule":"Mondays","max_participants":1,"participants":[]}`)
	})

	t.Run("Names", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.Equal(t, []string{"Basketball Club", "Drama Club", "Tiny Club"}, r.Snapshot().Names())
	})
}

func TestRegistryConcurrentSignUps(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add(models.Activity{Name: "Popular Club", MaxParticipants: 10}))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		full     int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := r.SignUp("Popular Club", fmt.Sprintf("student%d@mergington.edu", i))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case assert.ErrorIs(t, err, ErrActivityFull):
				full++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.Equal(t, 90, full)

	a, err := r.Get("Popular Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 10)
}

func TestRegistryConcurrentDuplicateSignUps(t *testing.T) {
	r := newTestRegistry(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := r.SignUp("Drama Club", "Same@Mergington.edu")
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	a, err := r.Get("Drama Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"isabella@mergington.edu", "lucas@mergington.edu", "same@mergington.edu"}, a.Participants)
}
