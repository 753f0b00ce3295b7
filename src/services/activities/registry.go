package activities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"mergington-api/src/models"
)

// Registry is the in-memory roster of all activities keyed by name.
//
// The set of activities only changes while seeding (Add). Every roster change is
// a read-modify-write on one activity and runs under that activity's lock, so
// concurrent sign-ups can never overfill an activity or store an email twice.
type Registry struct {
	mu      sync.RWMutex
	names   []string
	entries map[string]*entry
}

type entry struct {
	mu       sync.Mutex
	activity models.Activity
}

// NewRegistry builds a registry holding the given activities in order.
func NewRegistry(seed []models.Activity) (*Registry, error) {
	r := &Registry{
		names:   make([]string, 0, len(seed)),
		entries: make(map[string]*entry, len(seed)),
	}
	for _, a := range seed {
		if err := r.Add(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add validates and inserts a new activity. Emails are normalized on the way in.
func (r *Registry) Add(a models.Activity) error {
	prepared, err := prepareActivity(a)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[prepared.Name]; ok {
		return fmt.Errorf("%w: %q", ErrActivityExists, prepared.Name)
	}
	r.entries[prepared.Name] = &entry{activity: prepared}
	r.names = append(r.names, prepared.Name)
	return nil
}

// Len returns the number of activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Get returns a copy of one activity.
func (r *Registry) Get(name string) (models.Activity, error) {
	e, ok := r.lookup(name)
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activity.Clone(), nil
}

// Snapshot copies every activity. Each activity is copied under its own lock.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	entries := make([]*entry, len(names))
	for i, name := range names {
		entries[i] = r.entries[name]
	}
	r.mu.RUnlock()

	s := Snapshot{
		names:      names,
		activities: make(map[string]models.Activity, len(names)),
	}
	for i, e := range entries {
		e.mu.Lock()
		s.activities[names[i]] = e.activity.Clone()
		e.mu.Unlock()
	}
	return s
}

// SignUp adds a participant to the named activity and returns the normalized
// email together with the resulting roster size.
func (r *Registry) SignUp(name, email string) (string, int, error) {
	normalized := NormalizeEmail(email)

	e, ok := r.lookup(name)
	if !ok {
		return normalized, 0, ErrActivityNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activity.HasParticipant(normalized) {
		return normalized, len(e.activity.Participants), ErrAlreadySignedUp
	}
	if e.activity.IsFull() {
		return normalized, len(e.activity.Participants), ErrActivityFull
	}
	e.activity.AddParticipant(normalized)
	return normalized, len(e.activity.Participants), nil
}

// Unregister removes a participant from the named activity and returns the
// normalized email together with the resulting roster size.
func (r *Registry) Unregister(name, email string) (string, int, error) {
	normalized := NormalizeEmail(email)

	e, ok := r.lookup(name)
	if !ok {
		return normalized, 0, ErrActivityNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activity.RemoveParticipant(normalized) {
		return normalized, len(e.activity.Participants), ErrNotRegistered
	}
	return normalized, len(e.activity.Participants), nil
}

func (r *Registry) lookup(name string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Snapshot is a point-in-time copy of the registry. It encodes to a JSON object
// whose keys keep the registry order.
type Snapshot struct {
	names      []string
	activities map[string]models.Activity
}

// Names returns activity names in registry order.
func (s Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns one activity of the snapshot.
func (s Snapshot) Get(name string) (models.Activity, bool) {
	a, ok := s.activities[name]
	return a, ok
}

// Len returns the number of activities in the snapshot.
func (s Snapshot) Len() int {
	return len(s.names)
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
