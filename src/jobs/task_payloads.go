package jobs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
)

const (
	TypeRosterSignedUp     = "roster:signed-up"
	TypeRosterUnregistered = "roster:unregistered"
)

type RosterPayload struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

func (p *RosterPayload) Normalize() {
	p.Activity = strings.TrimSpace(p.Activity)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
}

// NewRosterTask สร้าง task แจ้งเตือนเมื่อรายชื่อในกิจกรรมเปลี่ยน
func NewRosterTask(taskType, activity, email string) (*asynq.Task, error) {
	if taskType != TypeRosterSignedUp && taskType != TypeRosterUnregistered {
		return nil, fmt.Errorf("unknown roster task type %q", taskType)
	}

	payload := RosterPayload{Activity: activity, Email: email}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, b), nil
}
