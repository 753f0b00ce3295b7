package models

// Activity กิจกรรมชมรม 1 รายการ (key ของ registry คือ Name)
type Activity struct {
	Name            string   `json:"-" yaml:"name" validate:"required"`
	Description     string   `json:"description" yaml:"description" example:"Join our basketball team for practice and competitions"`
	Schedule        string   `json:"schedule" yaml:"schedule" example:"Mondays and Wednesdays, 4:00 PM - 5:30 PM"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants" validate:"gt=0" example:"15"`
	Participants    []string `json:"participants" yaml:"participants" validate:"unique,dive,required" example:"alex@mergington.edu"`
}

// SpotsLeft จำนวนที่ว่างคงเหลือ
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull เต็มแล้วหรือยัง
func (a Activity) IsFull() bool {
	return a.SpotsLeft() <= 0
}

// HasParticipant ตรวจว่ามี email นี้อยู่ในรายชื่อแล้วหรือไม่ (email ต้อง normalize มาแล้ว)
func (a Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

func (a Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// Clone คืนสำเนาที่ไม่แชร์ slice กับต้นฉบับ
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// AddParticipant ต่อท้ายรายชื่อ (ลำดับการสมัครต้องคงไว้)
func (a *Activity) AddParticipant(email string) {
	a.Participants = append(a.Participants, email)
}

// RemoveParticipant ลบ email ที่ตรงกันออก โดยไม่เปลี่ยนลำดับของคนที่เหลือ
func (a *Activity) RemoveParticipant(email string) bool {
	i := a.indexOf(email)
	if i < 0 {
		return false
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return true
}
