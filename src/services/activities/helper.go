package activities

import (
	"fmt"
	"strings"

	"mergington-api/src/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail ตัดช่องว่างหัวท้ายและแปลงเป็นตัวพิมพ์เล็ก
// ไม่ตรวจรูปแบบ email (รับทุกค่าที่ส่งมา)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// prepareActivity ตรวจสอบข้อมูลกิจกรรมก่อนเข้า registry และคืนสำเนาที่ normalize แล้ว
func prepareActivity(a models.Activity) (models.Activity, error) {
	out := a.Clone()
	for i, p := range out.Participants {
		out.Participants[i] = NormalizeEmail(p)
	}

	if err := validate.Struct(out); err != nil {
		return models.Activity{}, fmt.Errorf("%w %q: %v", ErrInvalidActivity, a.Name, err)
	}
	if len(out.Participants) > out.MaxParticipants {
		return models.Activity{}, fmt.Errorf("%w %q: %d participants exceed capacity %d",
			ErrInvalidActivity, a.Name, len(out.Participants), out.MaxParticipants)
	}
	return out, nil
}
