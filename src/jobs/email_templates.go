package jobs

import (
	"bytes"
	"fmt"
	"html/template"
)

type rosterEmailData struct {
	Activity string
	Email    string
}

var signedUpTmpl = template.Must(template.New("signed-up").Parse(
	`<p>Hello {{.Email}},</p>
<p>You are now signed up for <strong>{{.Activity}}</strong>.</p>
<p>See you there!<br>Mergington High School</p>`))

var unregisteredTmpl = template.Must(template.New("unregistered").Parse(
	`<p>Hello {{.Email}},</p>
<p>You have been removed from <strong>{{.Activity}}</strong>.</p>
<p>Mergington High School</p>`))

// renderRosterEmail คืน subject และเนื้อหา HTML ตามชนิดของ task
func renderRosterEmail(taskType string, p RosterPayload) (string, string, error) {
	var (
		subject string
		tmpl    *template.Template
	)
	switch taskType {
	case TypeRosterSignedUp:
		subject = fmt.Sprintf("Signed up for %s", p.Activity)
		tmpl = signedUpTmpl
	case TypeRosterUnregistered:
		subject = fmt.Sprintf("Unregistered from %s", p.Activity)
		tmpl = unregisteredTmpl
	default:
		return "", "", fmt.Errorf("unknown roster task type %q", taskType)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rosterEmailData{Activity: p.Activity, Email: p.Email}); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
