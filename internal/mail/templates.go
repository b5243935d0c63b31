package mail

import (
	"bytes"
	"html/template"
	"time"
)

const ResetSubject = "Reset Your Password"

var resetTmpl = template.Must(template.New("reset").Parse(`<h3>Hello {{.Name}},</h3>
<p>We received a request to reset your password. Click the link below to set a new password:</p>
<a href="{{.Link}}" target="_blank">{{.Link}}</a>
<p><i>This link will expire in {{.Minutes}} minutes.</i></p>
`))

// ResetBody renders the HTML body of the password reset mail
func ResetBody(name, link string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer

	err := resetTmpl.Execute(&buf, struct {
		Name    string
		Link    string
		Minutes int
	}{name, link, int(ttl.Minutes())})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
