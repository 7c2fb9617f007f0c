package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactMessage carries a contact-form submission into the email templates.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
	// OwnerName is shown in the acknowledgment signature.
	OwnerName string
}

var ownerTmpl = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #3b82f6; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 20px; border-radius: 0 0 8px 8px; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #374151; }
    .value { color: #6b7280; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>New Contact Form Submission</h1></div>
    <div class="content">
      <div class="field"><div class="label">Name:</div><div class="value">{{.Name}}</div></div>
      <div class="field"><div class="label">Email:</div><div class="value">{{.Email}}</div></div>
      <div class="field"><div class="label">Subject:</div><div class="value">{{.Subject}}</div></div>
      <div class="field"><div class="label">Message:</div><div class="value" style="white-space: pre-wrap;">{{.Message}}</div></div>
    </div>
  </div>
</body>
</html>`))

var ackTmpl = template.Must(template.New("ack").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #10b981; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 20px; border-radius: 0 0 8px 8px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Thank You for Reaching Out!</h1></div>
    <div class="content">
      <p>Hello <strong>{{.Name}}</strong>,</p>
      <p>Thank you for your message. I'll get back to you soon!</p>
      <p>Best regards,<br><strong>{{.OwnerName}}</strong></p>
    </div>
  </div>
</body>
</html>`))

// OwnerNotification renders the email sent to the site owner.
func OwnerNotification(msg ContactMessage) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := ownerTmpl.Execute(&buf, msg); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("New Contact Form: %s", msg.Subject), buf.String(), nil
}

// Acknowledgment renders the auto-reply sent back to the submitter.
func Acknowledgment(msg ContactMessage) (subject, html string, err error) {
	if msg.OwnerName == "" {
		msg.OwnerName = "Portfolio Owner"
	}
	var buf bytes.Buffer
	if err := ackTmpl.Execute(&buf, msg); err != nil {
		return "", "", err
	}
	return "Thank you for contacting me!", buf.String(), nil
}
