package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for a single
// outgoing email. Text is the plain fallback for the HTML body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
