package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/pkg/helpers"
	"github.com/EliyatMagar/websathi-new/pkg/mailer"
	"github.com/EliyatMagar/websathi-new/pkg/response"
	"github.com/EliyatMagar/websathi-new/pkg/validation"
)

type ContactHandler struct {
	Mail      *mailer.Mailgun
	Publisher *helpers.RabbitPublisher
	// OwnerEmail receives the notification; falls back to the mail sender.
	OwnerEmail string
	OwnerName  string
	Logger     *logrus.Logger
}

func NewContactHandler(mail *mailer.Mailgun, pub *helpers.RabbitPublisher, ownerEmail, ownerName string, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Mail: mail, Publisher: pub, OwnerEmail: ownerEmail, OwnerName: ownerName, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit POST /api/contact delivers two emails: a notification to the site
// owner and an acknowledgment to the sender. With no mail transport
// configured the submission still succeeds so the public form never breaks.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := validation.ToDetails(err)
		if details["email"] == "must be a valid email" {
			response.ErrWithDetails(c, http.StatusBadRequest, "Please provide a valid email address", details)
			return
		}
		response.ErrWithDetails(c, http.StatusBadRequest, "All fields are required", details)
		return
	}

	owner := h.OwnerEmail
	if owner == "" && h.Mail != nil {
		owner = h.Mail.Sender
	}
	if owner == "" || !h.Mail.Configured() {
		h.Logger.WithFields(logrus.Fields{"from": req.Email, "subject": req.Subject}).
			Warn("contact message received but email is not configured")
		c.JSON(http.StatusOK, gin.H{"message": "Message received (email not configured)"})
		return
	}

	msg := mailer.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		OwnerName: h.OwnerName,
	}

	ownerSubject, ownerHTML, err := mailer.OwnerNotification(msg)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}
	ackSubject, ackHTML, err := mailer.Acknowledgment(msg)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	jobs := []mailer.EmailJob{
		{To: owner, Subject: ownerSubject, HTML: ownerHTML},
		{To: req.Email, Subject: ackSubject, HTML: ackHTML},
	}

	// Prefer the queue so form submissions stay fast; deliver inline when no
	// broker is configured.
	if h.Publisher != nil {
		for _, job := range jobs {
			if err := h.Publisher.PublishJSON(c.Request.Context(), job); err != nil {
				h.Logger.WithError(err).Error("contact email enqueue failed")
				response.Err(c, http.StatusInternalServerError, "Failed to send message. Please try again later.")
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
		return
	}

	for _, job := range jobs {
		if err := h.Mail.Send(c.Request.Context(), job.To, job.Subject, job.Text, job.HTML); err != nil {
			h.Logger.WithError(err).Error("contact email send failed")
			response.Err(c, http.StatusInternalServerError, "Failed to send message. Please try again later.")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}
