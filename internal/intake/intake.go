package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lawncare"
	"lawncare/internal/logger"
	"lawncare/internal/mailer"
	"lawncare/internal/repository"

	"github.com/google/uuid"
)

// ErrMissingFields is returned when a submission lacks any required field.
var ErrMissingFields = errors.New("name, email, subject, and description are required fields")

const (
	defaultDepartment = "General"
	defaultPriority   = "Medium"
)

// Submission carries user-provided fields for a new support request.
type Submission struct {
	Name        string
	Email       string
	Department  string
	Priority    string
	Subject     string
	Description string
}

// Receipt reports the outcome of a submission. Email delivery flags are
// informational; a stored request with failed notifications is still a
// successful submission.
type Receipt struct {
	RequestID        string    `json:"request_id"`
	EmailSent        bool      `json:"email_sent"`
	ConfirmationSent bool      `json:"confirmation_sent"`
	SubmittedAt      time.Time `json:"timestamp"`
}

// Service receives support requests, persists them, and notifies the
// coordinator plus the requester.
type Service struct {
	requests    repository.RequestRepo
	sender      mailer.Sender
	coordinator string
	log         *logger.Logger
	now         func() time.Time
}

func NewService(requests repository.RequestRepo, sender mailer.Sender, coordinator string, log *logger.Logger) *Service {
	if coordinator == "" {
		coordinator = "support@company.com"
	}
	return &Service{
		requests:    requests,
		sender:      sender,
		coordinator: coordinator,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates, stores, and dispatches notifications for a request.
// Notification failures are logged and surfaced via the receipt flags only.
func (s *Service) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	if sub.Name == "" || sub.Email == "" || sub.Subject == "" || sub.Description == "" {
		return Receipt{}, ErrMissingFields
	}
	if sub.Department == "" {
		sub.Department = defaultDepartment
	}
	if sub.Priority == "" {
		sub.Priority = defaultPriority
	}

	now := s.now()
	req := lawncare.SupportRequest{
		RequestID:   newRequestID(now),
		Name:        sub.Name,
		Email:       sub.Email,
		Department:  sub.Department,
		Priority:    sub.Priority,
		Subject:     sub.Subject,
		Description: sub.Description,
		SubmittedAt: now,
	}

	if err := s.requests.Insert(ctx, req); err != nil {
		return Receipt{}, fmt.Errorf("store support request: %w", err)
	}

	rec := Receipt{RequestID: req.RequestID, SubmittedAt: now}

	if err := s.sender.Send(s.coordinator, coordinatorSubject(req), coordinatorBody(req)); err != nil {
		s.log.Warnw("coordinator notification failed", "request_id", req.RequestID, "error", err)
	} else {
		rec.EmailSent = true
	}

	if err := s.sender.Send(req.Email, confirmationSubject(req), s.confirmationBody(req)); err != nil {
		s.log.Warnw("confirmation email failed", "request_id", req.RequestID, "error", err)
	} else {
		rec.ConfirmationSent = true
	}

	return rec, nil
}

// History returns stored requests, optionally filtered.
func (s *Service) History(ctx context.Context, f repository.RequestFilter) ([]lawncare.SupportRequest, error) {
	return s.requests.List(ctx, f)
}

// newRequestID is second-resolution plus a short random suffix so concurrent
// submissions never collide.
func newRequestID(now time.Time) string {
	return fmt.Sprintf("REQ_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}

func coordinatorSubject(r lawncare.SupportRequest) string {
	return fmt.Sprintf("[%s] Support Request: %s", strings.ToUpper(r.Priority), r.Subject)
}

func coordinatorBody(r lawncare.SupportRequest) string {
	return strings.TrimSpace(fmt.Sprintf(`
New Support Request Received

Request ID: %s
Submitted: %s

REQUESTOR INFORMATION:
Name: %s
Email: %s
Department: %s

REQUEST DETAILS:
Priority: %s
Subject: %s

Description:
%s

---
This request was submitted through the Business Support Intake System.
Please respond directly to %s for any follow-up questions.
`,
		r.RequestID, r.SubmittedAt.Format(time.RFC3339),
		r.Name, r.Email, r.Department,
		r.Priority, r.Subject,
		r.Description,
		r.Email,
	))
}

func confirmationSubject(r lawncare.SupportRequest) string {
	return "Support Request Received - " + r.RequestID
}

func (s *Service) confirmationBody(r lawncare.SupportRequest) string {
	return strings.TrimSpace(fmt.Sprintf(`
Thank you for submitting your support request.

Request ID: %s
Subject: %s
Priority: %s
Submitted: %s

Our business support coordinators will review your request and respond within 24-48 hours for standard priority items, or within 4 hours for high priority items.

For urgent matters, please contact our support team directly at %s.

Best regards,
Business Support Team
`,
		r.RequestID, r.Subject, r.Priority, r.SubmittedAt.Format(time.RFC3339),
		s.coordinator,
	))
}
