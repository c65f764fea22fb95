package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/hireai/hireai/config"
	"github.com/hireai/hireai/internal/model"
	"github.com/rs/zerolog/log"
)

// MailerService sends candidate notifications. Sends are best-effort: a
// failure is logged and never blocks the pipeline operation that triggered it.
type MailerService interface {
	SendAptitudeInvite(candidate *model.Candidate, date, timeSlot string)
	SendOfferNotification(candidate *model.Candidate)
}

type smtpMailerService struct {
	cfg *config.Config
}

func NewMailerService(cfg *config.Config) MailerService {
	if cfg.Mail.SMTPHost == "" {
		log.Warn().Msg("SMTP_HOST is not set. Mailer runs in mock mode.")
	}
	return &smtpMailerService{cfg: cfg}
}

func (s *smtpMailerService) SendAptitudeInvite(candidate *model.Candidate, date, timeSlot string) {
	key := ""
	if candidate.AccessKey != nil {
		key = *candidate.AccessKey
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour aptitude test for the %s role is scheduled on %s at %s.\nUse your access key %s to log in at the scheduled time.\n",
		candidate.Name, candidate.Role, date, timeSlot, key)
	s.send(candidate.Email, "Aptitude Test Scheduled", body)
}

func (s *smtpMailerService) SendOfferNotification(candidate *model.Candidate) {
	body := fmt.Sprintf(
		"Hi %s,\n\nCongratulations! Your offer letter for the %s role is ready.\nLog in with your access key to view and accept it.\n",
		candidate.Name, candidate.Role)
	s.send(candidate.Email, "Your Offer Letter", body)
}

func (s *smtpMailerService) send(to, subject, body string) {
	if s.cfg.Mail.SMTPHost == "" {
		log.Info().Str("to", to).Str("subject", subject).Msg("Mock mail (SMTP not configured)")
		return
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.Mail.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := s.cfg.Mail.SMTPHost + ":" + s.cfg.Mail.SMTPPort
	auth := smtp.PlainAuth("", s.cfg.Mail.Username, s.cfg.Mail.Password, s.cfg.Mail.SMTPHost)
	if err := smtp.SendMail(addr, auth, s.cfg.Mail.From, []string{to}, []byte(msg)); err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send mail")
		return
	}
	log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")
}
