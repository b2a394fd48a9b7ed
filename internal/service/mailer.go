package service

import (
	"errors"
	"fmt"
	"io"

	"asistencia/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// ReportMailer sends the monthly attendance CSV over SMTP. It is optional;
// without a configured mail host every send fails with ErrMailDisabled.
type ReportMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
	logger *logrus.Logger
}

var ErrMailDisabled = errors.New("mail delivery is not configured")

func NewReportMailer(cfg *config.ServerConfig) *ReportMailer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	m := &ReportMailer{
		from:   cfg.MailUser,
		to:     cfg.MailTo,
		logger: logger,
	}

	if cfg.MailHost != "" {
		m.dialer = gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}

	return m
}

// Enabled reports whether SMTP delivery is configured.
func (m *ReportMailer) Enabled() bool {
	return m.dialer != nil && m.to != ""
}

// SendMonthlyReport mails the exported CSV as an attachment.
func (m *ReportMailer) SendMonthlyReport(month, filename string, csvData []byte) error {
	if !m.Enabled() {
		return ErrMailDisabled
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Reporte de asistencia %s", month))
	msg.SetBody("text/plain", fmt.Sprintf("Se adjunta el reporte de asistencia del mes %s.", month))
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(csvData)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.WithError(err).Error("Failed to send monthly report mail")
		return err
	}

	m.logger.WithFields(logrus.Fields{
		"to":       m.to,
		"filename": filename,
	}).Info("Monthly report mailed")

	return nil
}
