package notify

import (
	"fmt"
	"strings"

	"fieldops-backend/config"
	"fieldops-backend/internal/sweep"

	"gopkg.in/gomail.v2"
)

// Mailer emails the nightly sweep report to the site supervisor. Mail is
// best-effort; a send failure is the caller's to log, never to retry the
// sweep over.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailerFromEnv() *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(
			host,
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
		),
		from: config.GetEnv("SMTP_FROM", "fieldops@localhost"),
		to:   config.GetEnv("SUPERVISOR_EMAIL", ""),
	}
}

func (m *Mailer) SendSweepReport(report *sweep.Report) error {
	if m == nil || m.to == "" {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Midnight sweep for %s\n\n", report.AsOfDate)
	fmt.Fprintf(&body, "Closed sessions: %d\n", report.ClosedSessions)
	fmt.Fprintf(&body, "Affected workers: %d\n", len(report.AffectedWorkers))
	if len(report.Failures) > 0 {
		fmt.Fprintf(&body, "\nFailures (retried next run):\n")
		for _, f := range report.Failures {
			fmt.Fprintf(&body, "  - %s\n", f)
		}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Sweep report %s (%d closed)", report.AsOfDate, report.ClosedSessions))
	msg.SetBody("text/plain", body.String())

	return m.dialer.DialAndSend(msg)
}
