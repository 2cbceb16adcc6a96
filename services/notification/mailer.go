package notification

import (
	"context"
	"fmt"
	"strings"

	"mechserve/config"
	"mechserve/models"

	"gopkg.in/gomail.v2"
)

// Mailer sends notification mail over SMTP. Delivery is attempted exactly
// once per record; there is no retry or queueing.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewMailer builds a Notifier from the SMTP configuration. It returns the
// Disabled notifier when host, from-address or recipient is missing, so a
// partially configured environment still boots.
func NewMailer(cfg config.Config) Notifier {
	if cfg.SMTPHost == "" || cfg.MailFrom == "" || cfg.AdminEmail == "" {
		return Disabled{}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
		to:     cfg.AdminEmail,
	}
}

// NotifyBooking mails the admin recipient a summary of a new booking.
func (m *Mailer) NotifyBooking(ctx context.Context, booking *models.Booking) error {
	body := bookingBody(booking)
	subject := fmt.Sprintf("New Service Booking: %s", booking.ServiceType)
	return m.send(ctx, subject, body)
}

// NotifyContact mails the admin recipient a new contact message.
func (m *Mailer) NotifyContact(ctx context.Context, contact *models.Contact) error {
	body := contactBody(contact)
	subject := fmt.Sprintf("New Contact Message: %s", contact.Subject)
	return m.send(ctx, subject, body)
}

// send performs one delivery attempt, bounded by the caller's context. The
// SMTP dial itself is not context-aware, so it runs in a goroutine and the
// context deadline wins the race on a stalled transport.
func (m *Mailer) send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send aborted: %w", ctx.Err())
	}
}

// bookingBody renders a booking into a fixed-shape message. Absent optional
// fields render as "N/A" so the recipient always sees the full layout.
func bookingBody(b *models.Booking) string {
	var sb strings.Builder
	sb.WriteString("A new service booking has been received.\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Company: %s\n", orNA(b.Company))
	fmt.Fprintf(&sb, "Location: %s\n", b.Location)
	fmt.Fprintf(&sb, "Service Type: %s\n", b.ServiceType)
	fmt.Fprintf(&sb, "Machine Type: %s\n", orNA(b.MachineType))
	fmt.Fprintf(&sb, "Machine Brand: %s\n", orNA(b.MachineBrand))
	fmt.Fprintf(&sb, "Preferred Date: %s\n", orNA(b.PreferredDate))
	fmt.Fprintf(&sb, "Preferred Time: %s\n", orNA(b.PreferredTime))
	fmt.Fprintf(&sb, "Message: %s\n", orNA(b.Message))
	fmt.Fprintf(&sb, "\nBooking ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Received At: %s\n", b.CreatedAt.Format("02 Jan 2006 15:04"))
	return sb.String()
}

func contactBody(c *models.Contact) string {
	var sb strings.Builder
	sb.WriteString("A new contact message has been received.\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", c.Name)
	fmt.Fprintf(&sb, "Email: %s\n", c.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", c.Phone)
	fmt.Fprintf(&sb, "Subject: %s\n", c.Subject)
	fmt.Fprintf(&sb, "Message: %s\n", c.Message)
	fmt.Fprintf(&sb, "\nContact ID: %s\n", c.ID)
	fmt.Fprintf(&sb, "Received At: %s\n", c.CreatedAt.Format("02 Jan 2006 15:04"))
	return sb.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
