package services

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/gomail.v2"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/config"
)

// NotificationService sends transactional emails to members. Disabled (all
// methods become no-ops) when no sender account is configured.
type NotificationService struct {
	cfg     config.SMTPConfig
	enabled bool
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg config.SMTPConfig) *NotificationService {
	return &NotificationService{
		cfg:     cfg,
		enabled: cfg.User != "",
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

type attachment struct {
	filename string
	data     []byte
}

func (s *NotificationService) send(to, subject, htmlBody string, att *attachment) {
	if !s.enabled {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("AW SOCIETY <%s>", s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	if att != nil {
		m.Attach(att.filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(att.data)
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Email to %s failed: %v", to, err)
		return
	}
	log.Printf("Email sent to %s: %s", to, subject)
}

// NotifyTransaction emails a member about a ledger event, attaching the
// receipt PDF when one was rendered.
func (s *NotificationService) NotifyTransaction(member *models.Member, txn *models.Transaction, receiptPDF []byte) {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
			<h2 style="color: #2563eb;">Transaction Notification</h2>
			<p>Hi %s,</p>
			<p>This is to notify you about a recent transaction in your account.</p>
			<div style="background-color: #f8fafc; padding: 15px; border-radius: 8px; border: 1px solid #e2e8f0;">
				<p style="margin: 5px 0;"><strong>Type:</strong> %s</p>
				<p style="margin: 5px 0;"><strong>Amount:</strong> &#8377;%.2f</p>
				<p style="margin: 5px 0;"><strong>Description:</strong> %s</p>
				<p style="margin: 5px 0;"><strong>Transaction ID:</strong> %s</p>
			</div>
			<p>Best Regards,<br>AW SOCIETY Management</p>
		</div>`,
		member.Name, txn.Type, txn.Amount, txn.Description, txn.TransactionID)

	var att *attachment
	if len(receiptPDF) > 0 {
		att = &attachment{
			filename: fmt.Sprintf("receipt_%s.pdf", txn.TransactionID),
			data:     receiptPDF,
		}
	}
	s.send(member.Email, fmt.Sprintf("Transaction Alert & Receipt: %s", txn.Type), body, att)
}

// NotifyBonus emails a member about a credited bonus
func (s *NotificationService) NotifyBonus(member *models.Member, amount float64, description string) {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
			<h2 style="color: #059669;">Bonus Credited Successfully</h2>
			<p>Hi %s,</p>
			<p>We are happy to inform you that a bonus has been credited to your account.</p>
			<div style="background-color: #f0fdf4; padding: 15px; border-radius: 8px; border: 1px solid #dcfce7;">
				<p style="margin: 5px 0;"><strong>Bonus Amount:</strong> &#8377;%.2f</p>
				<p style="margin: 5px 0;"><strong>Reason:</strong> %s</p>
			</div>
			<p>Check your dashboard for the updated balance.</p>
			<p>Best Regards,<br>AW SOCIETY Management</p>
		</div>`,
		member.Name, amount, description)

	s.send(member.Email, "Good News: Bonus Credited!", body, nil)
}

// NotifyWelcome emails a freshly registered member
func (s *NotificationService) NotifyWelcome(member *models.Member) {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your registration is successful. We are glad to have you in our community.</p>
			<div style="background-color: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">
				<p style="margin: 5px 0;"><strong>Registration ID:</strong> %s</p>
				<p style="margin: 5px 0;"><strong>Monthly Plan:</strong> &#8377;%.2f</p>
			</div>
			<p>You can now login to your dashboard to manage your society funds and loans.</p>
			<p>Best Regards,<br>AW SOCIETY Management</p>
		</div>`,
		member.Name, member.RegNo, member.PlanAmount)

	s.send(member.Email, "Welcome to AW SOCIETY!", body, nil)
}

// NotifyReceipt emails a saved receipt to the member
func (s *NotificationService) NotifyReceipt(member *models.Member, receipt *models.Receipt) {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
			<h2>Payment Successful</h2>
			<p>Hi %s,</p>
			<p>Your payment of <strong>&#8377;%.2f</strong> for <strong>%s</strong> has been received successfully.</p>
			<p>Please find your official payment receipt attached to this email.</p>
			<p>Best Regards,<br>AW SOCIETY Management</p>
		</div>`,
		member.Name, receipt.Amount, receipt.Type)

	s.send(member.Email, fmt.Sprintf("Payment Receipt: %s", receipt.TransactionID), body, &attachment{
		filename: fmt.Sprintf("receipt_%s.pdf", receipt.TransactionID),
		data:     receipt.PDFData,
	})
}

// NotifyLoanReminder emails a member whose loan payment is coming due
func (s *NotificationService) NotifyLoanReminder(member *models.Member, daysLeft int) {
	due := ""
	if member.LoanDueAt != nil {
		due = member.LoanDueAt.Format("02/01/2006")
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; border: 1px solid #e2e8f0; border-radius: 12px; padding: 25px;">
			<h2 style="color: #2563eb;">Payment Reminder</h2>
			<p>Hi %s,</p>
			<p>This is a friendly reminder that your loan payment of <strong>&#8377;%.2f</strong> is due in <strong>%d days</strong> (%s).</p>
			<p>Please ensure timely payment to avoid late fees.</p>
			<p>Best Regards,<br>AW SOCIETY Management</p>
		</div>`,
		member.Name, member.LoanRemaining, daysLeft, due)

	s.send(member.Email, fmt.Sprintf("Reminder: Loan Payment Due in %d Days", daysLeft), body, nil)
}

// NotifyLoanOverdue emails a member whose loan has passed its due date
func (s *NotificationService) NotifyLoanOverdue(member *models.Member) {
	due := ""
	if member.LoanDueAt != nil {
		due = member.LoanDueAt.Format("02/01/2006")
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; border: 1px solid #fda4af; border-radius: 12px; padding: 25px; background-color: #fff1f2;">
			<h2 style="color: #e11d48;">Payment Overdue</h2>
			<p>Hi %s,</p>
			<p>Your loan payment of <strong>&#8377;%.2f</strong> was due on %s and is now <strong>OVERDUE</strong>.</p>
			<p style="color: #e11d48; font-weight: bold;">Note: Late payment charges and interest will be applied to your account.</p>
			<p>Please settle the amount immediately to restore your account status.</p>
			<p>Best Regards,<br>AW SOCIETY Management</p>
		</div>`,
		member.Name, member.LoanRemaining, due)

	s.send(member.Email, "URGENT: Loan Payment Overdue", body, nil)
}
