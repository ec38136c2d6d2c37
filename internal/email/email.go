package email

import (
	"fmt"
	"log"
	"strings"

	"eizer/internal/models"
)

// Mailer formats and logs notifications. No real transport is wired in;
// a replacement transport must keep sends best-effort so a failing
// notification can never fail the mutation that triggered it.
type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

// Send logs the message and reports success. It only returns false when
// the message itself cannot be formatted.
func (m *Mailer) Send(to, subject, htmlBody string) bool {
	if to == "" || subject == "" {
		log.Printf("[email] dropping malformed message (to=%q subject=%q)", to, subject)
		return false
	}

	preview := htmlBody
	// truncate on rune boundaries so multi-byte names are never split
	if runes := []rune(preview); len(runes) > 100 {
		preview = string(runes[:100]) + "..."
	}
	log.Printf("[email] to: %s", to)
	log.Printf("[email] subject: %s", subject)
	log.Printf("[email] content: %s", preview)
	return true
}

// NotifyAdminNewRedemption tells the admin a redemption request was
// submitted.
func (m *Mailer) NotifyAdminNewRedemption(adminEmail, fundraiserName, amount string, requestID uint) bool {
	body := fmt.Sprintf(`
		<h2>New Redemption Request</h2>
		<p>A new redemption request has been submitted:</p>
		<ul>
			<li><strong>Fundraiser:</strong> %s</li>
			<li><strong>Amount:</strong> $%s</li>
			<li><strong>Request ID:</strong> %d</li>
		</ul>
		<p>Please log in to the admin portal to review and process this request.</p>
	`, fundraiserName, amount, requestID)

	return m.Send(adminEmail, fmt.Sprintf("New Redemption Request from %s", fundraiserName), body)
}

var statusMessages = map[models.RedemptionStatus]string{
	models.RedemptionApproved: "Your redemption request has been approved and is being processed.",
	models.RedemptionReleased: "Your check has been released! You should receive it shortly.",
	models.RedemptionRejected: "Unfortunately, your redemption request has been rejected.",
}

// NotifyFundraiserStatusChange tells a fundraiser their request moved to
// approved, released or rejected. Other statuses have no message and are
// not sent.
func (m *Mailer) NotifyFundraiserStatusChange(fundraiserEmail, fundraiserName string, status models.RedemptionStatus, amount string, requestID uint) bool {
	message, ok := statusMessages[status]
	if !ok {
		return false
	}

	title := titleCase(string(status))
	body := fmt.Sprintf(`
		<h2>Redemption Request Status Update</h2>
		<p>Hi %s,</p>
		<p>%s</p>
		<ul>
			<li><strong>Amount:</strong> $%s</li>
			<li><strong>Status:</strong> %s</li>
			<li><strong>Request ID:</strong> %d</li>
		</ul>
		<p>Log in to your fundraiser portal to view more details.</p>
	`, fundraiserName, message, amount, title, requestID)

	return m.Send(fundraiserEmail, fmt.Sprintf("Redemption Request %s - Request #%d", title, requestID), body)
}

// NotifyAdminMachineReturned tells the admin a credit card machine came back.
func (m *Mailer) NotifyAdminMachineReturned(adminEmail, fundraiserName, machineName, batchNumber string) bool {
	body := fmt.Sprintf(`
		<h2>Credit Card Machine Returned</h2>
		<p>A credit card machine has been returned:</p>
		<ul>
			<li><strong>Fundraiser:</strong> %s</li>
			<li><strong>Machine:</strong> %s</li>
			<li><strong>Batch Number:</strong> %s</li>
		</ul>
		<p>Please log in to the admin portal to process this return.</p>
	`, fundraiserName, machineName, batchNumber)

	return m.Send(adminEmail, fmt.Sprintf("Machine Returned - %s", machineName), body)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
