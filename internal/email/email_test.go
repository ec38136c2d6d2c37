package email

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"eizer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	m := NewMailer()

	assert.True(t, m.Send("admin@example.com", "Subject", "<p>body</p>"))
	assert.False(t, m.Send("", "Subject", "<p>body</p>"))
	assert.False(t, m.Send("admin@example.com", "", "<p>body</p>"))
}

func TestSendPreviewKeepsRunesIntact(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	m := NewMailer()

	// a long Hebrew body forces truncation inside multi-byte characters
	body := strings.Repeat("א", 150)
	assert.True(t, m.Send("admin@example.com", "Subject", body))
	assert.True(t, utf8.ValidString(buf.String()))
	assert.Contains(t, buf.String(), strings.Repeat("א", 100)+"...")
}

func TestNotifyAdminNewRedemption(t *testing.T) {
	m := NewMailer()
	assert.True(t, m.NotifyAdminNewRedemption("admin@example.com", "Chaim Katz", "100.00", 7))
}

func TestNotifyFundraiserStatusChange(t *testing.T) {
	m := NewMailer()

	for _, status := range []models.RedemptionStatus{
		models.RedemptionApproved,
		models.RedemptionReleased,
		models.RedemptionRejected,
	} {
		assert.True(t, m.NotifyFundraiserStatusChange("f@example.com", "Chaim Katz", status, "50.00", 3), "status=%s", status)
	}

	// pending has no fundraiser-facing message
	assert.False(t, m.NotifyFundraiserStatusChange("f@example.com", "Chaim Katz", models.RedemptionPending, "50.00", 3))
}

func TestNotifyAdminMachineReturned(t *testing.T) {
	m := NewMailer()
	assert.True(t, m.NotifyAdminMachineReturned("admin@example.com", "Chaim Katz", "Verifone T650", "B123"))
}
