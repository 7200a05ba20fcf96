package messaging

import (
	"fmt"
	"strings"
	"time"

	"coden/models"
)

// TemplateData carries everything the templates may interpolate.
type TemplateData struct {
	CustomerName string
	BookingID    string
	CheckInCode  string
	AreaName     string
	StartTime    time.Time
	Duration     int // minutes
	Amount       int64
	PaymentURL   string
	Username     string
	Password     string
}

// FormatIDR renders an amount the way receipts print it, e.g. "Rp 150.000".
func FormatIDR(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "Rp " + strings.Join(parts, ".")
}

// Render produces the message body for a template type.
func Render(templateType string, d TemplateData) (string, error) {
	switch templateType {
	case models.NotifyCheckInCode:
		return renderCheckInCode(d), nil
	case models.NotifyInternetCredentials:
		return renderInternetCredentials(d), nil
	case models.NotifyPaymentReminder:
		return renderPaymentReminder(d), nil
	case models.NotifyBookingConfirmation:
		return renderBookingConfirmation(d), nil
	case models.NotifyThankYou:
		return renderThankYou(d), nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", templateType)
	}
}

func renderCheckInCode(d TemplateData) string {
	return strings.TrimSpace(fmt.Sprintf(`*CODEN by Gutes - Check-in Info*

Halo %s!

Booking ID: %s
Kode Check-in: *%s*

Tunjukkan kode ini ke staff saat tiba di CODEN. Selamat bekerja produktif!`,
		d.CustomerName, d.BookingID, d.CheckInCode))
}

func renderInternetCredentials(d TemplateData) string {
	return strings.TrimSpace(fmt.Sprintf(`*CODEN - Akses Internet Aktif*

Halo %s!

Username: *%s*
Password: *%s*

Pilih WiFi "CODEN-Guest" dan masukkan data di atas. Happy working!`,
		d.CustomerName, d.Username, d.Password))
}

func renderPaymentReminder(d TemplateData) string {
	msg := fmt.Sprintf(`*CODEN - Reminder Pembayaran*

Halo %s!

Pembayaran booking Anda sebesar *%s* belum selesai.`,
		d.CustomerName, FormatIDR(d.Amount))
	if d.PaymentURL != "" {
		msg += fmt.Sprintf("\n\nLink Pembayaran: %s", d.PaymentURL)
	}
	msg += "\n\nSilakan selesaikan pembayaran untuk mengaktifkan booking Anda."
	return msg
}

func renderBookingConfirmation(d TemplateData) string {
	return strings.TrimSpace(fmt.Sprintf(`*CODEN - Booking Confirmed*

Halo %s!

Area: %s
Tanggal: %s
Durasi: %d menit
Total: %s

Gunakan kode check-in Anda saat tiba di lokasi. Sampai jumpa di CODEN!`,
		d.CustomerName, d.AreaName, d.StartTime.Format("2 January 2006 15:04"), d.Duration, FormatIDR(d.Amount)))
}

func renderThankYou(d TemplateData) string {
	return strings.TrimSpace(fmt.Sprintf(`*Terima Kasih - CODEN by Gutes*

Halo %s!

Terima kasih telah menggunakan fasilitas CODEN hari ini. Sampai jumpa lagi!`,
		d.CustomerName))
}
