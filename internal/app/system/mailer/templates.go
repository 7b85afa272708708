// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// ReceiptData holds data for the donation receipt email.
type ReceiptData struct {
	SiteName      string
	DonorName     string
	Amount        float64
	Currency      string
	TransactionID string
	DonatedAt     time.Time
}

// BuildReceiptEmail creates a donation receipt with both HTML and text bodies.
func BuildReceiptEmail(data ReceiptData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  fmt.Sprintf("Thank you for your donation to %s", data.SiteName),
		TextBody: buildReceiptText(data),
		HTMLBody: buildReceiptHTML(data),
	}
}

func buildReceiptText(data ReceiptData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Dear %s,\n\n", data.DonorName))
	buf.WriteString(fmt.Sprintf("Thank you for your generous donation of %s %.2f to %s.\n\n",
		data.Currency, data.Amount, data.SiteName))
	buf.WriteString(fmt.Sprintf("Transaction ID: %s\n", data.TransactionID))
	buf.WriteString(fmt.Sprintf("Date: %s\n\n", data.DonatedAt.Format("2 January 2006")))
	buf.WriteString("Your support makes our work possible.\n")
	return buf.String()
}

func buildReceiptHTML(data ReceiptData) string {
	tmpl := template.Must(template.New("receipt").Parse(receiptHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, struct {
		ReceiptData
		AmountFmt string
		DateFmt   string
	}{data, fmt.Sprintf("%.2f", data.Amount), data.DonatedAt.Format("2 January 2006")})
	return buf.String()
}

const receiptHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Donation Receipt</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #047857;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151;">Dear {{.DonorName}},</p>
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Thank you for your generous donation of
                <strong>{{.Currency}} {{.AmountFmt}}</strong>.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6; border-radius: 8px;">
                <tr>
                  <td style="padding: 16px 24px; font-size: 14px; color: #6b7280;">
                    Transaction ID: <span style="font-family: 'Courier New', monospace; color: #1f2937;">{{.TransactionID}}</span><br>
                    Date: {{.DateFmt}}
                  </td>
                </tr>
              </table>
              <p style="margin: 24px 0 0; font-size: 14px; color: #6b7280;">
                Your support makes our work possible.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
