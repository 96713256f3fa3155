package utils

import (
	"dimensions/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		fmt.Println("Email sender not configured, skipping email to", to)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learning Plans <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by plan notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; margin: 0; padding: 24px;">
		<div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
			<h2 style="color: #1d2433; margin-top: 0;">%s</h2>
			<div style="color: #3e4757; font-size: 14px; line-height: 1.6;">%s</div>
			<p style="color: #8a94a6; font-size: 12px; margin-top: 32px;">
				You received this email because a learning plan you own was updated.
			</p>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendCommentNotification emails the plan owner about a new comment
func SendCommentNotification(toEmail, planName, authorName, content string) error {
	if toEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("New comment on your plan \"%s\"", planName)
	body := fmt.Sprintf(
		"<p><strong>%s</strong> commented on your learning plan <strong>%s</strong>:</p><blockquote>%s</blockquote>",
		authorName, planName, content,
	)

	return SendEmail([]string{toEmail}, subject, getEmailTemplate(subject, body))
}
