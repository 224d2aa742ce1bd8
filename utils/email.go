package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

// SendEmail dispatches an HTML mail over SMTP. It is a variable so tests
// can stub out the transport.
var SendEmail = func(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// OTPMailBody renders the verification mail for a plaintext code.
func OTPMailBody(code string) string {
	return fmt.Sprintf(`
		<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif;">
			<h1 style="color: #1f2937;">Verify Your Email</h1>
			<p style="color: #4b5563;">Your verification code is:</p>
			<div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; text-align: center;">
				<span style="font-size: 24px; font-weight: bold; letter-spacing: 5px; color: #2563eb;">%s</span>
			</div>
			<p style="color: #4b5563;">This code will expire in 5 minutes.</p>
			<p style="color: #4b5563; font-size: 12px;">If you didn't request this code, please ignore this email.</p>
		</div>
	`, code)
}
