package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for seminar reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for seminars starting in the next hour
	_, err := c.AddFunc("* * * * *", sendSeminarReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for seminar reminders")
}

// sendSeminarReminders mails every attendee of seminars starting in roughly
// one hour. Seminar status is never touched here.
func sendSeminarReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var seminars []models.Seminar
	err := db.DB.Preload("Host").Preload("Attendees").
		Where("status = ? AND date BETWEEN ? AND ?", models.SeminarStatusUpcoming, startWindow, endWindow).
		Find(&seminars).Error
	if err != nil {
		log.Printf("Error fetching seminars for reminders: %v", err)
		return
	}

	for _, seminar := range seminars {
		for _, attendee := range seminar.Attendees {
			if err := sendReminderEmail(&seminar, &attendee); err != nil {
				log.Printf("Failed to send reminder for seminar %d to %s: %v", seminar.ID, attendee.Email, err)
				continue
			}
			log.Printf("Sent reminder for seminar %d to %s", seminar.ID, attendee.Email)
		}
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(seminar *models.Seminar, attendee *models.User) error {
	subject := fmt.Sprintf("Reminder: Upcoming Seminar - %s", seminar.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for the seminar you registered for, starting in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Seminar:</strong> %s</li>
			<li><strong>Host:</strong> %s</li>
			<li><strong>Place:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Timing:</strong> %s - %s</li>
		</ul>
		<p>We look forward to seeing you there.</p>
		<p>Best regards,</p>
		<p>Philosophy Hub</p>
	`, attendee.Name, seminar.Title, seminar.HostName, seminar.Place,
		seminar.Date.Format("2006-01-02"), seminar.StartTime, seminar.EndTime)

	return utils.SendEmail(attendee.Email, subject, body)
}
