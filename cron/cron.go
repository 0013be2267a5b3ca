package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Every evening at 18:00, remind patients booked for tomorrow
	_, err := c.AddFunc("0 18 * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders mails every patient with an appointment tomorrow.
// Cancelled slots and patients without an email address are skipped.
func sendAppointmentReminders() {
	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := db.DB.Preload("Patient").
		Where("date = ? AND statut IN ?", tomorrow,
			[]models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}).
		Order("heure_debut asc").
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	fmt.Printf("Found %d appointments for reminders\n", len(appointments))

	for _, appointment := range appointments {
		if appointment.Patient.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := "Rappel: rendez-vous demain"
	body := fmt.Sprintf(`
		<p>Bonjour %s %s,</p>
		<p>Nous vous rappelons votre rendez-vous au cabinet demain.</p>
		<p><strong>Détails:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Heure:</strong> %s - %s</li>
			<li><strong>Motif:</strong> %s</li>
		</ul>
		<p>En cas d'empêchement, merci de nous prévenir au plus tôt.</p>
		<p>Cordialement,</p>
		<p>Le Cabinet</p>
	`, appointment.Patient.Prenom, appointment.Patient.Nom,
		appointment.Date.Format("02/01/2006"),
		appointment.HeureDebut, appointment.HeureFin,
		appointment.Motif)

	return utils.SendEmail(appointment.Patient.Email, subject, body)
}
