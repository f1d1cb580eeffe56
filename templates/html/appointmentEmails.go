package templates

import "fmt"

// Email is a rendered message ready to hand to a mailer
type Email struct {
	Subject   string
	PlainText string
	HTML      string
}

// AppointmentDetails are the values shown in appointment emails
type AppointmentDetails struct {
	Username  string
	Counselor string
	Date      string
	Time      string
}

func greeting(name string) string {
	if name == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", name)
}

// BookingConfirmation renders the email sent after an appointment is booked
func BookingConfirmation(d AppointmentDetails) Email {
	subject := "Your StressBuster appointment request"
	body := fmt.Sprintf("%s\n\nWe received your appointment request with %s on %s at %s.\n"+
		"The counselor will confirm it shortly. You can cancel anytime from My Appointments.\n\nTake care.",
		greeting(d.Username), d.Counselor, d.Date, d.Time)
	return Email{Subject: subject, PlainText: body, HTML: RenderGenericEmail(subject, body)}
}

// AppointmentReminder renders the email sent the day before an appointment
func AppointmentReminder(d AppointmentDetails) Email {
	subject := "Reminder: your counseling session is tomorrow"
	body := fmt.Sprintf("%s\n\nThis is a reminder of your session with %s tomorrow, %s at %s.\n"+
		"If you can no longer attend, please cancel so someone else can take the slot.",
		greeting(d.Username), d.Counselor, d.Date, d.Time)
	return Email{Subject: subject, PlainText: body, HTML: RenderGenericEmail(subject, body)}
}
