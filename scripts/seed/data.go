package main

import "github.com/stressbuster/stressbuster-api/models"

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var counselors = []models.Counselor{
	{
		Name:               "Dr. Sarah Johnson",
		Specialization:     "Anxiety & Depression",
		Qualification:      "PhD in Clinical Psychology",
		ExperienceYears:    12,
		Email:              "sarah.johnson@stressbuster.com",
		Phone:              "+91-9876543210",
		AvailableDays:      weekdays,
		AvailableTimeStart: "09:00:00",
		AvailableTimeEnd:   "17:00:00",
		Rating:             4.8,
		IsActive:           true,
	},
	{
		Name:               "Dr. Michael Chen",
		Specialization:     "Stress Management",
		Qualification:      "MD Psychiatry",
		ExperienceYears:    8,
		Email:              "michael.chen@stressbuster.com",
		Phone:              "+91-9876543211",
		AvailableDays:      []string{"Monday", "Wednesday", "Friday"},
		AvailableTimeStart: "10:00:00",
		AvailableTimeEnd:   "18:00:00",
		Rating:             4.7,
		IsActive:           true,
	},
	{
		Name:               "Dr. Priya Sharma",
		Specialization:     "Relationship Counseling",
		Qualification:      "MSc Psychology, Licensed Therapist",
		ExperienceYears:    10,
		Email:              "priya.sharma@stressbuster.com",
		Phone:              "+91-9876543212",
		AvailableDays:      []string{"Tuesday", "Thursday", "Saturday"},
		AvailableTimeStart: "09:00:00",
		AvailableTimeEnd:   "16:00:00",
		Rating:             4.9,
		IsActive:           true,
	},
	{
		Name:               "Dr. James Williams",
		Specialization:     "Trauma & PTSD",
		Qualification:      "PhD Clinical Psychology",
		ExperienceYears:    15,
		Email:              "james.williams@stressbuster.com",
		Phone:              "+91-9876543213",
		AvailableDays:      weekdays,
		AvailableTimeStart: "08:00:00",
		AvailableTimeEnd:   "16:00:00",
		Rating:             4.6,
		IsActive:           true,
	},
	{
		Name:               "Dr. Anita Patel",
		Specialization:     "Child & Adolescent Therapy",
		Qualification:      "MD Child Psychiatry",
		ExperienceYears:    7,
		Email:              "anita.patel@stressbuster.com",
		Phone:              "+91-9876543214",
		AvailableDays:      []string{"Monday", "Wednesday", "Friday", "Saturday"},
		AvailableTimeStart: "10:00:00",
		AvailableTimeEnd:   "17:00:00",
		Rating:             4.8,
		IsActive:           true,
	},
}

var helplines = []models.Helpline{
	{
		Name:            "Tele MANAS",
		Phone:           "14416",
		Description:     "National tele mental health programme",
		Category:        "mental_health",
		AvailableHours:  "24/7",
		LanguageSupport: "Multiple Indian languages",
		IsTollFree:      true,
		CountryCode:     "IN",
		DisplayOrder:    1,
		IsActive:        true,
	},
	{
		Name:            "KIRAN Mental Health Rehabilitation",
		Phone:           "1800-599-0019",
		Description:     "Government mental health rehabilitation helpline",
		Category:        "mental_health",
		AvailableHours:  "24/7",
		LanguageSupport: "13 languages",
		IsTollFree:      true,
		CountryCode:     "IN",
		DisplayOrder:    2,
		IsActive:        true,
	},
	{
		Name:            "iCall Psychosocial Helpline",
		Phone:           "9152987821",
		Description:     "Counseling by trained mental health professionals",
		Category:        "counseling",
		AvailableHours:  "Mon-Sat, 10 AM - 8 PM",
		LanguageSupport: "English, Hindi, Marathi",
		CountryCode:     "IN",
		DisplayOrder:    3,
		IsActive:        true,
	},
	{
		Name:            "Emergency Services",
		Phone:           "112",
		Description:     "Police, fire and ambulance",
		Category:        "emergency",
		AvailableHours:  "24/7",
		LanguageSupport: "All",
		IsTollFree:      true,
		CountryCode:     "IN",
		DisplayOrder:    4,
		IsActive:        true,
	},
}

var categories = []models.ResourceCategory{
	{Name: "Stress Management", Description: "Techniques to handle everyday stress", Icon: "leaf", DisplayOrder: 1},
	{Name: "Anxiety", Description: "Understanding and easing anxious thoughts", Icon: "cloud", DisplayOrder: 2},
	{Name: "Depression", Description: "Recognising low mood and finding support", Icon: "sun", DisplayOrder: 3},
	{Name: "Sleep", Description: "Better sleep habits and relaxation", Icon: "moon", DisplayOrder: 4},
	{Name: "Mindfulness", Description: "Guided meditation and breathing exercises", Icon: "heart", DisplayOrder: 5},
}
