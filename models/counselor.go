package models

// Counselor holds the structure for the counselors collection
type Counselor struct {
	ID                 string   `json:"id" bson:"_id"`
	Name               string   `json:"name" bson:"name"`
	Specialization     string   `json:"specialization" bson:"specialization"`
	Qualification      string   `json:"qualification" bson:"qualification"`
	ExperienceYears    int      `json:"experience_years" bson:"experienceYears"`
	Email              string   `json:"email,omitempty" bson:"email,omitempty"`
	Phone              string   `json:"phone,omitempty" bson:"phone,omitempty"`
	AvailableDays      []string `json:"available_days" bson:"availableDays"`
	AvailableTimeStart string   `json:"available_time_start" bson:"availableTimeStart"`
	AvailableTimeEnd   string   `json:"available_time_end" bson:"availableTimeEnd"`
	Rating             float64  `json:"rating" bson:"rating"`
	TotalSessions      int      `json:"total_sessions" bson:"totalSessions"`
	IsActive           bool     `json:"is_active" bson:"isActive"`
}
