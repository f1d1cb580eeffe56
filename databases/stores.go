package databases

// Stores bundles every entity store so a driver can be swapped in one place
type Stores struct {
	Counselors   CounselorDatabase
	Appointments AppointmentDatabase
	Users        UserDatabase
	Admins       AdminDatabase
	Chat         ChatDatabase
	Resources    ResourceDatabase
	Helplines    HelplineDatabase
	Games        GameDatabase
}

// NewStores builds the mongo backed stores on top of db
func NewStores(db DatabaseHelper) Stores {
	return Stores{
		Counselors:   NewCounselorDatabase(db),
		Appointments: NewAppointmentDatabase(db),
		Users:        NewUserDatabase(db),
		Admins:       NewAdminDatabase(db),
		Chat:         NewChatDatabase(db),
		Resources:    NewResourceDatabase(db),
		Helplines:    NewHelplineDatabase(db),
		Games:        NewGameDatabase(db),
	}
}
