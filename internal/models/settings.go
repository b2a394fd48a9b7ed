package models

// Settings is the in-memory settings document. It is edited through the
// settings service and intentionally never persisted; saving only replaces
// the document for the lifetime of the process.
type Settings struct {
	WorkingHours  WorkingHoursSettings `json:"workingHours"`
	Notifications NotificationSettings `json:"notifications"`
	Attendance    AttendanceSettings   `json:"attendance"`
	Company       CompanySettings      `json:"company"`
}

type WorkingHoursSettings struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	LunchBreak int    `json:"lunchBreak"` // minutes
}

type NotificationSettings struct {
	LateArrival    bool `json:"lateArrival"`
	EarlyDeparture bool `json:"earlyDeparture"`
	Absence        bool `json:"absence"`
	EmailReports   bool `json:"emailReports"`
}

type AttendanceSettings struct {
	// GraceTime is held for the settings panel but is not consulted by the
	// check-in rule, which compares against the scheduled start directly.
	GraceTime    int  `json:"graceTime"` // minutes
	AutoCheckout bool `json:"autoCheckout"`
	RequireNotes bool `json:"requireNotes"`
}

type CompanySettings struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
}

// DefaultSettings mirrors the values the dashboard boots with.
func DefaultSettings() Settings {
	return Settings{
		WorkingHours: WorkingHoursSettings{
			Start:      "09:00",
			End:        "18:00",
			LunchBreak: 60,
		},
		Notifications: NotificationSettings{
			LateArrival:    true,
			EarlyDeparture: true,
			Absence:        true,
			EmailReports:   false,
		},
		Attendance: AttendanceSettings{
			GraceTime:    15,
			AutoCheckout: false,
			RequireNotes: false,
		},
		Company: CompanySettings{
			Name:     "Mi Empresa",
			Timezone: "America/Mexico_City",
			Currency: "MXN",
		},
	}
}
