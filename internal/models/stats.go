package models

// AttendanceStats is the dashboard summary for one day. It is never
// persisted; it is recomputed from the collections on demand.
type AttendanceStats struct {
	TotalEmployees int     `json:"totalEmployees"`
	PresentToday   int     `json:"presentToday"`
	AbsentToday    int     `json:"absentToday"`
	LateToday      int     `json:"lateToday"`
	AverageHours   float64 `json:"averageHours"`
}

// DayAttendance is one bar of the monthly per-day report series.
type DayAttendance struct {
	Date    string `json:"date"` // dd/mm label
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	Total   int    `json:"total"`
}

// DepartmentStats is the per-department attendance rate for a month.
type DepartmentStats struct {
	Name           string `json:"name"`
	Employees      int    `json:"employees"`
	AttendanceRate int    `json:"attendanceRate"` // percent, 0..100
	TotalDays      int    `json:"totalDays"`
	PresentDays    int    `json:"presentDays"`
}

// StatusCount is one slice of the monthly status breakdown. Statuses with
// a zero count are omitted from the series.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
