package models

import (
	"math"
	"time"
)

// Attendance statuses
const (
	StatusPresent        = "present"
	StatusAbsent         = "absent"
	StatusLate           = "late"
	StatusEarlyDeparture = "early_departure" // reserved for manual edits, never derived
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type AttendanceRecord struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	EmployeeID  uint      `gorm:"not null;index;uniqueIndex:idx_employee_date" json:"employeeId"`
	Date        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_employee_date" json:"date"`
	CheckIn     string    `gorm:"type:varchar(5)" json:"checkIn,omitempty"`
	CheckOut    string    `gorm:"type:varchar(5)" json:"checkOut,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes       string    `json:"notes,omitempty"`
	HoursWorked float64   `gorm:"not null;default:0" json:"hoursWorked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// IsCountedPresent reports whether the record counts toward presence
// (late arrivals are still present).
func (r *AttendanceRecord) IsCountedPresent() bool {
	return r.Status == StatusPresent || r.Status == StatusLate
}

// HasCheckIn reports whether a check-in has been punched.
func (r *AttendanceRecord) HasCheckIn() bool {
	return r.CheckIn != ""
}

// ComputeHours returns the elapsed hours between check-in and check-out,
// both anchored to the record's date, rounded half-up to two decimals.
func (r *AttendanceRecord) ComputeHours() float64 {
	if r.CheckIn == "" || r.CheckOut == "" {
		return 0
	}
	in, err := time.Parse(DateLayout+" "+TimeLayout, r.Date+" "+r.CheckIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(DateLayout+" "+TimeLayout, r.Date+" "+r.CheckOut)
	if err != nil {
		return 0
	}
	hours := out.Sub(in).Hours()
	return math.Floor(hours*100+0.5) / 100
}

// DeriveStatus applies the lateness rule: a check-in after the scheduled
// start is late, anything up to and including the start is present. Valid
// only because both operands are zero-padded "HH:MM".
func DeriveStatus(checkIn, scheduledStart string) string {
	if checkIn > scheduledStart {
		return StatusLate
	}
	return StatusPresent
}

// IsValid checks the fields the store requires before a create.
func (r *AttendanceRecord) IsValid() bool {
	if r.EmployeeID == 0 {
		return false
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return false
	}
	switch r.Status {
	case StatusPresent, StatusAbsent, StatusLate, StatusEarlyDeparture:
		return true
	}
	return false
}
