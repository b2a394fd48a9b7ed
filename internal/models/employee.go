package models

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"
)

type EmployeeStatus string

const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// WorkDays is stored as a comma separated list, e.g. "monday,tuesday".
type WorkDays []string

func (d WorkDays) Value() (driver.Value, error) {
	return strings.Join(d, ","), nil
}

func (d *WorkDays) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			*d = WorkDays{}
			return nil
		}
		*d = WorkDays(strings.Split(v, ","))
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = WorkDays{}
		return nil
	}
	return errors.New("unsupported work days value")
}

// WorkSchedule holds the scheduled day. Times are zero-padded "HH:MM"
// strings on a 24-hour clock so they compare lexicographically.
type WorkSchedule struct {
	StartTime string   `gorm:"type:varchar(5);not null;default:'09:00'" json:"startTime"`
	EndTime   string   `gorm:"type:varchar(5);not null;default:'18:00'" json:"endTime"`
	WorkDays  WorkDays `gorm:"type:text" json:"workDays"`
}

type Employee struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	Name       string       `gorm:"not null" json:"name"`
	Email      string       `json:"email"`
	Department string       `gorm:"index" json:"department"`
	Position   string       `json:"position"`
	Code       string       `gorm:"uniqueIndex;not null" json:"employeeId"`
	Phone      string       `json:"phone"`
	HireDate   string       `gorm:"type:varchar(10)" json:"hireDate"`
	Status     string       `gorm:"type:varchar(10);default:'active'" json:"status"`
	Schedule   WorkSchedule `gorm:"embedded;embeddedPrefix:schedule_" json:"workSchedule"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsActive reports whether the employee is currently on the roster.
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeActive
}

// IsValid checks the fields the store requires before a create.
func (e *Employee) IsValid() bool {
	if e.Name == "" {
		return false
	}
	if e.Code == "" {
		return false
	}
	if e.Status != EmployeeActive && e.Status != EmployeeInactive {
		return false
	}
	if len(e.Schedule.StartTime) != 5 || len(e.Schedule.EndTime) != 5 {
		return false
	}
	return true
}

// EmployeeUpdate carries a partial update; nil fields are left untouched.
type EmployeeUpdate struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Department *string   `json:"department"`
	Position   *string   `json:"position"`
	Code       *string   `json:"employeeId"`
	Phone      *string   `json:"phone"`
	HireDate   *string   `json:"hireDate"`
	Status     *string   `json:"status"`
	StartTime  *string   `json:"startTime"`
	EndTime    *string   `json:"endTime"`
	WorkDays   *WorkDays `json:"workDays"`
}

// Apply merges the non-nil fields into the employee.
func (u *EmployeeUpdate) Apply(e *Employee) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	if u.Code != nil {
		e.Code = *u.Code
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.HireDate != nil {
		e.HireDate = *u.HireDate
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.StartTime != nil {
		e.Schedule.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		e.Schedule.EndTime = *u.EndTime
	}
	if u.WorkDays != nil {
		e.Schedule.WorkDays = *u.WorkDays
	}
}
