package model

import "gorm.io/gorm"

const (
	RoleWorker     = "worker"
	RoleForeman    = "foreman"
	RoleSupervisor = "supervisor"
)

type Worker struct {
	gorm.Model
	Name string `json:"name"`
	// NameKey is the lowercased form of Name; the unique index on it is
	// what makes display names case-insensitively unique. Name resolution
	// happens once at the boundary, every other table keys on Worker.ID.
	NameKey string `json:"-" gorm:"column:name_key;unique;not null"`
	Role    string `json:"role" gorm:"default:'worker'"`
	PIN     string `json:"-" gorm:"column:pin"` // bcrypt hash
	Phone   string `json:"phone"`
	Photo   string `json:"photo"`

	Attendance []AttendanceRecord `json:"-" gorm:"foreignKey:WorkerID"`
	Sessions   []SignInSession    `json:"-" gorm:"foreignKey:WorkerID"`
	Timesheets []TimesheetEntry   `json:"-" gorm:"foreignKey:WorkerID"`
	Vacations  []VacationPeriod   `json:"-" gorm:"foreignKey:WorkerID"`
}
