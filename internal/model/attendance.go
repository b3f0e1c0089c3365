package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusAbsent   = "absent"
	StatusPresent  = "present"
	StatusVacation = "vacation"
)

// AttendanceRecord is the single daily attendance row per worker. The
// composite unique index is what every writer upserts against; nobody is
// allowed to blind-insert into this table.
type AttendanceRecord struct {
	gorm.Model
	WorkerID uint `json:"worker_id" gorm:"not null;uniqueIndex:idx_attendance_worker_date"`
	// Date is the YYYY-MM-DD business date. Kept as a plain string
	// column: a real DATE would come back as time.Time under
	// parseTime=True and mangle every string scan.
	Date   string `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_worker_date"`
	Status string `json:"status" gorm:"type:varchar(20);not null;default:'present'"`

	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`

	// Location fields are first-write-wins: once set they are never
	// overwritten, so a later timesheet submission without GPS cannot
	// erase the sign-in coordinates.
	SignInLat  *float64 `json:"sign_in_lat"`
	SignInLng  *float64 `json:"sign_in_lng"`
	SignInAddr *string  `json:"sign_in_addr" gorm:"size:255"`

	SignOutLat  *float64 `json:"sign_out_lat"`
	SignOutLng  *float64 `json:"sign_out_lng"`
	SignOutAddr *string  `json:"sign_out_addr" gorm:"size:255"`

	Worker Worker `json:"-" gorm:"foreignKey:WorkerID"`
}

// Location is a GPS fix plus optional reverse-geocoded address, as
// reported by the mobile client.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}
