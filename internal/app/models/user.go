package models

import "time"

// User is a mobile-number identity. Login upserts the row.
type User struct {
	ID           int64     `json:"id" db:"id"`
	MobileNumber string    `json:"mobileNumber" db:"mobile_number"`
	Name         string    `json:"name" db:"name"`
	FCMToken     string    `json:"fcmToken" db:"fcm_token"`
	TimeZone     string    `json:"timeZone" db:"time_zone"`
	Image        string    `json:"image" db:"image"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Admin is a seeded back-office account.
type Admin struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Reporter is a field-reporter application tied to a user account.
type Reporter struct {
	ID           int64          `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	State        string         `json:"state" db:"state"`
	District     string         `json:"district" db:"district"`
	Constituency string         `json:"constituency" db:"constituency"`
	Mandal       string         `json:"mandal" db:"mandal"`
	Status       ReporterStatus `json:"status" db:"status"`
	UserID       int64          `json:"userId" db:"user_id"`
	Image        string         `json:"image" db:"image"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}
