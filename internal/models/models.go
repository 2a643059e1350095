package models

import (
	"time"
)

// Employee adalah satu baris absensi/penghasilan untuk satu karyawan pada satu tanggal.
// Pasangan (name, date) dijamin unik oleh constraint di database.
type Employee struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Date           string    `json:"date"` // YYYY-MM-DD
	WorkStart      string    `json:"workStart"`
	WorkEnd        string    `json:"workEnd"`
	TasksCompleted int       `json:"tasksCompleted"`
	DailyEarnings  float64   `json:"dailyEarnings"`
	Incentives     float64   `json:"incentives"`
	Advances       float64   `json:"advances"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Project struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	SampleSize     int       `json:"sampleSize"`
	SampleAchieved int       `json:"sampleAchieved"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
