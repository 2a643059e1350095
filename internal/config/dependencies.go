package config

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
)

var (
	// Global dependency yang akan digunakan di seluruh aplikasi
	DB                   *sql.DB
	SecretKey            = []byte("your_jwt_secret")
	Validate             = validator.New()
	Roster               []string
	AdminDefaultPassword = "Admin1234"
)

// InRoster memeriksa apakah nama termasuk daftar karyawan yang diizinkan.
func InRoster(name string) bool {
	for _, allowed := range Roster {
		if allowed == name {
			return true
		}
	}
	return false
}
