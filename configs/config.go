package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost               string
	DBPort               int
	DBUser               string
	DBPassword           string
	DBName               string
	DBNameTest           string
	JWTSecret            string
	Port                 int
	AdminDefaultPassword string
	Roster               []string
}

// defaultRoster adalah daftar nama karyawan bawaan,
// dipakai jika EMPLOYEE_ROSTER tidak di-set.
var defaultRoster = []string{
	"Ayyappan", "Aditya", "Purushoth", "Karthik", "Sanjay", "Haripriya", "Mahalakshmi",
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// ParseRoster memecah daftar nama yang dipisahkan koma menjadi slice.
func ParseRoster(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultRoster
	}
	var roster []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			roster = append(roster, name)
		}
	}
	if len(roster) == 0 {
		return defaultRoster
	}
	return roster
}

func LoadConfig() Config {
	// Muat file .env
	if err := godotenv.Load(); err != nil {
		// Hanya log jika tidak dalam mode test
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 5000
	}

	return Config{
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               dbPort,
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "aru_research"),
		DBNameTest:           getEnv("DB_NAME_TEST", "aru_research_test"),
		JWTSecret:            getEnv("JWT_SECRET", "your_jwt_secret"),
		Port:                 port,
		AdminDefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", "Admin1234"),
		Roster:               ParseRoster(os.Getenv("EMPLOYEE_ROSTER")),
	}
}
