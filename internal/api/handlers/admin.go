package handlers

import (
	"database/sql"
	"time"

	"aru-research/internal/config"
	"aru-research/internal/models"
	"aru-research/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Admin handlers

// Login memeriksa password admin tunggal dan menerbitkan token JWT 1 jam.
// Jika admin belum ada, admin default dibuat dulu dan caller diminta mencoba lagi.
func Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in admin login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during admin login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Cari admin tunggal berdasarkan username tetap 'admin'
	var admin models.Admin
	err := config.DB.QueryRow(
		"SELECT id, username, password FROM admins WHERE username = $1", "admin",
	).Scan(&admin.ID, &admin.Username, &admin.Password)
	if err == sql.ErrNoRows {
		// Bootstrap: buat admin default jika belum ada
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(config.AdminDefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Error hashing password"})
		}
		if _, err := config.DB.Exec(
			"INSERT INTO admins (username, password) VALUES ($1, $2)",
			"admin", string(hashedPassword)); err != nil {
			logger.ErrorLogger.Error("Error creating default admin", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Error creating default admin"})
		}
		logger.AuditLogger.Info("Default admin created")
		return c.Status(400).JSON(fiber.Map{"error": "Default admin created. Please try again."})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching admin", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching admin"})
	}

	// admin.Password -> hash yang ada di database
	// req.Password -> password yang dikirimkan oleh caller
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		logger.SecurityLogger.Warn("Invalid admin password")
		return c.Status(401).JSON(fiber.Map{"error": "Invalid password."})
	}

	// Token JWT berisi id, role, dan exp (1 jam)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   admin.ID,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 1).Unix(),
	})

	tokenString, err := token.SignedString(config.SecretKey)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error generating token"})
	}

	logger.AuditLogger.Info("Admin login success", zap.Int("admin_id", admin.ID))
	return c.JSON(fiber.Map{"message": "Login successful!", "token": tokenString})
}

// UpdateEmployee menambahkan insentif/kasbon pada record karyawan hari ini.
// Record dibuat jika belum ada; jumlahnya diakumulasi, bukan ditimpa.
func UpdateEmployee(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	if role != "admin" {
		logger.SecurityLogger.Warn("Forbidden employee adjustment", zap.String("role", role))
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin only."})
	}

	// pointer (*) untuk menandakan bahwa field bisa kosong
	type UpdateEmployeeRequest struct {
		Name            string   `json:"name" validate:"required"`
		IncentiveAmount *float64 `json:"incentiveAmount" validate:"omitempty,gte=0"`
		AdvanceAmount   *float64 `json:"advanceAmount" validate:"omitempty,gte=0"`
	}

	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update employee", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during update employee", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if !config.InRoster(req.Name) {
		logger.SecurityLogger.Warn("Unknown employee name", zap.String("name", req.Name))
		return c.Status(400).JSON(fiber.Map{"error": "Employee name is not in the roster."})
	}

	// Jumlah yang tidak dikirim dianggap nol
	var incentive, advance float64
	if req.IncentiveAmount != nil {
		incentive = *req.IncentiveAmount
	}
	if req.AdvanceAmount != nil {
		advance = *req.AdvanceAmount
	}

	// Upsert atomik: buat record hari ini jika belum ada,
	// kalau sudah ada akumulasikan insentif dan kasbon
	row := config.DB.QueryRow(
		`INSERT INTO employees (name, date, incentives, advances)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name, date) DO UPDATE
		 SET incentives = employees.incentives + EXCLUDED.incentives,
		     advances = employees.advances + EXCLUDED.advances,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING `+employeeColumns,
		req.Name, todayDate(), incentive, advance)
	emp, err := scanEmployeeRow(row)
	if err != nil {
		logger.ErrorLogger.Error("Error updating employee record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error updating employee record"})
	}

	logger.AuditLogger.Info("Employee record adjusted",
		zap.String("name", req.Name),
		zap.Float64("incentive", incentive),
		zap.Float64("advance", advance),
	)
	return c.JSON(fiber.Map{"message": "Employee record updated successfully!", "employee": emp})
}
