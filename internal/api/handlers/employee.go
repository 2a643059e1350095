package handlers

import (
	"database/sql"
	"time"

	"aru-research/internal/config"
	"aru-research/internal/models"
	"aru-research/pkg/logger"
	"aru-research/pkg/payroll"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Employee handlers

// employeeColumns adalah daftar kolom yang dipakai setiap SELECT/RETURNING
// untuk record karyawan. Tanggal diformat kembali menjadi string YYYY-MM-DD.
const employeeColumns = `id, name, to_char(date, 'YYYY-MM-DD'), ` +
	`COALESCE(work_start, ''), COALESCE(work_end, ''), ` +
	`tasks_completed, daily_earnings, incentives, advances, created_at, updated_at`

func scanEmployeeRow(row *sql.Row) (models.Employee, error) {
	var emp models.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Date, &emp.WorkStart, &emp.WorkEnd,
		&emp.TasksCompleted, &emp.DailyEarnings, &emp.Incentives, &emp.Advances,
		&emp.CreatedAt, &emp.UpdatedAt)
	return emp, err
}

// todayDate mengembalikan tanggal kalender lokal server (YYYY-MM-DD).
func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// nowClock mengembalikan jam dinding saat ini, misalnya "09:41 AM".
func nowClock() string {
	return time.Now().Format("03:04 PM")
}

// StartWork mencatat jam mulai kerja untuk hari ini.
// Hanya boleh sekali per karyawan per hari.
func StartWork(c *fiber.Ctx) error {
	type StartWorkRequest struct {
		Name        string `json:"name" validate:"required"`
		ConfirmName string `json:"confirmName" validate:"required"`
	}

	var req StartWorkRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in start work", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	// Validasi dengan validator
	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during start work", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Nama dan konfirmasi harus sama persis (penjaga typo sederhana)
	if req.Name != req.ConfirmName {
		return c.Status(400).JSON(fiber.Map{"error": "Employee name does not match."})
	}

	// Nama harus ada di roster karyawan
	if !config.InRoster(req.Name) {
		logger.SecurityLogger.Warn("Unknown employee name", zap.String("name", req.Name))
		return c.Status(400).JSON(fiber.Map{"error": "Employee name is not in the roster."})
	}

	today := todayDate()

	// Cek record hari ini
	var id int
	var workStart string
	err := config.DB.QueryRow(
		"SELECT id, COALESCE(work_start, '') FROM employees WHERE name = $1 AND date = $2",
		req.Name, today).Scan(&id, &workStart)

	if err == sql.ErrNoRows {
		// Belum ada record: buat baru sekaligus stempel jam mulai
		row := config.DB.QueryRow(
			"INSERT INTO employees (name, date, work_start) VALUES ($1, $2, $3) RETURNING "+employeeColumns,
			req.Name, today, nowClock())
		emp, err := scanEmployeeRow(row)
		if err != nil {
			// Ras insert ganda: constraint unik (name, date) jadi backstop
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				logger.AuditLogger.Warn("Duplicate start work", zap.String("name", req.Name))
				return c.Status(400).JSON(fiber.Map{"error": "Work already started today."})
			}
			logger.ErrorLogger.Error("Error creating attendance record", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Error creating attendance record"})
		}

		logger.AuditLogger.Info("Work started", zap.String("name", req.Name), zap.String("date", today))
		return c.JSON(fiber.Map{"message": "Work started successfully!", "employee": emp})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching attendance record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching attendance record"})
	}

	if workStart != "" {
		return c.Status(400).JSON(fiber.Map{"error": "Work already started today."})
	}

	row := config.DB.QueryRow(
		"UPDATE employees SET work_start = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING "+employeeColumns,
		nowClock(), id)
	emp, err := scanEmployeeRow(row)
	if err != nil {
		logger.ErrorLogger.Error("Error updating attendance record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error updating attendance record"})
	}

	logger.AuditLogger.Info("Work started", zap.String("name", req.Name), zap.String("date", today))
	return c.JSON(fiber.Map{"message": "Work started successfully!", "employee": emp})
}

// EndWork mencatat jam selesai kerja untuk hari ini.
func EndWork(c *fiber.Ctx) error {
	type EndWorkRequest struct {
		Name        string `json:"name" validate:"required"`
		ConfirmName string `json:"confirmName" validate:"required"`
	}

	var req EndWorkRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in end work", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during end work", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != req.ConfirmName {
		return c.Status(400).JSON(fiber.Map{"error": "Employee name does not match."})
	}

	today := todayDate()

	// Ambil record hari ini; tanpa record berarti belum mulai kerja
	row := config.DB.QueryRow(
		"SELECT "+employeeColumns+" FROM employees WHERE name = $1 AND date = $2",
		req.Name, today)
	emp, err := scanEmployeeRow(row)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "No attendance record found for today."})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching attendance record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching attendance record"})
	}

	if emp.WorkEnd != "" {
		return c.Status(400).JSON(fiber.Map{"error": "Work already ended today."})
	}

	row = config.DB.QueryRow(
		"UPDATE employees SET work_end = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING "+employeeColumns,
		nowClock(), emp.ID)
	emp, err = scanEmployeeRow(row)
	if err != nil {
		logger.ErrorLogger.Error("Error updating attendance record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error updating attendance record"})
	}

	logger.AuditLogger.Info("Work ended", zap.String("name", req.Name), zap.String("date", today))
	return c.JSON(fiber.Map{"message": "Work ended successfully!", "employee": emp})
}

// UpdateTasks mencatat jumlah task hari ini dan menghitung penghasilan slab.
// Hanya boleh sekali per hari (tasksCompleted yang sudah positif menolak update).
func UpdateTasks(c *fiber.Ctx) error {
	type UpdateTasksRequest struct {
		Name           string `json:"name" validate:"required"`
		TasksCompleted int    `json:"tasksCompleted" validate:"gte=0"`
	}

	var req UpdateTasksRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update tasks", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Bad request"})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during update tasks", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	today := todayDate()

	row := config.DB.QueryRow(
		"SELECT "+employeeColumns+" FROM employees WHERE name = $1 AND date = $2",
		req.Name, today)
	emp, err := scanEmployeeRow(row)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "No attendance record found for today."})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching attendance record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching attendance record"})
	}

	if emp.TasksCompleted > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Tasks already updated today."})
	}

	earnings := payroll.DailyEarnings(req.TasksCompleted)

	row = config.DB.QueryRow(
		"UPDATE employees SET tasks_completed = $1, daily_earnings = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3 RETURNING "+employeeColumns,
		req.TasksCompleted, earnings, emp.ID)
	emp, err = scanEmployeeRow(row)
	if err != nil {
		logger.ErrorLogger.Error("Error updating tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error updating tasks"})
	}

	logger.AuditLogger.Info("Tasks updated",
		zap.String("name", req.Name),
		zap.Int("tasks_completed", req.TasksCompleted),
		zap.Float64("daily_earnings", earnings),
	)
	return c.JSON(fiber.Map{"message": "Tasks updated successfully!", "employee": emp})
}

// SalaryRecords mengembalikan record gaji, bisa difilter 'today' atau 'month'.
func SalaryRecords(c *fiber.Ctx) error {
	filter := c.Query("filter")
	today := todayDate()

	var rows *sql.Rows
	var err error
	switch filter {
	case "today":
		rows, err = config.DB.Query(
			"SELECT "+employeeColumns+" FROM employees WHERE date = $1 ORDER BY date DESC",
			today)
	case "month":
		// Bulan dan tahun berjalan, dihitung dari kolom DATE (bukan potongan string)
		rows, err = config.DB.Query(
			"SELECT "+employeeColumns+" FROM employees WHERE date_trunc('month', date) = date_trunc('month', $1::date) ORDER BY date DESC",
			today)
	default:
		rows, err = config.DB.Query(
			"SELECT " + employeeColumns + " FROM employees ORDER BY date DESC")
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching salary records", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching salary records"})
	}
	defer rows.Close()

	records := []models.Employee{}
	for rows.Next() {
		var emp models.Employee
		err := rows.Scan(&emp.ID, &emp.Name, &emp.Date, &emp.WorkStart, &emp.WorkEnd,
			&emp.TasksCompleted, &emp.DailyEarnings, &emp.Incentives, &emp.Advances,
			&emp.CreatedAt, &emp.UpdatedAt)
		if err != nil {
			logger.ErrorLogger.Error("Error scanning salary records", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Error scanning salary records"})
		}
		records = append(records, emp)
	}

	if err = rows.Err(); err != nil {
		logger.ErrorLogger.Error("Error iterating over salary records", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Error iterating over salary records"})
	}

	return c.JSON(records)
}
