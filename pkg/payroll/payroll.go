package payroll

// Slab rate harian: A untuk >= 20 task, B untuk >= 15, sisanya C.
const (
	RateA = 100
	RateB = 80
	RateC = 60
)

// SlabRate memilih tarif per task berdasarkan jumlah task yang diselesaikan.
func SlabRate(tasksCompleted int) float64 {
	switch {
	case tasksCompleted >= 20:
		return RateA
	case tasksCompleted >= 15:
		return RateB
	default:
		return RateC
	}
}

// DailyEarnings menghitung penghasilan harian: jumlah task dikali tarif slab.
func DailyEarnings(tasksCompleted int) float64 {
	return float64(tasksCompleted) * SlabRate(tasksCompleted)
}
