package services

import (
	"math"

	"github.com/rideon-ev/compatquiz/internal/models"
)

// SavingsConfig documents the assumptions behind the annual savings figures.
// Prices are rupees.
type SavingsConfig struct {
	WorkdaysPerMonth        float64
	PetrolPricePerLiter     float64
	PetrolMileageKmPerLiter float64
	ElectricityCostPerKWh   float64
	EnergyKWhPerKm          float64
	CO2KgPerLiter           float64
	MaintenancePerKm        float64
	// DefaultDailyKm applies when the commute answer is missing or unknown.
	DefaultDailyKm float64
}

func DefaultSavingsConfig() SavingsConfig {
	return SavingsConfig{
		WorkdaysPerMonth:        22,
		PetrolPricePerLiter:     100,
		PetrolMileageKmPerLiter: 45,
		ElectricityCostPerKWh:   8,
		EnergyKWhPerKm:          0.018,
		CO2KgPerLiter:           2.3,
		MaintenancePerKm:        0.6,
		DefaultDailyKm:          15,
	}
}

// dailyDistanceKm maps the commute-distance buckets to a representative
// daily figure.
func dailyDistanceKm(commuteDistance string, cfg SavingsConfig) float64 {
	switch commuteDistance {
	case "under-5km":
		return 5
	case "5-15km":
		return 10
	case "15-30km":
		return 20
	case "30km-plus":
		return 35
	default:
		return cfg.DefaultDailyKm
	}
}

// EstimateSavings derives annualized petrol-vs-electric savings from the
// commute-distance answer value alone. Pure: no other state is read, so it
// can run on partial answer sets to preview feedback.
func EstimateSavings(commuteDistance string, cfg SavingsConfig) models.SavingsEstimates {
	daily := dailyDistanceKm(commuteDistance, cfg)
	annualDistance := daily * cfg.WorkdaysPerMonth * 12

	petrolCost := (annualDistance / cfg.PetrolMileageKmPerLiter) * cfg.PetrolPricePerLiter
	electricCost := annualDistance * cfg.EnergyKWhPerKm * cfg.ElectricityCostPerKWh

	fuelSavings := petrolCost - electricCost
	co2Reduction := (annualDistance / cfg.PetrolMileageKmPerLiter) * cfg.CO2KgPerLiter
	maintenanceSavings := annualDistance * cfg.MaintenancePerKm

	return models.SavingsEstimates{
		FuelSavings:        int(math.Round(fuelSavings)),
		CO2Reduction:       int(math.Round(co2Reduction)),
		MaintenanceSavings: int(math.Round(maintenanceSavings)),
		TotalSavings:       int(math.Round(fuelSavings + maintenanceSavings)),
	}
}
