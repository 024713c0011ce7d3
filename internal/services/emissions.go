package services

import "github.com/google/uuid"

// VehicleType classifies the vehicle being replaced in an emissions
// comparison.
type VehicleType string

const (
	VehicleGasoline VehicleType = "gasoline"
	VehicleDiesel   VehicleType = "diesel"
	VehicleHybrid   VehicleType = "hybrid"
	VehicleElectric VehicleType = "electric"
)

// emissionFactors is grams of CO2 per km, electricity production included
// for the electric figure.
var emissionFactors = map[VehicleType]float64{
	VehicleGasoline: 192,
	VehicleDiesel:   171,
	VehicleHybrid:   92,
	VehicleElectric: 53,
}

// fuelCostFactors is running cost per km.
var fuelCostFactors = map[VehicleType]float64{
	VehicleGasoline: 0.12,
	VehicleDiesel:   0.09,
	VehicleHybrid:   0.06,
	VehicleElectric: 0.03,
}

// CalculateEmissions returns kg of CO2 for a distance and vehicle type.
func CalculateEmissions(distanceKm float64, vehicle VehicleType) float64 {
	return distanceKm * emissionFactors[vehicle] / 1000
}

// CalculateFuelCost returns the running cost for a distance and vehicle type.
func CalculateFuelCost(distanceKm float64, vehicle VehicleType) float64 {
	return distanceKm * fuelCostFactors[vehicle]
}

// ComparisonResult captures a petrol-vs-electric comparison for one annual
// distance. The ID tags the result so callers can reference a specific
// calculation later.
type ComparisonResult struct {
	ID              string      `json:"id"`
	Vehicle         VehicleType `json:"vehicle"`
	AnnualKm        float64     `json:"annual_km"`
	VehicleCO2Kg    float64     `json:"vehicle_co2_kg"`
	ElectricCO2Kg   float64     `json:"electric_co2_kg"`
	CO2SavedKg      float64     `json:"co2_saved_kg"`
	VehicleFuelCost float64     `json:"vehicle_fuel_cost"`
	ElectricCost    float64     `json:"electric_cost"`
	CostSaved       float64     `json:"cost_saved"`
}

// CompareWithElectric contrasts a vehicle's annual emissions and running
// cost with the electric equivalents.
func CompareWithElectric(annualKm float64, vehicle VehicleType) ComparisonResult {
	vehicleCO2 := CalculateEmissions(annualKm, vehicle)
	electricCO2 := CalculateEmissions(annualKm, VehicleElectric)
	vehicleCost := CalculateFuelCost(annualKm, vehicle)
	electricCost := CalculateFuelCost(annualKm, VehicleElectric)
	return ComparisonResult{
		ID:              uuid.NewString(),
		Vehicle:         vehicle,
		AnnualKm:        annualKm,
		VehicleCO2Kg:    vehicleCO2,
		ElectricCO2Kg:   electricCO2,
		CO2SavedKg:      vehicleCO2 - electricCO2,
		VehicleFuelCost: vehicleCost,
		ElectricCost:    electricCost,
		CostSaved:       vehicleCost - electricCost,
	}
}
