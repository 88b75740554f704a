package vehicle

import (
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Truck is a car rated for a load in kilograms. It moves like a car.
type Truck struct {
	*Car
	loadCapacity int
}

// NewTruck creates a truck. loadCapacity must be positive.
func NewTruck(brand, model, color string, loadCapacity int) (*Truck, error) {
	car, err := NewCar(brand, model, color)
	if err != nil {
		return nil, err
	}
	if loadCapacity <= 0 {
		return nil, shared.ErrInvalidLoadCapacity
	}
	return &Truck{Car: car, loadCapacity: loadCapacity}, nil
}

func (t *Truck) LoadCapacity() int { return t.loadCapacity }
func (t *Truck) Kind() Kind        { return KindTruck }

// Describe implements Describable.
func (t *Truck) Describe() []string {
	return append(t.Car.Describe(), fmt.Sprintf("Load Capacity: %d kg", t.loadCapacity))
}

// Battery is the power source of an electric vehicle.
type Battery struct {
	capacityKWh int
}

// NewBattery creates a battery of the given capacity.
func NewBattery(capacityKWh int) (Battery, error) {
	if capacityKWh <= 0 {
		return Battery{}, shared.ErrInvalidBatteryCharge
	}
	return Battery{capacityKWh: capacityKWh}, nil
}

func (b Battery) CapacityKWh() int { return b.capacityKWh }

// Line returns "Battery: 100kWh".
func (b Battery) Line() string { return fmt.Sprintf("Battery: %dkWh", b.capacityKWh) }

// ElectricCar is a car with a battery.
type ElectricCar struct {
	*Car
	battery Battery
}

// NewElectricCar creates an electric car. The battery is built here and
// belongs to this car only.
func NewElectricCar(brand, model, color string, capacityKWh int) (*ElectricCar, error) {
	car, err := NewCar(brand, model, color)
	if err != nil {
		return nil, err
	}
	battery, err := NewBattery(capacityKWh)
	if err != nil {
		return nil, err
	}
	return &ElectricCar{Car: car, battery: battery}, nil
}

func (e *ElectricCar) Battery() Battery { return e.battery }
func (e *ElectricCar) Kind() Kind       { return KindElectricCar }

// Describe implements Describable.
func (e *ElectricCar) Describe() []string {
	return append(e.Car.Describe(), e.battery.Line())
}

// Move implements Mover.
func (e *ElectricCar) Move() string { return "The electric car is moving silently" }

var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Motorcycle)(nil)
	_ Vehicle = (*Truck)(nil)
	_ Vehicle = (*ElectricCar)(nil)
)
