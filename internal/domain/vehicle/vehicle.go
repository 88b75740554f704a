// Package vehicle models a small fleet: cars, motorcycles, trucks and
// electric cars. Every variant can describe itself and report how it moves.
//
// Shared fields live in Info and Car; Truck and ElectricCar reuse them by
// embedding instead of a class hierarchy. The set of variants is closed.
package vehicle

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Kind tells the variants apart.
type Kind string

const (
	KindCar         Kind = "car"
	KindMotorcycle  Kind = "motorcycle"
	KindTruck       Kind = "truck"
	KindElectricCar Kind = "electric car"
)

// Describable reports its details one line at a time.
type Describable interface {
	Describe() []string
}

// Mover reports how it moves.
type Mover interface {
	Move() string
}

// Vehicle is implemented only by the variants of this package.
type Vehicle interface {
	Describable
	Mover
	Kind() Kind
	Info() Info

	sealed()
}

// ══════════════════════════════════════════════════════════════════════════════
// INFO
// ══════════════════════════════════════════════════════════════════════════════

// Info is the brand and model every vehicle carries.
type Info struct {
	brand string
	model string
}

// NewInfo validates brand and model.
func NewInfo(brand, model string) (Info, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return Info{}, shared.ErrEmptyBrand
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return Info{}, shared.ErrEmptyModel
	}
	return Info{brand: brand, model: model}, nil
}

func (i Info) Brand() string { return i.brand }
func (i Info) Model() string { return i.model }

// Line returns "Brand: Ford, Model: Mustang".
func (i Info) Line() string {
	return fmt.Sprintf("Brand: %s, Model: %s", i.brand, i.model)
}

// ══════════════════════════════════════════════════════════════════════════════
// CAR
// ══════════════════════════════════════════════════════════════════════════════

// Car is a painted passenger vehicle.
type Car struct {
	info  Info
	color string
}

// NewCar creates a car.
func NewCar(brand, model, color string) (*Car, error) {
	info, err := NewInfo(brand, model)
	if err != nil {
		return nil, err
	}
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, shared.ErrEmptyColor
	}
	return &Car{info: info, color: color}, nil
}

func (c *Car) Info() Info    { return c.info }
func (c *Car) Color() string { return c.color }
func (c *Car) Kind() Kind    { return KindCar }
func (c *Car) sealed()       {}

// ColorLine returns "Color: Red".
func (c *Car) ColorLine() string { return "Color: " + c.color }

// Describe implements Describable.
func (c *Car) Describe() []string {
	return []string{c.info.Line(), c.ColorLine()}
}

// Move implements Mover.
func (c *Car) Move() string { return "The car is moving" }

// ══════════════════════════════════════════════════════════════════════════════
// MOTORCYCLE
// ══════════════════════════════════════════════════════════════════════════════

// Motorcycle is described by its engine displacement in cc.
type Motorcycle struct {
	info Info
	cc   int
}

// NewMotorcycle creates a motorcycle. cc must be positive.
func NewMotorcycle(brand, model string, cc int) (*Motorcycle, error) {
	info, err := NewInfo(brand, model)
	if err != nil {
		return nil, err
	}
	if cc <= 0 {
		return nil, shared.ErrInvalidDisplacement
	}
	return &Motorcycle{info: info, cc: cc}, nil
}

func (m *Motorcycle) Info() Info { return m.info }
func (m *Motorcycle) CC() int    { return m.cc }
func (m *Motorcycle) Kind() Kind { return KindMotorcycle }
func (m *Motorcycle) sealed()    {}

// Describe implements Describable.
func (m *Motorcycle) Describe() []string {
	return []string{m.info.Line(), fmt.Sprintf("CC: %d", m.cc)}
}

// Move implements Mover.
func (m *Motorcycle) Move() string { return "The motorcycle is moving" }
