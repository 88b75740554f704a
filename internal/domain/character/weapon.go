// Package character models RPG combatants: weapons, fighters with bounded
// health, and the Enemy and Ally variants built on top of a shared Fighter.
//
// Operations never print. They return result values (AttackResult,
// HealResult, DamageResult) and the console presenter turns those into text.
package character

import (
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Weapon is something a fighter can equip. Power is never negative.
type Weapon struct {
	name  string
	power int
}

// NewWeapon creates a weapon with the given name and power.
func NewWeapon(name string, power int) (*Weapon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("character", "NewWeapon", shared.ErrEmptyValue, "weapon name cannot be empty")
	}
	if power < 0 {
		return nil, shared.ErrNegativePower
	}
	return &Weapon{name: name, power: power}, nil
}

// Name returns the weapon name.
func (w *Weapon) Name() string { return w.name }

// Power returns the weapon power.
func (w *Weapon) Power() int { return w.power }

// SetName renames the weapon. Blank names are ignored.
func (w *Weapon) SetName(name string) {
	if name = strings.TrimSpace(name); name != "" {
		w.name = name
	}
}

// SetPower changes the power. A negative value is rejected and the
// current power is kept.
func (w *Weapon) SetPower(power int) error {
	if power < 0 {
		return shared.ErrNegativePower
	}
	w.power = power
	return nil
}
