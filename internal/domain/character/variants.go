package character

import (
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Role tells the variant of a combatant apart.
type Role string

const (
	RoleEnemy Role = "enemy"
	RoleAlly  Role = "ally"
)

const (
	// DefaultBaseDamage is the extra damage every enemy deals.
	DefaultBaseDamage = 5
	// DefaultHealingBonus is the extra health every ally heal restores.
	DefaultHealingBonus = 3
)

// Enemy is a fighter that deals extra base damage.
type Enemy struct {
	*Fighter
	kind       string
	baseDamage int
}

// NewEnemy creates an enemy of the given kind (zombie, undead, ...).
func NewEnemy(name string, health, level int, kind string) (*Enemy, error) {
	f, err := NewFighter(name, health, level)
	if err != nil {
		return nil, err
	}
	return &Enemy{Fighter: f, kind: kind, baseDamage: DefaultBaseDamage}, nil
}

func (e *Enemy) Kind() string    { return e.kind }
func (e *Enemy) Role() Role      { return RoleEnemy }
func (e *Enemy) BaseDamage() int { return e.baseDamage }

// SetKind changes the enemy kind.
func (e *Enemy) SetKind(kind string) { e.kind = kind }

// SetBaseDamage changes the bonus damage. Negative values are rejected.
func (e *Enemy) SetBaseDamage(damage int) error {
	if damage < 0 {
		return shared.ErrNegativeBaseDamage
	}
	e.baseDamage = damage
	return nil
}

// Attack hits target for weapon power + level + base damage.
func (e *Enemy) Attack(target Damageable) (AttackResult, error) {
	return e.strike(target, e.baseDamage)
}

// Ally is a fighter whose heals carry a bonus.
type Ally struct {
	*Fighter
	kind         string
	healingBonus int
}

// NewAlly creates an ally of the given kind (healer, warrior, ...).
func NewAlly(name string, health, level int, kind string) (*Ally, error) {
	f, err := NewFighter(name, health, level)
	if err != nil {
		return nil, err
	}
	return &Ally{Fighter: f, kind: kind, healingBonus: DefaultHealingBonus}, nil
}

func (a *Ally) Kind() string      { return a.kind }
func (a *Ally) Role() Role        { return RoleAlly }
func (a *Ally) HealingBonus() int { return a.healingBonus }

// SetKind changes the ally kind.
func (a *Ally) SetKind(kind string) { a.kind = kind }

// SetHealingBonus changes the heal bonus. Negative values are rejected.
func (a *Ally) SetHealingBonus(bonus int) error {
	if bonus < 0 {
		return shared.ErrNegativeHealBonus
	}
	a.healingBonus = bonus
	return nil
}

// Heal restores amount + healing bonus to the ally itself.
func (a *Ally) Heal(amount int) (HealResult, error) {
	return restore(a.Name(), a, amount, a.healingBonus)
}

// HealAlly restores amount + healing bonus to target.
// A defeated ally cannot heal anyone else.
func (a *Ally) HealAlly(target Damageable, amount int) (HealResult, error) {
	if !a.IsAlive() {
		return HealResult{Healer: a.Name()}, shared.ErrCharacterDefeated
	}
	return restore(a.Name(), target, amount, a.healingBonus)
}

var (
	_ Combatant = (*Fighter)(nil)
	_ Combatant = (*Enemy)(nil)
	_ Combatant = (*Ally)(nil)
)
