package character

import (
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Damageable is anything that has health and can be hit or healed.
type Damageable interface {
	Name() string
	Health() int
	MaxHealth() int
	SetHealth(health int)
	TakeDamage(amount int) (DamageResult, error)
	IsAlive() bool
}

// Combatant is a Damageable that can attack.
type Combatant interface {
	Damageable
	Attack(target Damageable) (AttackResult, error)
}

// DamageResult describes what a hit actually did after clamping.
type DamageResult struct {
	Target   string
	Dealt    int
	Defeated bool
}

// AttackResult describes one attack.
type AttackResult struct {
	Attacker string
	Weapon   string
	Damage   DamageResult
}

// HealResult describes one heal. Healed is the health actually restored,
// Bonus the part of the request that came from a healing bonus.
type HealResult struct {
	Healer string
	Target string
	Healed int
	Bonus  int
}

// Fighter holds the state and behavior shared by every combatant.
// Health is always kept in [0, maxHealth].
type Fighter struct {
	name      string
	health    int
	maxHealth int
	level     int
	weapon    *Weapon
}

// NewFighter creates a fighter at full health.
func NewFighter(name string, health, level int) (*Fighter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("character", "NewFighter", shared.ErrEmptyValue, "character name cannot be empty")
	}
	if health <= 0 {
		return nil, shared.ErrInvalidMaxHealth
	}
	if level <= 0 {
		return nil, shared.ErrInvalidLevel
	}
	return &Fighter{
		name:      name,
		health:    health,
		maxHealth: health,
		level:     level,
	}, nil
}

func (f *Fighter) Name() string    { return f.name }
func (f *Fighter) Health() int     { return f.health }
func (f *Fighter) MaxHealth() int  { return f.maxHealth }
func (f *Fighter) Level() int      { return f.level }
func (f *Fighter) Weapon() *Weapon { return f.weapon }
func (f *Fighter) IsAlive() bool   { return f.health > 0 }

// SetName renames the fighter. Blank names are ignored.
func (f *Fighter) SetName(name string) {
	if name = strings.TrimSpace(name); name != "" {
		f.name = name
	}
}

// SetHealth sets health, clamped to [0, max health].
func (f *Fighter) SetHealth(health int) {
	switch {
	case health < 0:
		f.health = 0
	case health > f.maxHealth:
		f.health = f.maxHealth
	default:
		f.health = health
	}
}

// SetLevel changes the level. Non-positive values are rejected.
func (f *Fighter) SetLevel(level int) error {
	if level <= 0 {
		return shared.ErrInvalidLevel
	}
	f.level = level
	return nil
}

// EquipWeapon equips w, replacing any current weapon.
func (f *Fighter) EquipWeapon(w *Weapon) error {
	if w == nil {
		return shared.ErrNilWeapon
	}
	f.weapon = w
	return nil
}

// TakeDamage lowers health by amount and reports the damage actually dealt.
func (f *Fighter) TakeDamage(amount int) (DamageResult, error) {
	if amount < 0 {
		return DamageResult{Target: f.name}, shared.ErrNegativeAmount
	}
	old := f.health
	f.SetHealth(f.health - amount)
	return DamageResult{
		Target:   f.name,
		Dealt:    old - f.health,
		Defeated: f.health == 0,
	}, nil
}

// Heal restores up to amount health.
func (f *Fighter) Heal(amount int) (HealResult, error) {
	return restore(f.name, f, amount, 0)
}

// Attack hits target for weapon power + level.
func (f *Fighter) Attack(target Damageable) (AttackResult, error) {
	return f.strike(target, 0)
}

// strike is the attack rule shared by all variants; bonus is added on top
// of weapon power and level.
func (f *Fighter) strike(target Damageable, bonus int) (AttackResult, error) {
	res := AttackResult{Attacker: f.name}
	if target == nil {
		return res, shared.ErrNilTarget
	}
	if f.weapon == nil {
		return res, shared.ErrNoWeapon
	}
	if !f.IsAlive() {
		return res, shared.ErrCharacterDefeated
	}

	res.Weapon = f.weapon.Name()
	dmg, err := target.TakeDamage(f.weapon.Power() + f.level + bonus)
	if err != nil {
		return res, err
	}
	res.Damage = dmg
	return res, nil
}

// restore heals target by amount+bonus, clamped to its max health.
func restore(healer string, target Damageable, amount, bonus int) (HealResult, error) {
	res := HealResult{Healer: healer, Bonus: bonus}
	if target == nil {
		return res, shared.ErrNilTarget
	}
	res.Target = target.Name()
	if amount < 0 {
		return res, shared.ErrNegativeAmount
	}
	if target.Health() == target.MaxHealth() {
		return res, shared.ErrAlreadyFullHealth
	}

	old := target.Health()
	target.SetHealth(old + amount + bonus)
	res.Healed = target.Health() - old
	return res, nil
}
