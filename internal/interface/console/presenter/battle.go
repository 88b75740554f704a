package presenter

import (
	"errors"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/character"
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// BATTLE PRESENTER
// Turns character results into the narration printed by the battle demo.
// ══════════════════════════════════════════════════════════════════════════════

// Equipped reports a weapon change.
func Equipped(name string, w *character.Weapon) string {
	return fmt.Sprintf("%s equipped %s!", name, w.Name())
}

// HealthLine shows current and max health.
func HealthLine(d character.Damageable) string {
	return fmt.Sprintf("%s has %d/%d health points.", d.Name(), d.Health(), d.MaxHealth())
}

// KindLine shows what kind of ally or enemy a character is.
func KindLine(name, kind string, role character.Role) string {
	return fmt.Sprintf("%s is a %s %s.", name, kind, role)
}

// WeaponLine shows a weapon's stats.
func WeaponLine(w *character.Weapon) string {
	return fmt.Sprintf("Weapon: %s, Power: %d", w.Name(), w.Power())
}

// Attack narrates one attack, one line per outcome.
func Attack(r character.AttackResult) []string {
	lines := []string{
		fmt.Sprintf("%s attacks %s with %s!", r.Attacker, r.Damage.Target, r.Weapon),
		fmt.Sprintf("%s has taken %d damage.", r.Damage.Target, r.Damage.Dealt),
	}
	if r.Damage.Defeated {
		lines = append(lines, fmt.Sprintf("%s has been defeated!", r.Damage.Target))
	}
	return lines
}

// Heal narrates a heal. Self-heals and heals of others read differently.
func Heal(r character.HealResult) string {
	switch {
	case r.Healer != r.Target && r.Bonus > 0:
		return fmt.Sprintf("%s heals %s by %d points (including %d bonus).", r.Healer, r.Target, r.Healed, r.Bonus)
	case r.Healer != r.Target:
		return fmt.Sprintf("%s heals %s by %d points.", r.Healer, r.Target, r.Healed)
	case r.Bonus > 0:
		return fmt.Sprintf("%s has been healed by %d points (including %d bonus).", r.Target, r.Healed, r.Bonus)
	default:
		return fmt.Sprintf("%s has been healed by %d points.", r.Target, r.Healed)
	}
}

// AttackError explains why an attack did not happen.
func AttackError(attacker string, err error) string {
	switch {
	case errors.Is(err, shared.ErrNoWeapon):
		return fmt.Sprintf("%s has no weapon equipped!", attacker)
	case errors.Is(err, shared.ErrCharacterDefeated):
		return fmt.Sprintf("%s cannot attack while defeated!", attacker)
	default:
		return fmt.Sprintf("%s cannot attack: %v", attacker, err)
	}
}

// HealError explains why a heal did not happen.
func HealError(r character.HealResult, err error) string {
	switch {
	case errors.Is(err, shared.ErrAlreadyFullHealth):
		return fmt.Sprintf("%s is already at full health.", r.Target)
	case errors.Is(err, shared.ErrCharacterDefeated):
		return fmt.Sprintf("%s cannot heal while defeated!", r.Healer)
	default:
		return fmt.Sprintf("%s cannot heal: %v", r.Healer, err)
	}
}
