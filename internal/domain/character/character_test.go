package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func mustWeapon(t *testing.T, name string, power int) *Weapon {
	t.Helper()
	w, err := NewWeapon(name, power)
	require.NoError(t, err)
	return w
}

func setupDuel(t *testing.T) (*Ally, *Enemy) {
	t.Helper()
	hero, err := NewAlly("Arthur", 100, 5, "Warrior")
	require.NoError(t, err)
	enemy, err := NewEnemy("Dark Knight", 80, 4, "Undead")
	require.NoError(t, err)

	require.NoError(t, hero.EquipWeapon(mustWeapon(t, "Iron Sword", 15)))
	require.NoError(t, enemy.EquipWeapon(mustWeapon(t, "Battle Axe", 20)))
	return hero, enemy
}

func TestWeapon_SetPower(t *testing.T) {
	w := mustWeapon(t, "Iron Sword", 15)

	require.NoError(t, w.SetPower(0))
	assert.Equal(t, 0, w.Power())

	assert.ErrorIs(t, w.SetPower(-1), shared.ErrNegativePower)
	assert.Equal(t, 0, w.Power())

	_, err := NewWeapon("Stick", -3)
	assert.ErrorIs(t, err, shared.ErrNegativeValue)
}

func TestFighter_SetHealthClamps(t *testing.T) {
	f, err := NewFighter("Arthur", 100, 5)
	require.NoError(t, err)

	f.SetHealth(-10)
	assert.Equal(t, 0, f.Health())
	assert.False(t, f.IsAlive())

	f.SetHealth(200)
	assert.Equal(t, 100, f.Health())

	f.SetHealth(42)
	assert.Equal(t, 42, f.Health())
}

func TestFighter_SetLevel(t *testing.T) {
	f, err := NewFighter("Arthur", 100, 5)
	require.NoError(t, err)

	assert.ErrorIs(t, f.SetLevel(0), shared.ErrInvalidLevel)
	assert.Equal(t, 5, f.Level())

	require.NoError(t, f.SetLevel(7))
	assert.Equal(t, 7, f.Level())
}

func TestDuel(t *testing.T) {
	hero, enemy := setupDuel(t)

	res, err := hero.Attack(enemy)
	require.NoError(t, err)
	assert.Equal(t, "Iron Sword", res.Weapon)
	assert.Equal(t, 20, res.Damage.Dealt)
	assert.Equal(t, 60, enemy.Health())

	res, err = enemy.Attack(hero)
	require.NoError(t, err)
	assert.Equal(t, 29, res.Damage.Dealt, "weapon 20 + level 4 + base damage 5")
	assert.Equal(t, 71, hero.Health())

	heal, err := hero.Heal(20)
	require.NoError(t, err)
	assert.Equal(t, 23, heal.Healed)
	assert.Equal(t, DefaultHealingBonus, heal.Bonus)
	assert.Equal(t, 94, hero.Health())
}

func TestAttack_Guards(t *testing.T) {
	hero, enemy := setupDuel(t)

	unarmed, err := NewFighter("Peasant", 10, 1)
	require.NoError(t, err)
	_, err = unarmed.Attack(enemy)
	assert.ErrorIs(t, err, shared.ErrNoWeapon)

	_, err = hero.Attack(nil)
	assert.ErrorIs(t, err, shared.ErrNilTarget)

	hero.SetHealth(0)
	_, err = hero.Attack(enemy)
	assert.ErrorIs(t, err, shared.ErrCharacterDefeated)
	assert.Equal(t, 80, enemy.Health())
}

func TestTakeDamage_DefeatAndOverkill(t *testing.T) {
	_, enemy := setupDuel(t)

	res, err := enemy.TakeDamage(500)
	require.NoError(t, err)
	assert.Equal(t, 80, res.Dealt)
	assert.True(t, res.Defeated)
	assert.Equal(t, 0, enemy.Health())

	_, err = enemy.TakeDamage(-1)
	assert.ErrorIs(t, err, shared.ErrNegativeAmount)
}

func TestHeal_FullHealth(t *testing.T) {
	hero, enemy := setupDuel(t)

	_, err := hero.Heal(10)
	assert.ErrorIs(t, err, shared.ErrAlreadyFullHealth)

	_, err = enemy.Heal(10)
	assert.ErrorIs(t, err, shared.ErrAlreadyFullHealth)

	enemy.SetHealth(75)
	res, err := enemy.Heal(10)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Healed, "clamped to max health")
	assert.Equal(t, 0, res.Bonus)
}

func TestAlly_HealAlly(t *testing.T) {
	hero, _ := setupDuel(t)
	squire, err := NewAlly("Squire", 50, 1, "Healer")
	require.NoError(t, err)

	squire.SetHealth(30)
	res, err := hero.HealAlly(squire, 10)
	require.NoError(t, err)
	assert.Equal(t, "Squire", res.Target)
	assert.Equal(t, 13, res.Healed)
	assert.Equal(t, 43, squire.Health())

	hero.SetHealth(0)
	_, err = hero.HealAlly(squire, 10)
	assert.ErrorIs(t, err, shared.ErrCharacterDefeated)
	assert.Equal(t, 43, squire.Health())
}

func TestVariants_Setters(t *testing.T) {
	hero, enemy := setupDuel(t)

	assert.ErrorIs(t, enemy.SetBaseDamage(-1), shared.ErrNegativeBaseDamage)
	require.NoError(t, enemy.SetBaseDamage(0))
	assert.Equal(t, 0, enemy.BaseDamage())

	assert.ErrorIs(t, hero.SetHealingBonus(-1), shared.ErrNegativeHealBonus)
	require.NoError(t, hero.SetHealingBonus(0))
	assert.Equal(t, 0, hero.HealingBonus())

	assert.Equal(t, RoleEnemy, enemy.Role())
	assert.Equal(t, RoleAlly, hero.Role())
	assert.Equal(t, "Undead", enemy.Kind())

	assert.ErrorIs(t, hero.EquipWeapon(nil), shared.ErrNilWeapon)
}
