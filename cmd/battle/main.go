// Command battle runs the scripted two-character RPG demo: equip weapons,
// trade blows, heal, then show that health stays clamped.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/domain/character"
	"github.com/alem-hub/gradebook/internal/interface/console/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Output:  os.Stderr,
		Level:   logger.ParseLevel(cfg.Observability.LogLevel),
		Format:  logger.ParseFormat(cfg.Observability.LogFormat),
		Service: cfg.App.Name + "-battle",
	})

	if err := run(os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

// demo collects narration lines.
type demo struct {
	out io.Writer
	log *slog.Logger
}

func (d *demo) say(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(d.out, l)
	}
}

func (d *demo) attack(attacker character.Combatant, target character.Damageable) {
	res, err := attacker.Attack(target)
	if err != nil {
		d.log.Debug("attack refused", "attacker", attacker.Name(), logger.Err(err))
		d.say(presenter.AttackError(attacker.Name(), err))
		return
	}
	d.say(presenter.Attack(res)...)
}

func (d *demo) heal(res character.HealResult, err error) {
	if err != nil {
		d.say(presenter.HealError(res, err))
		return
	}
	d.say(presenter.Heal(res))
}

func run(out io.Writer, log *slog.Logger) error {
	d := &demo{out: out, log: log}
	d.say("=== RPG System Demo ===", "")

	sword, err := character.NewWeapon("Iron Sword", 15)
	if err != nil {
		return err
	}
	axe, err := character.NewWeapon("Battle Axe", 20)
	if err != nil {
		return err
	}

	hero, err := character.NewAlly("Arthur", 100, 5, "Warrior")
	if err != nil {
		return err
	}
	enemy, err := character.NewEnemy("Dark Knight", 80, 4, "Undead")
	if err != nil {
		return err
	}

	if err := hero.EquipWeapon(sword); err != nil {
		return err
	}
	d.say(presenter.Equipped(hero.Name(), sword))
	if err := enemy.EquipWeapon(axe); err != nil {
		return err
	}
	d.say(presenter.Equipped(enemy.Name(), axe))

	d.say("Initial Status:",
		presenter.HealthLine(hero),
		presenter.HealthLine(enemy),
		presenter.KindLine(hero.Name(), hero.Kind(), hero.Role()),
		presenter.KindLine(enemy.Name(), enemy.Kind(), enemy.Role()),
		"",
	)

	d.say("=== Battle Begins ===")
	d.attack(hero, enemy)
	d.say(presenter.HealthLine(enemy), "")

	d.attack(enemy, hero)
	d.say(presenter.HealthLine(hero), "")

	d.say("=== Healing ===")
	d.heal(hero.Heal(20))
	d.say(presenter.HealthLine(hero), "")

	d.say("=== Testing Encapsulation ===",
		fmt.Sprintf("Hero name: %s", hero.Name()),
		fmt.Sprintf("Hero health: %d", hero.Health()),
		fmt.Sprintf("Enemy type: %s", enemy.Kind()),
		presenter.WeaponLine(sword),
	)

	d.say("", "=== Testing Validation ===")
	hero.SetHealth(-10)
	d.say(presenter.HealthLine(hero))
	hero.SetHealth(200)
	d.say(presenter.HealthLine(hero))

	if err := sword.SetPower(-5); err != nil {
		d.say(fmt.Sprintf("%s: %v", sword.Name(), err))
	}

	log.Info("battle demo finished", "hero_health", hero.Health(), "enemy_health", enemy.Health())
	return nil
}
