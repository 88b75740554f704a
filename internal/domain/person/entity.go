// Package person содержит доменную модель человека: имя, возраст, пол, рост.
// Возраст инкапсулирован и меняется только через SetAge с валидацией.
package person

import (
	"fmt"
	"math"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ID - идентификатор человека, выдаётся репозиторием по порядку.
type ID int

// IsValid проверяет, что ID положительный.
func (id ID) IsValid() bool {
	return id > 0
}

// Gender определяет пол человека.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender сопоставляет ввод с одним из вариантов без учёта регистра.
// Неизвестное значение превращается в GenderOther.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderOther
	}
}

// String возвращает строковое представление пола.
func (g Gender) String() string {
	return string(g)
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Person - запись о человеке.
type Person struct {
	id     ID
	name   string
	age    int
	gender Gender
	height float64
	alive  bool
}

// NewPersonParams содержит параметры для создания человека.
type NewPersonParams struct {
	ID     ID
	Name   string
	Age    int
	Gender string
	Height float64
}

// NewPerson создаёт человека с валидацией полей.
func NewPerson(params NewPersonParams) (*Person, error) {
	if !params.ID.IsValid() {
		return nil, shared.NewDomainError("person", "Validate", shared.ErrInvalidID, "person ID must be positive")
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, shared.ErrEmptyPersonName
	}

	if params.Age <= 0 {
		return nil, shared.ErrInvalidPersonAge
	}

	if !isPositiveFinite(params.Height) {
		return nil, shared.ErrInvalidHeight
	}

	return &Person{
		id:     params.ID,
		name:   name,
		age:    params.Age,
		gender: ParseGender(params.Gender),
		height: params.Height,
		alive:  true,
	}, nil
}

// ID возвращает идентификатор.
func (p *Person) ID() ID { return p.id }

// Name возвращает имя.
func (p *Person) Name() string { return p.name }

// Age возвращает возраст.
func (p *Person) Age() int { return p.age }

// Gender возвращает пол.
func (p *Person) Gender() Gender { return p.gender }

// Height возвращает рост в метрах.
func (p *Person) Height() float64 { return p.height }

// IsAlive возвращает true, пока не вызван Die.
func (p *Person) IsAlive() bool { return p.alive }

// SetAge меняет возраст. Неположительное значение отклоняется,
// возраст при этом не меняется.
func (p *Person) SetAge(age int) error {
	if age <= 0 {
		return shared.ErrInvalidPersonAge
	}
	p.age = age
	return nil
}

// Birthday увеличивает возраст на год и возвращает новый возраст.
func (p *Person) Birthday() (int, error) {
	if !p.alive {
		return p.age, shared.ErrPersonNotAlive
	}
	p.age++
	return p.age, nil
}

// Grow добавляет delta метров к росту и возвращает новый рост.
func (p *Person) Grow(delta float64) (float64, error) {
	if !isPositiveFinite(delta) {
		return p.height, shared.ErrInvalidGrowth
	}
	p.height += delta
	return p.height, nil
}

// isPositiveFinite отсекает ноль, отрицательные значения, NaN и бесконечность.
func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Die отмечает человека умершим.
func (p *Person) Die() error {
	if !p.alive {
		return shared.ErrPersonAlreadyDead
	}
	p.alive = false
	return nil
}

// String возвращает строковое представление для логирования.
func (p *Person) String() string {
	return fmt.Sprintf("Person{ID: %d, Name: %s, Age: %d, Gender: %s}", p.id, p.name, p.age, p.gender)
}

// Clone создаёт копию.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
