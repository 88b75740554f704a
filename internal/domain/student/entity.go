package student

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ID представляет идентификатор студента, который задаёт оператор.
type ID int

// IsValid проверяет, что ID положительный.
func (id ID) IsValid() bool {
	return id > 0
}

// Age представляет возраст студента в годах.
type Age int

// IsValid проверяет, что возраст положительный.
func (a Age) IsValid() bool {
	return a > 0
}

// Grade представляет одну оценку по шкале от 0 до 10.
type Grade int

const (
	// MinGrade - минимальная допустимая оценка.
	MinGrade Grade = 0
	// MaxGrade - максимальная допустимая оценка.
	MaxGrade Grade = 10
)

// IsValid проверяет, что оценка лежит в диапазоне [0, 10].
func (g Grade) IsValid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// PassMark - минимальный средний балл для зачёта (включительно).
const PassMark = 6.0

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - запись журнала: студент и его оценки.
// Поля закрыты, изменение возможно только через методы с валидацией.
type Student struct {
	id     ID
	name   string
	age    Age
	grades []Grade
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams содержит параметры для создания нового студента.
type NewStudentParams struct {
	ID     ID
	Name   string
	Age    Age
	Grades []int
}

// NewStudent создаёт нового студента с валидацией всех полей.
// Начальные оценки вне диапазона [0, 10] отбрасываются поштучно,
// поэтому студент может получить меньше оценок, чем передано, в том числе ноль.
func NewStudent(params NewStudentParams) (*Student, error) {
	if !params.ID.IsValid() {
		return nil, shared.ErrInvalidStudentID
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, shared.ErrEmptyStudentName
	}

	if !params.Age.IsValid() {
		return nil, shared.ErrInvalidStudentAge
	}

	grades := make([]Grade, 0, len(params.Grades))
	for _, g := range params.Grades {
		if grade := Grade(g); grade.IsValid() {
			grades = append(grades, grade)
		}
	}

	return &Student{
		id:     params.ID,
		name:   name,
		age:    params.Age,
		grades: grades,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// ID возвращает идентификатор студента.
func (s *Student) ID() ID { return s.id }

// Name возвращает имя студента.
func (s *Student) Name() string { return s.name }

// Age возвращает возраст студента.
func (s *Student) Age() Age { return s.age }

// Grades возвращает копию списка оценок в порядке добавления.
func (s *Student) Grades() []Grade {
	out := make([]Grade, len(s.grades))
	copy(out, s.grades)
	return out
}

// GradeCount возвращает количество оценок.
func (s *Student) GradeCount() int { return len(s.grades) }

// HasGrades возвращает true, если у студента есть хотя бы одна оценка.
func (s *Student) HasGrades() bool { return len(s.grades) > 0 }

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Business Logic)
// ══════════════════════════════════════════════════════════════════════════════

// AddGrade добавляет оценку, если она в диапазоне [0, 10].
// Возвращает true, если оценка добавлена. Оценка вне диапазона
// молча отбрасывается - это не ошибка.
func (s *Student) AddGrade(g Grade) bool {
	if !g.IsValid() {
		return false
	}
	s.grades = append(s.grades, g)
	return true
}

// Average возвращает среднее арифметическое оценок.
// Для пустого списка возвращает shared.ErrNoGrades.
func (s *Student) Average() (float64, error) {
	if len(s.grades) == 0 {
		return 0, shared.ErrNoGrades
	}

	sum := 0
	for _, g := range s.grades {
		sum += int(g)
	}
	return float64(sum) / float64(len(s.grades)), nil
}

// IsApproved возвращает true, если средний балл не ниже PassMark.
// Ошибка пустого списка оценок пробрасывается без изменений.
func (s *Student) IsApproved() (bool, error) {
	avg, err := s.Average()
	if err != nil {
		return false, err
	}
	return avg >= PassMark, nil
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf("Student{ID: %d, Name: %s, Age: %d, Grades: %d}",
		s.id, s.name, s.age, len(s.grades))
}

// Clone создаёт глубокую копию студента.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	clone.grades = make([]Grade, len(s.grades))
	copy(clone.grades, s.grades)
	return &clone
}
