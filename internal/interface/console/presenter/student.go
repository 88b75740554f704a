package presenter

import (
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT PRESENTER
// Строки журнала студентов: описание записи, вердикт о зачёте и сообщения
// диалогов меню.
// ══════════════════════════════════════════════════════════════════════════════

// Подсказки и сообщения диалогов журнала.
const (
	PromptStudentName  = "Enter the student name: "
	PromptStudentID    = "Enter the student ID: "
	PromptStudentAge   = "Enter the student age: "
	PromptGradesHeader = "Enter the student grades: "
	PromptGrade        = "Enter the grade: "

	InvalidIDFormat   = "Invalid ID. Please enter a valid number."
	InvalidIDPositive = "Invalid ID. Please enter a positive number."
	IDAlreadyExists   = "The ID already exists. Please enter a different ID."
	InvalidAgeFormat  = "Invalid age. Please enter a valid number."
	InvalidAgeValue   = "Invalid age. Please enter a positive number."
	InvalidGrade      = "Invalid grade. Please enter a grade between 0 and 10."
	InvalidGradeInput = "Invalid grade. Please enter a valid number."

	NoStudents      = "No students"
	StudentNotFound = "Student not found with that ID."
	NoGradesYet     = "The student has no grades yet."
)

// GradePrompt возвращает подсказку для n-й оценки (с единицы).
func GradePrompt(n int) string {
	return fmt.Sprintf("Enter the grade %d: ", n)
}

// StudentPresenter форматирует записи журнала.
type StudentPresenter struct{}

// NewStudentPresenter создаёт новый презентер журнала.
func NewStudentPresenter() *StudentPresenter {
	return &StudentPresenter{}
}

// Describe возвращает строку вида
// "Name: Juan, ID: 1, Age: 20, Grades: [10, 7, 6], Average: 7.666666666666667".
// Для студента без оценок возвращает shared.ErrNoGrades.
func (p *StudentPresenter) Describe(s *student.Student) (string, error) {
	avg, err := s.Average()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Name: %s, ID: %d, Age: %d, Grades: %s, Average: %s",
		s.Name(), s.ID(), s.Age(), FormatIntList(s.Grades()), FormatFloat(avg)), nil
}

// NoGrades возвращает строку для студента без оценок:
// "Name: Empty, ID: 7, Age: 20, Grades: [] (no grades yet)".
func (p *StudentPresenter) NoGrades(s *student.Student) string {
	return fmt.Sprintf("Name: %s, ID: %d, Age: %d, Grades: [] (no grades yet)",
		s.Name(), s.ID(), s.Age())
}

// Approval возвращает вердикт о зачёте с уже посчитанным средним.
func (p *StudentPresenter) Approval(approved bool, average float64) string {
	if approved {
		return "The student passed with " + FormatFloat(average)
	}
	return "The student did not pass with " + FormatFloat(average)
}
