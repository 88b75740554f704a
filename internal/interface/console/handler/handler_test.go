package handler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/gradebook/internal/interface/console"
	"github.com/alem-hub/gradebook/pkg/logger"
)

type gradebook struct {
	repo *memory.StudentRepository
	deps StudentDeps
}

func newGradebook(t *testing.T) *gradebook {
	t.Helper()
	repo := memory.NewStudentRepository()
	log := logger.Discard()

	deps := StudentDeps{
		CreateStudent:  command.NewCreateStudentHandler(repo, nil, log),
		AddGrade:       command.NewAddGradeHandler(repo, nil, log),
		GetStudent:     query.NewGetStudentHandler(repo),
		ListStudents:   query.NewListStudentsHandler(repo),
		CheckApproval:  query.NewCheckApprovalHandler(repo),
		CheckStudentID: query.NewCheckStudentIDHandler(repo),
	}

	for _, params := range student.DefaultRoster() {
		_, err := deps.CreateStudent.Handle(context.Background(), command.CreateStudentCommand{
			ID: int(params.ID), Name: params.Name, Age: int(params.Age), Grades: params.Grades,
		})
		require.NoError(t, err)
	}
	return &gradebook{repo: repo, deps: deps}
}

// run feeds input to the student menu and returns everything printed,
// with menu blocks removed so assertions read as a transcript.
func (g *gradebook) run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := console.NewRouter(StudentMenu(g.deps), console.RouterConfig{Logger: logger.Discard()})
	require.NoError(t, r.Run(context.Background(), console.NewSession(strings.NewReader(input), &out)))
	return stripMenu(out.String())
}

const studentMenuText = "--------------------------------\n" +
	"1. Add student\n" +
	"2. See students\n" +
	"3. Add grade\n" +
	"4. See student info\n" +
	"5. Check if approved\n" +
	"6. Exit\n" +
	"Enter an option: "

func stripMenu(s string) string {
	return strings.ReplaceAll(s, studentMenuText, "")
}

func TestStudentMenu_RendersExactMenu(t *testing.T) {
	g := newGradebook(t)
	var out bytes.Buffer
	r := console.NewRouter(StudentMenu(g.deps), console.RouterConfig{Logger: logger.Discard()})
	require.NoError(t, r.Run(context.Background(), console.NewSession(strings.NewReader("6\n"), &out)))
	assert.Equal(t, studentMenuText, out.String())
}

func TestStudentMenu_ListSeeded(t *testing.T) {
	got := newGradebook(t).run(t, "2\n6\n")
	assert.Equal(t,
		"Name: Juan, ID: 1, Age: 20, Grades: [10, 7, 6], Average: 7.666666666666667\n"+
			"Name: Pedro, ID: 2, Age: 21, Grades: [5, 3, 9], Average: 5.666666666666667\n"+
			"Name: Maria, ID: 3, Age: 22, Grades: [7, 3, 6], Average: 5.333333333333333\n",
		got)
}

func TestStudentMenu_AddStudentRepromptsUntilValid(t *testing.T) {
	g := newGradebook(t)
	input := strings.Join([]string{
		"1", "", "Ana",
		"x", "0", "1", "4",
		"abc", "-2", "19",
		"11", "8", "9", "10",
		"4", "4",
		"6",
	}, "\n") + "\n"

	got := g.run(t, input)
	want := "Enter the student name: Enter the student name: " +
		"Enter the student ID: Invalid ID. Please enter a valid number.\n" +
		"Enter the student ID: Invalid ID. Please enter a positive number.\n" +
		"Enter the student ID: The ID already exists. Please enter a different ID.\n" +
		"Enter the student ID: " +
		"Enter the student age: Invalid age. Please enter a valid number.\n" +
		"Enter the student age: Invalid age. Please enter a positive number.\n" +
		"Enter the student age: " +
		"Enter the student grades: \n" +
		"Enter the grade 1: Invalid grade. Please enter a grade between 0 and 10.\n" +
		"Enter the grade 1: Enter the grade 2: Enter the grade 3: " +
		"Enter the student ID: Name: Ana, ID: 4, Age: 19, Grades: [8, 9, 10], Average: 9.0\n"
	assert.Equal(t, want, got)

	count, err := g.repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestStudentMenu_AddGrade(t *testing.T) {
	g := newGradebook(t)
	got := g.run(t, "3\n1\n8\n3\n1\n15\n4\n1\n6\n")

	assert.Equal(t,
		"Enter the student ID: Enter the grade: "+
			"Enter the student ID: Enter the grade: "+
			"Enter the student ID: Name: Juan, ID: 1, Age: 20, Grades: [10, 7, 6, 8], Average: 7.75\n",
		got, "out-of-range grade is dropped silently")
}

func TestStudentMenu_NotFound(t *testing.T) {
	got := newGradebook(t).run(t, "3\n99\n4\n99\n5\n99\n6\n")

	assert.Equal(t, 3, strings.Count(got, "Student not found with that ID.\n"))
	assert.NotContains(t, got, "Enter the grade: ")
}

func TestStudentMenu_CheckApproval(t *testing.T) {
	got := newGradebook(t).run(t, "5\n1\n5\n2\n6\n")

	assert.Equal(t,
		"Enter the student ID: The student passed with 7.666666666666667\n"+
			"Enter the student ID: The student did not pass with 5.666666666666667\n",
		got)
}

func TestStudentMenu_NoGradesIsReportedInline(t *testing.T) {
	g := newGradebook(t)
	empty, err := student.NewStudent(student.NewStudentParams{ID: 7, Name: "Empty", Age: 20})
	require.NoError(t, err)
	require.NoError(t, g.repo.Create(context.Background(), empty))

	got := g.run(t, "4\n7\n5\n7\n2\n6\n")

	// Options 4 and 2 name the student; option 5 answers about the chosen ID.
	assert.Equal(t, 2, strings.Count(got, "Name: Empty, ID: 7, Age: 20, Grades: [] (no grades yet)\n"))
	assert.Equal(t, 1, strings.Count(got, "The student has no grades yet.\n"))
	assert.Contains(t, got, "Name: Maria")
}

func TestStudentMenu_ListNamesEveryStudentWithoutGrades(t *testing.T) {
	g := newGradebook(t)
	for _, id := range []int{7, 8} {
		st, err := student.NewStudent(student.NewStudentParams{ID: student.ID(id), Name: "Empty", Age: 20})
		require.NoError(t, err)
		require.NoError(t, g.repo.Create(context.Background(), st))
	}

	got := g.run(t, "2\n6\n")

	assert.Contains(t, got, "Name: Empty, ID: 7, Age: 20, Grades: [] (no grades yet)\n")
	assert.Contains(t, got, "Name: Empty, ID: 8, Age: 20, Grades: [] (no grades yet)\n")
	assert.NotContains(t, got, "The student has no grades yet.")
}

func TestStudentMenu_EOFInsideDialogStoresNothing(t *testing.T) {
	g := newGradebook(t)
	g.run(t, "1\nAna\n4\n")

	count, err := g.repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStudentMenu_EmptyRoster(t *testing.T) {
	repo := memory.NewStudentRepository()
	g := &gradebook{repo: repo, deps: StudentDeps{ListStudents: query.NewListStudentsHandler(repo)}}

	assert.Equal(t, "No students\n", g.run(t, "2\n6\n"))
}

func TestPersonMenu(t *testing.T) {
	repo := memory.NewPersonRepository()
	menu := PersonMenu(
		command.NewCreatePersonHandler(repo, nil, logger.Discard()),
		query.NewListPersonsHandler(repo),
	)

	var out bytes.Buffer
	r := console.NewRouter(menu, console.RouterConfig{Logger: logger.Discard()})
	input := "2\n1\nLucas\n17\nmale\nabc\n-1\n1.95\n2\n3\n"
	require.NoError(t, r.Run(context.Background(), console.NewSession(strings.NewReader(input), &out)))

	menuText := "1. Add person\n2. See persons\n3. Exit\nEnter an option: "
	got := strings.ReplaceAll(out.String(), menuText, "")
	assert.Equal(t,
		"No persons\n"+
			"Enter the person name: Enter the person age: Enter the person gender: "+
			"Enter the person height: Invalid height. Please enter a valid number.\n"+
			"Enter the person height: Invalid height. Please enter a positive number.\n"+
			"Enter the person height: "+
			"Name: Lucas, Age: 17, Gender: Male, Height: 1.95\n",
		got)
}

func TestPersonMenu_NonFiniteHeightIsRejected(t *testing.T) {
	repo := memory.NewPersonRepository()
	menu := PersonMenu(
		command.NewCreatePersonHandler(repo, nil, logger.Discard()),
		query.NewListPersonsHandler(repo),
	)

	var out bytes.Buffer
	r := console.NewRouter(menu, console.RouterConfig{Logger: logger.Discard()})
	input := "1\nLucas\n17\nmale\nNaN\n+Inf\n-inf\n1.8\n2\n3\n"
	require.NoError(t, r.Run(context.Background(), console.NewSession(strings.NewReader(input), &out)))

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, "Invalid height. Please enter a positive number.\n"))
	assert.Contains(t, got, "Name: Lucas, Age: 17, Gender: Male, Height: 1.8\n")
	assert.NotContains(t, got, "NaN")

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
