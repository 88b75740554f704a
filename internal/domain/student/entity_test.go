package student

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func newTestStudent(t *testing.T, id ID, name string, age Age, grades ...int) *Student {
	t.Helper()
	s, err := NewStudent(NewStudentParams{ID: id, Name: name, Age: age, Grades: grades})
	require.NoError(t, err)
	return s
}

func TestNewStudent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  NewStudentParams
		wantErr error
	}{
		{"valid", NewStudentParams{ID: 1, Name: "Juan", Age: 20}, nil},
		{"zero id", NewStudentParams{ID: 0, Name: "Juan", Age: 20}, shared.ErrInvalidStudentID},
		{"negative id", NewStudentParams{ID: -4, Name: "Juan", Age: 20}, shared.ErrInvalidStudentID},
		{"blank name", NewStudentParams{ID: 1, Name: "   ", Age: 20}, shared.ErrEmptyStudentName},
		{"zero age", NewStudentParams{ID: 1, Name: "Juan", Age: 0}, shared.ErrInvalidStudentAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent(tt.params)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.params.ID, s.ID())
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, shared.IsValidation(err))
			assert.Nil(t, s)
		})
	}
}

func TestNewStudent_DropsOutOfRangeGrades(t *testing.T) {
	s := newTestStudent(t, 1, "Juan", 20, 10, -1, 7, 11, 6)
	assert.Equal(t, []Grade{10, 7, 6}, s.Grades())

	empty := newTestStudent(t, 2, "Pedro", 21, 12, -3)
	assert.Equal(t, 0, empty.GradeCount())
	assert.False(t, empty.HasGrades())
}

func TestNewStudent_TrimsName(t *testing.T) {
	s := newTestStudent(t, 1, "  Maria ", 22)
	assert.Equal(t, "Maria", s.Name())
}

func TestStudent_AddGrade(t *testing.T) {
	s := newTestStudent(t, 1, "Juan", 20, 10, 7, 6)

	assert.False(t, s.AddGrade(11))
	assert.False(t, s.AddGrade(-1))
	assert.Equal(t, 3, s.GradeCount())

	assert.True(t, s.AddGrade(0))
	assert.Equal(t, []Grade{10, 7, 6, 0}, s.Grades())

	assert.True(t, s.AddGrade(10))
	assert.Equal(t, 5, s.GradeCount())
}

func TestStudent_AddGrade_CountsOnlyInRangeCalls(t *testing.T) {
	s := newTestStudent(t, 1, "Juan", 20)
	calls := []Grade{3, 15, 0, -2, 10, 10, 99, 6}

	inRange := 0
	for _, g := range calls {
		if g >= 0 && g <= 10 {
			inRange++
		}
		s.AddGrade(g)
	}

	assert.Equal(t, inRange, s.GradeCount())
}

func TestStudent_Average(t *testing.T) {
	juan := newTestStudent(t, 1, "Juan", 20, 10, 7, 6)
	avg, err := juan.Average()
	require.NoError(t, err)
	assert.InDelta(t, 7.666666, avg, 1e-5)

	pedro := newTestStudent(t, 2, "Pedro", 21, 5, 3, 9)
	avg, err = pedro.Average()
	require.NoError(t, err)
	assert.InDelta(t, 5.666666, avg, 1e-5)
}

func TestStudent_IsApproved(t *testing.T) {
	tests := []struct {
		name   string
		grades []int
		want   bool
	}{
		{"juan passes", []int{10, 7, 6}, true},
		{"pedro fails", []int{5, 3, 9}, false},
		{"exactly pass mark", []int{6, 6, 6}, true},
		{"just below", []int{6, 6, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStudent(t, 1, "Test", 20, tt.grades...)
			got, err := s.IsApproved()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudent_DegenerateAverage(t *testing.T) {
	s := newTestStudent(t, 1, "Empty", 20)

	_, err := s.Average()
	assert.ErrorIs(t, err, shared.ErrNoGrades)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	approved, err := s.IsApproved()
	assert.ErrorIs(t, err, shared.ErrNoGrades)
	assert.False(t, approved)

	require.True(t, s.AddGrade(8))
	avg, err := s.Average()
	require.NoError(t, err)
	assert.Equal(t, 8.0, avg)
}

func TestStudent_GradesReturnsCopy(t *testing.T) {
	s := newTestStudent(t, 1, "Juan", 20, 10, 7, 6)

	grades := s.Grades()
	grades[0] = 0

	assert.Equal(t, Grade(10), s.Grades()[0])
}

func TestStudent_Clone(t *testing.T) {
	s := newTestStudent(t, 1, "Juan", 20, 10, 7, 6)
	clone := s.Clone()

	clone.AddGrade(1)

	assert.Equal(t, 3, s.GradeCount())
	assert.Equal(t, 4, clone.GradeCount())
	assert.Equal(t, s.ID(), clone.ID())

	var nilStudent *Student
	assert.Nil(t, nilStudent.Clone())
}

func TestStudent_RecordIsFullyDescribedByItsFields(t *testing.T) {
	a := newTestStudent(t, 1, "Juan", 20, 10, 7)
	b := newTestStudent(t, 1, "Juan", 20, 10)
	b.AddGrade(7)

	assert.Equal(t, a, b)
	assert.Equal(t, a, a.Clone())
}
