package student

// DefaultRoster возвращает стартовый журнал, с которым запускается программа.
func DefaultRoster() []NewStudentParams {
	return []NewStudentParams{
		{ID: 1, Name: "Juan", Age: 20, Grades: []int{10, 7, 6}},
		{ID: 2, Name: "Pedro", Age: 21, Grades: []int{5, 3, 9}},
		{ID: 3, Name: "Maria", Age: 22, Grades: []int{7, 3, 6}},
	}
}
