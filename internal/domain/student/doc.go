// Package student содержит доменную модель студента и его оценок.
//
// Это ядро бизнес-логики журнала успеваемости. Пакет определяет:
//
//   - Сущность Student с инкапсулированным списком оценок
//   - Value Objects: ID, Age, Grade
//   - Интерфейс репозитория Repository (реализация в infrastructure)
//
// # Архитектурные принципы
//
//  1. Нулевые внешние зависимости - только стандартная библиотека Go
//  2. Dependency Inversion - интерфейс хранилища определяется здесь
//  3. Rich Domain Model - валидация оценок и расчёт среднего живут в сущности
//
// # Инварианты
//
// Каждая оценка лежит в диапазоне [0, 10]. Оценка вне диапазона молча
// отбрасывается: AddGrade возвращает false, ошибки нет.
//
// Среднее для пустого списка оценок не определено. Average, IsApproved и
// форматирование карточки студента возвращают shared.ErrNoGrades, а не 0 или NaN.
//
// Уникальность ID проверяет вызывающая сторона (консольный диалог создания),
// репозиторий её не перепроверяет.
//
// # Пример использования
//
//	s, err := NewStudent(NewStudentParams{
//	    ID:     1,
//	    Name:   "Juan",
//	    Age:    20,
//	    Grades: []int{10, 7, 6},
//	})
//	if err != nil {
//	    return err
//	}
//
//	s.AddGrade(Grade(11)) // false, список не изменился
//	s.AddGrade(Grade(0))  // true
//
//	avg, err := s.Average()
//	if errors.Is(err, shared.ErrNoGrades) {
//	    // оценок ещё нет
//	}
package student
