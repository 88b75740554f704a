package student

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Эти интерфейсы определяют контракт для работы с хранилищем данных.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции журнала студентов.
// Порядок хранения совпадает с порядком добавления.
type Repository interface {
	// Create добавляет студента в конец журнала.
	// Уникальность ID не проверяется: это делает вызывающая сторона через Exists.
	Create(ctx context.Context, student *Student) error

	// GetByID возвращает первого студента с указанным ID.
	// Возвращает shared.ErrStudentNotFound, если студент не найден.
	GetByID(ctx context.Context, id ID) (*Student, error)

	// GetAll возвращает всех студентов в порядке добавления.
	GetAll(ctx context.Context) ([]*Student, error)

	// Update сохраняет изменённого студента (например, после AddGrade).
	// Возвращает shared.ErrStudentNotFound, если студент не найден.
	Update(ctx context.Context, student *Student) error

	// Exists проверяет, занят ли ID.
	Exists(ctx context.Context, id ID) (bool, error)

	// Count возвращает количество студентов.
	Count(ctx context.Context) (int, error)
}
