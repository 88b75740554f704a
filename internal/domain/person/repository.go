package person

import "context"

// Repository определяет операции реестра людей.
// Порядок хранения совпадает с порядком добавления.
type Repository interface {
	// NextID выдаёт следующий свободный ID.
	NextID(ctx context.Context) (ID, error)

	// Create добавляет человека в конец реестра.
	Create(ctx context.Context, person *Person) error

	// GetByID возвращает человека по ID или shared.ErrPersonNotFound.
	GetByID(ctx context.Context, id ID) (*Person, error)

	// GetAll возвращает всех в порядке добавления.
	GetAll(ctx context.Context) ([]*Person, error)

	// Count возвращает размер реестра.
	Count(ctx context.Context) (int, error)
}
