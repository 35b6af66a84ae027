package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID        int64            // ID клиента, который записывается
	UserID          int64            // ID специалиста
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность встречи в минутах
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        int64            // ID клиента
	UserID          int64            // ID специалиста
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	Notes           *string          // Заметки
	CreatedAt       time.Time        // Время создания
	UpdatedAt       time.Time        // Время обновления
}
