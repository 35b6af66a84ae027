package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда расписание не найдено
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
