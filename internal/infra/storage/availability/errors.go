package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда расписание не найдено
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("availability.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrInvalidWeekday возвращается при некорректном дне недели в данных
	ErrInvalidWeekday = errors.New("availability.repository: invalid weekday")
)
