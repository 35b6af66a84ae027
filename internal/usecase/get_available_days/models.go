package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на получение открытых слотов
type Request struct {
	UserID          int64 // ID специалиста
	DurationMinutes int   // Длительность встречи в минутах
	HorizonDays     int   // Сколько календарных дней вперёд рассматривать
}

// Response модель ответа со списком дней и открытых слотов
type Response struct {
	UserID          int64     // ID специалиста
	DurationMinutes int       // Длительность встречи
	HorizonDays     int       // Горизонт расчёта
	Days            []Day     // Дни с настроенным окном
	GeneratedAt     time.Time // Момент, на который считалась доступность
}

// Day один календарный день с открытыми слотами
type Day struct {
	Date  time.Time          // Календарная дата
	Slots []types.TimeString // Времена начала открытых слотов, по возрастанию
}
