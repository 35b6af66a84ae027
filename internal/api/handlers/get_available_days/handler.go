package get_available_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableDays "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_days"
)

const (
	msgInvalidUserID   = "некорректный ID пользователя"
	msgInvalidDuration = "некорректная длительность встречи"
	msgInvalidDays     = "некорректный горизонт поиска"
	msgUserNotFound    = "пользователь не найден"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/available-days
// Query параметры:
//   - durationMinutes - длительность встречи (по умолчанию 30)
//   - days - горизонт поиска в днях (по умолчанию 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/available-days - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Парсим query параметры
	durationMinutes := domain.DefaultMeetingDurationMinutes
	if raw := r.URL.Query().Get("durationMinutes"); raw != "" {
		durationMinutes, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /users/{userId}/available-days - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	horizonDays := domain.DefaultHorizonDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		horizonDays, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /users/{userId}/available-days - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		UserID:          userID,
		DurationMinutes: durationMinutes,
		HorizonDays:     horizonDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrUserNotFound):
			h.logger.Warn("GET /users/{userId}/available-days - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/available-days - Invalid params: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /users/{userId}/available-days - Failed to resolve days: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/available-days - Resolved successfully: user_id=%d, days=%d",
		userID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
