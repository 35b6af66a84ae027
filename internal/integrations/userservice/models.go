package userservice

// User модель пользователя из UserService
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"` // Роль пользователя (client, specialist, admin)
	TimeZone    string `json:"time_zone"`
	IsActive    bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
