package dto

// StatusResponse - ответ корневого маршрута
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse - состояние сервиса и зависимостей
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// SummaryResponse - агрегаты по области просмотра
type SummaryResponse struct {
	AvgAQI        *int   `json:"avg_aqi"`
	AvgWQI        *int   `json:"avg_wqi"`
	HospitalCount int    `json:"hospital_count"`
	Insight       string `json:"insight"`
}
