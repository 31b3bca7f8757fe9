package models

import (
	"time"
)

// FacilitySearch представляет запись о поиске учреждений рядом с пользователем
type FacilitySearch struct {
	ID           int64            `json:"id"`
	UserID       string           `json:"user_id"`
	Category     FacilityCategory `json:"category"`
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	RadiusMeters int              `json:"radius_meters"`
	ResultCount  int              `json:"result_count"`
	SearchedAt   time.Time        `json:"searched_at"`
}

// SearchStats - агрегированная статистика поисков за окно времени
type SearchStats struct {
	WindowMinutes int                      `json:"window_minutes"`
	UniqueUsers   int                      `json:"unique_users"`
	Searches      map[FacilityCategory]int `json:"searches"`
}
