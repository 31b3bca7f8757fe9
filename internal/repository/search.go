package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/service"
)

type SearchRepository struct {
	db DB
}

func NewSearchRepository(db DB) service.SearchRepository {
	return &SearchRepository{db: db}
}

// SaveSearch сохраняет запись о поиске учреждений в бд
func (r *SearchRepository) SaveSearch(ctx context.Context, search *models.FacilitySearch) error {
	query := `
		INSERT INTO facility_searches (user_id, category, location, radius_meters, result_count)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6) RETURNING id, searched_at;
	`
	err := r.db.QueryRow(ctx, query,
		search.UserID,
		search.Category,
		search.Longitude,
		search.Latitude,
		search.RadiusMeters,
		search.ResultCount,
	).Scan(&search.ID, &search.SearchedAt)
	if err != nil {
		return fmt.Errorf("failed to save facility search: %w", err)
	}
	return nil
}

// GetSearchStats возвращает число уникальных пользователей и поисков по категориям за окно
func (r *SearchRepository) GetSearchStats(ctx context.Context, minutes int) (*models.SearchStats, error) {
	stats := &models.SearchStats{
		WindowMinutes: minutes,
		Searches:      make(map[models.FacilityCategory]int),
	}

	usersQuery := `
		SELECT COUNT(DISTINCT user_id)
		FROM facility_searches
		WHERE searched_at >= NOW() - ($1 * INTERVAL '1 minute')
			AND user_id <> '';
	`
	if err := r.db.QueryRow(ctx, usersQuery, minutes).Scan(&stats.UniqueUsers); err != nil {
		return nil, fmt.Errorf("failed to count unique searching users: %w", err)
	}

	categoriesQuery := `
		SELECT category, COUNT(*)
		FROM facility_searches
		WHERE searched_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY category;
	`
	rows, err := r.db.Query(ctx, categoriesQuery, minutes)
	if err != nil {
		return nil, fmt.Errorf("failed to count searches by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category models.FacilityCategory
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan search stats row: %w", err)
		}
		stats.Searches[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error search stats iteration: %w", err)
	}
	return stats, nil
}
