package store

import (
	"context"
	"time"
)

// Overview aggregates request traffic over a window.
type Overview struct {
	TotalRequests      int64   `json:"total_requests"`
	UniqueIPs          int64   `json:"unique_ips"`
	AvgResponseTimeMS  float64 `json:"avg_response_time"`
	SuccessfulRequests int64   `json:"successful_requests"`
	ErrorRequests      int64   `json:"error_requests"`
}

// GameStat aggregates checks per game over a window.
type GameStat struct {
	GameCode         string  `json:"code"`
	Name             string  `json:"name"`
	TotalChecks      int64   `json:"total_checks"`
	SuccessfulChecks int64   `json:"successful_checks"`
	FailedChecks     int64   `json:"failed_checks"`
	SuccessRate      float64 `json:"success_rate"`
	UniqueUsers      int64   `json:"unique_users"`
}

// EndpointStat aggregates requests per endpoint over a window.
type EndpointStat struct {
	Endpoint          string  `json:"endpoint"`
	Method            string  `json:"method"`
	RequestCount      int64   `json:"request_count"`
	AvgResponseTimeMS float64 `json:"avg_response_time"`
}

// HourlyStat counts requests per UTC hour.
type HourlyStat struct {
	Hour         string `json:"hour"`
	RequestCount int64  `json:"request_count"`
}

// RequestOverview aggregates request stats since the given time.
func (s *Store) RequestOverview(ctx context.Context, since time.Time) (Overview, error) {
	var o Overview
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_requests,
			COUNT(DISTINCT client_ip) AS unique_ips,
			COALESCE(AVG(duration_ms), 0) AS avg_response_time_ms,
			COUNT(CASE WHEN status_code BETWEEN 200 AND 299 THEN 1 END) AS successful_requests,
			COUNT(CASE WHEN status_code >= 400 THEN 1 END) AS error_requests
		FROM request_stats
		WHERE created_at >= ?`, since).Scan(&o).Error
	return o, err
}

// GameCheckStats aggregates check history per game since the given time.
func (s *Store) GameCheckStats(ctx context.Context, since time.Time) ([]GameStat, error) {
	var stats []GameStat
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			game_code,
			COUNT(*) AS total_checks,
			COUNT(CASE WHEN available THEN 1 END) AS successful_checks,
			COUNT(CASE WHEN NOT available THEN 1 END) AS failed_checks,
			ROUND(COUNT(CASE WHEN available THEN 1 END) * 100.0 / COUNT(*), 2) AS success_rate,
			COUNT(DISTINCT user_id) AS unique_users
		FROM ign_checks
		WHERE checked_at >= ?
		GROUP BY game_code
		ORDER BY total_checks DESC`, since).Scan(&stats).Error
	return stats, err
}

// TopEndpoints returns the busiest endpoints since the given time.
func (s *Store) TopEndpoints(ctx context.Context, since time.Time, limit int) ([]EndpointStat, error) {
	if limit <= 0 {
		limit = 10
	}
	var stats []EndpointStat
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			endpoint,
			method,
			COUNT(*) AS request_count,
			COALESCE(AVG(duration_ms), 0) AS avg_response_time_ms
		FROM request_stats
		WHERE created_at >= ?
		GROUP BY endpoint, method
		ORDER BY request_count DESC
		LIMIT ?`, since, limit).Scan(&stats).Error
	return stats, err
}

// HourlyDistribution buckets requests per UTC hour since the given time.
func (s *Store) HourlyDistribution(ctx context.Context, since time.Time) ([]HourlyStat, error) {
	var stats []HourlyStat
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			strftime('%H', created_at) AS hour,
			COUNT(*) AS request_count
		FROM request_stats
		WHERE created_at >= ?
		GROUP BY strftime('%H', created_at)
		ORDER BY hour`, since).Scan(&stats).Error
	return stats, err
}
