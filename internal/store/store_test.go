package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := &User{Username: "johndoe", Email: "john@example.com", PasswordHash: "x", APIKey: "key-1"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}

	dupEmail := &User{Username: "other", Email: "john@example.com", PasswordHash: "x", APIKey: "key-2"}
	if err := s.CreateUser(ctx, dupEmail); err != ErrDuplicateUser {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	dupName := &User{Username: "johndoe", Email: "new@example.com", PasswordHash: "x", APIKey: "key-3"}
	if err := s.CreateUser(ctx, dupName); err != ErrDuplicateUser {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestUserLookups(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := &User{Username: "johndoe", Email: "john@example.com", PasswordHash: "x", APIKey: "key-1"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	byEmail, err := s.UserByEmail(ctx, "john@example.com")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("by email: %v %+v", err, byEmail)
	}
	byKey, err := s.UserByAPIKey(ctx, "key-1")
	if err != nil || byKey.ID != u.ID {
		t.Fatalf("by api key: %v %+v", err, byKey)
	}
	byID, err := s.UserByID(ctx, u.ID)
	if err != nil || byID.Username != "johndoe" {
		t.Fatalf("by id: %v %+v", err, byID)
	}

	_, err = s.UserByEmail(ctx, "missing@example.com")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUserHistoryPagination(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		check := &IGNCheck{
			UserID:    1,
			GameCode:  "mlbb",
			IGN:       "Player",
			Available: i%2 == 0,
			CheckedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.RecordCheck(ctx, check); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	page, total, err := s.UserHistory(ctx, 1, 2, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page))
	}
	if !page[0].CheckedAt.After(page[1].CheckedAt) {
		t.Fatal("expected newest-first ordering")
	}

	rest, _, err := s.UserHistory(ctx, 1, 10, 2)
	if err != nil {
		t.Fatalf("history offset: %v", err)
	}
	if len(rest) != 3 {
		t.Fatalf("expected 3 remaining rows, got %d", len(rest))
	}
}

func TestUserCheckSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	checks := []IGNCheck{
		{UserID: 1, GameCode: "mlbb", Available: true},
		{UserID: 1, GameCode: "mlbb", Available: false},
		{UserID: 1, GameCode: "genshin", Available: true},
		{UserID: 2, GameCode: "coc", Available: true},
	}
	for i := range checks {
		if err := s.RecordCheck(ctx, &checks[i]); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	summary, err := s.UserCheckSummary(ctx, 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalChecks != 3 || summary.SuccessfulChecks != 2 || summary.GamesChecked != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRequestStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	stats := []RequestStat{
		{Endpoint: "/api/check-ign", Method: "POST", StatusCode: 200, DurationMS: 120, ClientIP: "1.1.1.1", CreatedAt: now},
		{Endpoint: "/api/check-ign", Method: "POST", StatusCode: 404, DurationMS: 80, ClientIP: "2.2.2.2", CreatedAt: now},
		{Endpoint: "/api/games", Method: "GET", StatusCode: 200, DurationMS: 10, ClientIP: "1.1.1.1", CreatedAt: now},
		{Endpoint: "/api/games", Method: "GET", StatusCode: 200, DurationMS: 10, ClientIP: "1.1.1.1", CreatedAt: now.Add(-48 * time.Hour)},
	}
	for i := range stats {
		if err := s.RecordRequest(ctx, &stats[i]); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	since := now.Add(-24 * time.Hour)
	overview, err := s.RequestOverview(ctx, since)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalRequests != 3 {
		t.Fatalf("expected 3 requests in window, got %d", overview.TotalRequests)
	}
	if overview.UniqueIPs != 2 {
		t.Fatalf("expected 2 unique ips, got %d", overview.UniqueIPs)
	}
	if overview.SuccessfulRequests != 2 || overview.ErrorRequests != 1 {
		t.Fatalf("unexpected overview %+v", overview)
	}

	endpoints, err := s.TopEndpoints(ctx, since, 10)
	if err != nil {
		t.Fatalf("endpoints: %v", err)
	}
	if len(endpoints) != 2 {
		t.Fatalf("expected 2 endpoint rows, got %d", len(endpoints))
	}

	hourly, err := s.HourlyDistribution(ctx, since)
	if err != nil {
		t.Fatalf("hourly: %v", err)
	}
	if len(hourly) == 0 {
		t.Fatal("expected hourly buckets")
	}
}

func TestGameCheckStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	checks := []IGNCheck{
		{UserID: 1, GameCode: "mlbb", Available: true, CheckedAt: now},
		{UserID: 2, GameCode: "mlbb", Available: false, CheckedAt: now},
		{UserID: 1, GameCode: "genshin", Available: true, CheckedAt: now},
	}
	for i := range checks {
		if err := s.RecordCheck(ctx, &checks[i]); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := s.GameCheckStats(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("game stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 games, got %d", len(stats))
	}
	if stats[0].GameCode != "mlbb" || stats[0].TotalChecks != 2 || stats[0].UniqueUsers != 2 {
		t.Fatalf("unexpected first row %+v", stats[0])
	}
	if stats[0].SuccessRate != 50.0 {
		t.Fatalf("expected 50%% success rate, got %v", stats[0].SuccessRate)
	}
}
