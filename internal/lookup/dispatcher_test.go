package lookup

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/metrics"
	"ign-lookup-service/internal/providers/codashop"
)

type stubClient struct {
	calls  int
	orders []codashop.Order
	resp   *codashop.InitPaymentResponse
	err    error
}

func (s *stubClient) InitPayment(ctx context.Context, order codashop.Order) (*codashop.InitPaymentResponse, error) {
	_ = ctx
	s.calls++
	s.orders = append(s.orders, order)
	return s.resp, s.err
}

func TestDispatchFoundForAllSupportedGames(t *testing.T) {
	for _, p := range Profiles() {
		p := p
		t.Run(p.Code, func(t *testing.T) {
			client := &stubClient{resp: successBody(p.Name, "Some+Player", "12345", "2418")}
			// errorCode stays empty, so both quirk variants read this as found
			d := NewDispatcher(client, nil, metrics.NewRecorder())

			result := d.Dispatch(context.Background(), p.Code, "12345", "2418")
			if result.Outcome != domain.OutcomeFound {
				t.Fatalf("expected found, got %s (%s)", result.Outcome, result.Detail)
			}
			if strings.Contains(result.Account.IGN, "+") {
				t.Fatalf("ign must not contain '+': %q", result.Account.IGN)
			}
			if client.calls != 1 {
				t.Fatalf("expected one outbound call, got %d", client.calls)
			}
		})
	}
}

func TestDispatchNotFoundForAllSupportedGames(t *testing.T) {
	for _, p := range Profiles() {
		p := p
		t.Run(p.Code, func(t *testing.T) {
			resp := &codashop.InitPaymentResponse{Success: false}
			if p.Code == "genshin" {
				resp.ErrorCode = "-100"
			}
			client := &stubClient{resp: resp}
			d := NewDispatcher(client, nil, metrics.NewRecorder())

			result := d.Dispatch(context.Background(), p.Code, "nobody", "")
			if result.Outcome != domain.OutcomeNotFound {
				t.Fatalf("expected not found, got %s", result.Outcome)
			}
			if result.Reason == "" {
				t.Fatal("expected a user-facing reason")
			}
		})
	}
}

func TestDispatchUnknownGameSkipsProvider(t *testing.T) {
	client := &stubClient{resp: successBody("x", "x", "x", "")}
	d := NewDispatcher(client, nil, metrics.NewRecorder())

	result := d.Dispatch(context.Background(), "dota2", "whatever", "")
	if result.Outcome != domain.OutcomeUnsupported {
		t.Fatalf("expected unsupported, got %s", result.Outcome)
	}
	if result.GameName != "Dota 2" {
		t.Fatalf("expected display name from the static table, got %q", result.GameName)
	}
	if client.calls != 0 {
		t.Fatalf("expected zero outbound calls, got %d", client.calls)
	}
}

func TestDispatchUnknownGameFallsBackToRawCode(t *testing.T) {
	d := NewDispatcher(&stubClient{}, nil, metrics.NewRecorder())

	result := d.Dispatch(context.Background(), "brand-new-game", "id", "")
	if result.GameName != "brand-new-game" {
		t.Fatalf("expected raw code fallback, got %q", result.GameName)
	}
}

func TestDispatchUpstreamErrorCarriesDetail(t *testing.T) {
	client := &stubClient{err: errors.New("dial tcp: connection refused")}
	d := NewDispatcher(client, nil, metrics.NewRecorder())

	result := d.Dispatch(context.Background(), "mlbb", "123", "2418")
	if result.Outcome != domain.OutcomeUpstreamError {
		t.Fatalf("expected upstream error, got %s", result.Outcome)
	}
	if !strings.Contains(result.Detail, "connection refused") {
		t.Fatalf("expected transport detail preserved, got %q", result.Detail)
	}
}

func TestDispatchBuildsGameSpecificOrder(t *testing.T) {
	client := &stubClient{resp: successBody("Clash of Clans", "Chief", "#2PP0V9LL", "")}
	d := NewDispatcher(client, nil, metrics.NewRecorder())

	d.Dispatch(context.Background(), "coc", "2PP0V9LL", "")

	order := client.orders[0]
	if order.UserID != "#2PP0V9LL" {
		t.Fatalf("tag must be '#'-prefixed on the wire, got %q", order.UserID)
	}
	if order.VoucherType != "CLASH_OF_CLANS" || order.PricePointID != "40948" || order.Price != "16500" {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.ZoneID != "" {
		t.Fatalf("coc sends an empty zone, got %q", order.ZoneID)
	}
}

func TestDispatchResolvesGenshinZoneFromUID(t *testing.T) {
	cases := []struct {
		uid  string
		zone string
	}{
		{"612345678", "os_usa"},
		{"912345678", "os_cht"},
		{"112345678", "os_asia"},
	}
	for _, tc := range cases {
		client := &stubClient{resp: successBody("Genshin Impact", "Traveler", tc.uid, tc.zone)}
		d := NewDispatcher(client, nil, metrics.NewRecorder())

		d.Dispatch(context.Background(), "genshin", tc.uid, "")
		if got := client.orders[0].ZoneID; got != tc.zone {
			t.Errorf("uid %s: expected zone %s on the wire, got %s", tc.uid, tc.zone, got)
		}
	}
}

func TestDispatchExplicitZoneWins(t *testing.T) {
	client := &stubClient{resp: successBody("Mobile Legends", "X", "1", "2418")}
	d := NewDispatcher(client, nil, metrics.NewRecorder())

	d.Dispatch(context.Background(), "mlbb", "1", "2418")
	if got := client.orders[0].ZoneID; got != "2418" {
		t.Fatalf("expected explicit zone, got %q", got)
	}
}

func TestDispatchRecordsOutcomeMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	client := &stubClient{resp: &codashop.InitPaymentResponse{Success: false}}
	d := NewDispatcher(client, nil, rec)

	d.Dispatch(context.Background(), "mlbb", "1", "2418")
	d.Dispatch(context.Background(), "dota2", "1", "")

	if got := rec.LookupCount("mlbb", string(domain.OutcomeNotFound)); got != 1 {
		t.Fatalf("expected 1 not-found recorded, got %d", got)
	}
	if got := rec.LookupCount("dota2", string(domain.OutcomeUnsupported)); got != 1 {
		t.Fatalf("expected 1 unsupported recorded, got %d", got)
	}
}
