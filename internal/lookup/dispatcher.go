package lookup

import (
	"context"
	"log/slog"
	"time"

	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/metrics"
	"ign-lookup-service/internal/providers"
	"ign-lookup-service/internal/providers/codashop"
)

// Dispatcher routes an incoming (gameCode, userID, zoneID) triple to the
// matching adapter profile and returns the normalized result. It holds no
// mutable state; every dispatch is an independent transaction.
type Dispatcher struct {
	client   providers.LookupClient
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewDispatcher constructs a Dispatcher over the given outbound client.
func NewDispatcher(client providers.LookupClient, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	return &Dispatcher{client: client, logger: logger, recorder: recorder}
}

// Dispatch checks one in-game id. Unknown game codes return Unsupported
// without touching the provider. zoneID may be empty; the profile decides
// how to derive one.
func (d *Dispatcher) Dispatch(ctx context.Context, gameCode, userID, zoneID string) domain.LookupResult {
	start := time.Now()
	result := d.dispatch(ctx, gameCode, userID, zoneID)
	d.recorder.RecordLookup(gameCode, string(result.Outcome), time.Since(start))

	if result.Outcome == domain.OutcomeUpstreamError {
		logging.Error(logging.FromContext(ctx, d.logger), "lookup upstream error", nil,
			slog.String(logging.FieldGame, gameCode),
			slog.String("detail", result.Detail),
		)
	}
	return result
}

func (d *Dispatcher) dispatch(ctx context.Context, gameCode, userID, zoneID string) domain.LookupResult {
	profile, ok := ProfileFor(gameCode)
	if !ok {
		return domain.Unsupported(gameCode, DisplayName(gameCode))
	}

	outboundID := profile.outboundUserID(userID)
	zone := profile.resolveZone(outboundID, zoneID)

	raw, err := d.client.InitPayment(ctx, codashop.Order{
		PricePointID: profile.PricePointID,
		Price:        profile.Price,
		VoucherType:  profile.VoucherType,
		UserID:       outboundID,
		ZoneID:       zone,
	})
	if err != nil {
		return domain.UpstreamError(err.Error())
	}

	return normalize(raw, profile)
}
