package lookup

import "ign-lookup-service/internal/providers/codashop"

// Quirk decides whether a well-formed provider response is a business
// negative for one game. The provider contract is inconsistent per voucher
// type, so the predicate is data on the profile, not inferred.
type Quirk func(raw *codashop.InitPaymentResponse) bool

// quirkSuccessFlag is the default: not-found is signaled by a falsy success
// flag.
func quirkSuccessFlag(raw *codashop.InitPaymentResponse) bool {
	return !raw.Success
}

// quirkErrorCode treats the sentinel error code as not-found regardless of
// the success flag. Observed on at least one voucher type.
func quirkErrorCode(sentinel string) Quirk {
	return func(raw *codashop.InitPaymentResponse) bool {
		return raw.ErrorCode == sentinel
	}
}

// GameProfile is the static descriptor for one supported game. Profiles are
// defined at process start and never mutated.
type GameProfile struct {
	Code        string
	Name        string
	Description string
	Platform    string

	VoucherType  string
	PricePointID string
	Price        string

	RequiresZone  bool
	DefaultZoneID string

	// NormalizeUserID massages the caller-supplied id before it goes on the
	// wire (e.g. Clash of Clans tags must carry their '#').
	NormalizeUserID func(userID string) string

	// ZoneResolver derives the outbound zone id from the user id when the
	// caller did not supply one.
	ZoneResolver func(userID string) string

	// RenderZone maps the provider's internal zone code to a human-readable
	// region name on the way out.
	RenderZone func(zoneID string) string

	// NotFoundReason is the user-facing message for business negatives.
	NotFoundReason string

	NotFound Quirk
}

// notFound applies the profile's quirk, defaulting to the success-flag rule.
func (p GameProfile) notFound(raw *codashop.InitPaymentResponse) bool {
	if p.NotFound != nil {
		return p.NotFound(raw)
	}
	return quirkSuccessFlag(raw)
}

// outboundUserID applies the profile's id normalization when defined.
func (p GameProfile) outboundUserID(userID string) string {
	if p.NormalizeUserID != nil {
		return p.NormalizeUserID(userID)
	}
	return userID
}

// resolveZone picks the effective zone id: an explicit zone wins, then the
// resolver, then the profile default, then empty.
func (p GameProfile) resolveZone(userID, zoneID string) string {
	if zoneID != "" {
		return zoneID
	}
	if p.ZoneResolver != nil {
		return p.ZoneResolver(userID)
	}
	return p.DefaultZoneID
}
