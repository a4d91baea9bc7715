package lookup

import (
	"strings"

	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/providers/codashop"
)

// cleanIGN undoes the provider's form-encoding artifact: literal '+'
// characters stand in for spaces in returned usernames.
func cleanIGN(raw string) string {
	return strings.ReplaceAll(raw, "+", " ")
}

// normalize converts a raw provider body into the strict result shape using
// the profile's quirk rules. No code past this function sees the raw shape.
func normalize(raw *codashop.InitPaymentResponse, profile GameProfile) domain.LookupResult {
	if profile.notFound(raw) {
		return domain.NotFound(profile.NotFoundReason)
	}

	// The provider contract is assumed consistent when it reports success;
	// missing fields mean the upstream is misbehaving, not that the account
	// is absent.
	if raw.ConfirmationFields == nil || raw.ConfirmationFields.ProductName == "" || raw.ConfirmationFields.Username == "" {
		return domain.UpstreamError("provider response missing confirmation fields")
	}
	if raw.User == nil || raw.User.UserID == "" {
		return domain.UpstreamError("provider response missing user fields")
	}

	zone := raw.User.ZoneID
	if zone != "" && profile.RenderZone != nil {
		zone = profile.RenderZone(zone)
	}

	return domain.Found(
		raw.ConfirmationFields.ProductName,
		cleanIGN(raw.ConfirmationFields.Username),
		raw.User.UserID,
		zone,
	)
}
