package lookup

import (
	"testing"

	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/providers/codashop"
)

func successBody(product, username, userID, zoneID string) *codashop.InitPaymentResponse {
	return &codashop.InitPaymentResponse{
		Success:            true,
		ConfirmationFields: &codashop.ConfirmationFields{ProductName: product, Username: username},
		User:               &codashop.UserFields{UserID: userID, ZoneID: zoneID},
	}
}

func TestCleanIGN(t *testing.T) {
	if got := cleanIGN("John+Doe"); got != "John Doe" {
		t.Fatalf("expected %q, got %q", "John Doe", got)
	}
	if got := cleanIGN("NoPlus"); got != "NoPlus" {
		t.Fatalf("input without '+' must be unchanged, got %q", got)
	}
	if got := cleanIGN("a+b+c"); got != "a b c" {
		t.Fatalf("every '+' must be replaced, got %q", got)
	}
}

func TestNormalizeFound(t *testing.T) {
	p, _ := ProfileFor("mlbb")
	result := normalize(successBody("Mobile Legends", "John+Doe", "469123581", "2418"), p)

	if result.Outcome != domain.OutcomeFound {
		t.Fatalf("expected found, got %s", result.Outcome)
	}
	if result.Account.IGN != "John Doe" {
		t.Fatalf("expected cleaned ign, got %q", result.Account.IGN)
	}
	if result.Account.ID != "469123581" || result.Account.Zone != "2418" {
		t.Fatalf("unexpected account %+v", result.Account)
	}
	if result.Game != "Mobile Legends" {
		t.Fatalf("unexpected game %q", result.Game)
	}
}

func TestNormalizeNotFoundOnSuccessFlag(t *testing.T) {
	p, _ := ProfileFor("mlbb")
	result := normalize(&codashop.InitPaymentResponse{Success: false}, p)

	if result.Outcome != domain.OutcomeNotFound {
		t.Fatalf("expected not found, got %s", result.Outcome)
	}
	if result.Reason != "IGN Tidak Ditemukan" {
		t.Fatalf("unexpected reason %q", result.Reason)
	}
}

func TestNormalizeGenshinSentinelOverridesSuccess(t *testing.T) {
	p, _ := ProfileFor("genshin")
	raw := successBody("Genshin Impact", "Traveler", "612345678", "os_usa")
	raw.ErrorCode = "-100"

	result := normalize(raw, p)
	if result.Outcome != domain.OutcomeNotFound {
		t.Fatalf("sentinel must override success flag, got %s", result.Outcome)
	}
}

func TestNormalizeGenshinSuccessIgnoresFalsySuccessFlag(t *testing.T) {
	// The errorCode quirk replaces the success-flag rule entirely, so a
	// response without the flag but without the sentinel still counts.
	p, _ := ProfileFor("genshin")
	raw := successBody("Genshin Impact", "Traveler", "612345678", "os_usa")
	raw.Success = false

	result := normalize(raw, p)
	if result.Outcome != domain.OutcomeFound {
		t.Fatalf("expected found, got %s", result.Outcome)
	}
	if result.Account.Zone != "America" {
		t.Fatalf("expected rendered zone, got %q", result.Account.Zone)
	}
}

func TestNormalizeRendersZoneThroughProfile(t *testing.T) {
	p, _ := ProfileFor("genshin")
	result := normalize(successBody("Genshin Impact", "Traveler", "912345678", "os_cht"), p)

	if result.Account.Zone != "TW_HK_MO" {
		t.Fatalf("expected TW_HK_MO, got %q", result.Account.Zone)
	}
}

func TestNormalizeMissingFieldsAreUpstreamErrors(t *testing.T) {
	p, _ := ProfileFor("mlbb")

	cases := []struct {
		name string
		raw  *codashop.InitPaymentResponse
	}{
		{"no confirmation fields", &codashop.InitPaymentResponse{Success: true}},
		{"empty username", &codashop.InitPaymentResponse{
			Success:            true,
			ConfirmationFields: &codashop.ConfirmationFields{ProductName: "Mobile Legends"},
			User:               &codashop.UserFields{UserID: "1"},
		}},
		{"no user block", &codashop.InitPaymentResponse{
			Success:            true,
			ConfirmationFields: &codashop.ConfirmationFields{ProductName: "Mobile Legends", Username: "X"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := normalize(tc.raw, p)
			if result.Outcome != domain.OutcomeUpstreamError {
				t.Fatalf("expected upstream error, got %s", result.Outcome)
			}
		})
	}
}
