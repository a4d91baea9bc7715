package lookup

import (
	"sort"
	"strings"
)

// errorCodeNotFound is the sentinel the provider returns for missing
// accounts on voucher types that do not use the success flag.
const errorCodeNotFound = "-100"

const (
	notFoundIGN = "IGN Tidak Ditemukan"
	notFoundTag = "Player Tag Tidak Ditemukan"
)

// sharedOverseasZone is the zone id the storefront accepts for titles that
// have no per-account region.
const sharedOverseasZone = "os_001"

// profiles is the adapter table. Adding a game is a data edit here, not new
// code: pick the price point, the voucher type, the zone rule, and the quirk.
// A new game's quirk should stay on the default success-flag rule until
// confirmed against a live response.
var profiles = map[string]GameProfile{
	"mlbb": {
		Code:           "mlbb",
		Name:           "Mobile Legends: Bang Bang",
		Description:    "MOBA by Moonton",
		Platform:       "mobile",
		VoucherType:    "MOBILE_LEGENDS",
		PricePointID:   "27684",
		Price:          "527250",
		RequiresZone:   true,
		NotFoundReason: notFoundIGN,
	},
	"genshin": {
		Code:           "genshin",
		Name:           "Genshin Impact",
		Description:    "Open-world RPG by HoYoverse",
		Platform:       "mobile/pc",
		VoucherType:    "GENSHIN_IMPACT",
		PricePointID:   "116054",
		Price:          "16500",
		ZoneResolver:   resolveGenshinServer,
		RenderZone:     renderGenshinServer,
		NotFoundReason: notFoundIGN,
		NotFound:       quirkErrorCode(errorCodeNotFound),
	},
	"pubg-mobile": {
		Code:           "pubg-mobile",
		Name:           "PUBG Mobile",
		Description:    "Battle royale by Tencent",
		Platform:       "mobile",
		VoucherType:    "PUBG_MOBILE",
		PricePointID:   "194305",
		Price:          "16500",
		DefaultZoneID:  sharedOverseasZone,
		NotFoundReason: notFoundIGN,
	},
	"free-fire": {
		Code:           "free-fire",
		Name:           "Free Fire",
		Description:    "Battle royale by Garena",
		Platform:       "mobile",
		VoucherType:    "FREE_FIRE",
		PricePointID:   "46741",
		Price:          "16500",
		DefaultZoneID:  sharedOverseasZone,
		NotFoundReason: notFoundIGN,
	},
	"cod-mobile": {
		Code:           "cod-mobile",
		Name:           "Call of Duty Mobile",
		Description:    "FPS by Activision",
		Platform:       "mobile",
		VoucherType:    "CALL_OF_DUTY_MOBILE",
		PricePointID:   "242461",
		Price:          "16500",
		DefaultZoneID:  sharedOverseasZone,
		NotFoundReason: notFoundIGN,
	},
	"valorant": {
		Code:           "valorant",
		Name:           "Valorant",
		Description:    "Tactical FPS by Riot Games",
		Platform:       "pc",
		VoucherType:    "VALORANT",
		PricePointID:   "297513",
		Price:          "105000",
		DefaultZoneID:  sharedOverseasZone,
		NotFoundReason: notFoundIGN,
	},
	"lol": {
		Code:           "lol",
		Name:           "League of Legends",
		Description:    "MOBA by Riot Games",
		Platform:       "pc",
		VoucherType:    "LEAGUE_OF_LEGENDS",
		PricePointID:   "59721",
		Price:          "105000",
		DefaultZoneID:  sharedOverseasZone,
		NotFoundReason: notFoundIGN,
	},
	"coc": {
		Code:            "coc",
		Name:            "Clash of Clans",
		Description:     "Strategy by Supercell",
		Platform:        "mobile",
		VoucherType:     "CLASH_OF_CLANS",
		PricePointID:    "40948",
		Price:           "16500",
		NormalizeUserID: normalizeClashTag,
		NotFoundReason:  notFoundTag,
	},
}

// unsupportedNames maps codes of games the provider cannot check yet to
// their display names. Unknown codes fall back to the raw code.
var unsupportedNames = map[string]string{
	"dota2":       "Dota 2",
	"cs2":         "Counter-Strike 2",
	"apex":        "Apex Legends",
	"fortnite":    "Fortnite",
	"minecraft":   "Minecraft",
	"roblox":      "Roblox",
	"fifa-mobile": "FIFA Mobile",
	"efootball":   "eFootball",
}

func normalizeClashTag(tag string) string {
	if strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}

// ProfileFor returns the adapter profile for a game code.
func ProfileFor(code string) (GameProfile, bool) {
	p, ok := profiles[code]
	return p, ok
}

// Profiles returns all supported game profiles sorted by name.
func Profiles() []GameProfile {
	out := make([]GameProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DisplayName resolves a human-readable name for any game code, supported
// or not, falling back to the raw code.
func DisplayName(code string) string {
	if p, ok := profiles[code]; ok {
		return p.Name
	}
	if name, ok := unsupportedNames[code]; ok {
		return name
	}
	return code
}

// SearchProfiles returns supported profiles whose name, description, or
// platform contains the query, case-insensitively.
func SearchProfiles(query string) []GameProfile {
	q := strings.ToLower(query)
	var out []GameProfile
	for _, p := range Profiles() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Platform), q) {
			out = append(out, p)
		}
	}
	return out
}
