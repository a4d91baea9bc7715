package lookup

// Genshin Impact accounts embed their region in the UID: the first digit
// selects the server. Unrecognized digits fall back to the Asia region,
// matching the storefront's own behavior.
var genshinServersByUIDPrefix = map[byte]string{
	'6': "os_usa",
	'7': "os_euro",
	'8': "os_asia",
	'9': "os_cht",
}

var genshinServerNames = map[string]string{
	"os_usa":  "America",
	"os_euro": "Europe",
	"os_asia": "Asia",
	"os_cht":  "TW_HK_MO",
}

const (
	genshinDefaultServer     = "os_asia"
	genshinDefaultServerName = "Asia"
)

func resolveGenshinServer(uid string) string {
	if uid == "" {
		return genshinDefaultServer
	}
	if server, ok := genshinServersByUIDPrefix[uid[0]]; ok {
		return server
	}
	return genshinDefaultServer
}

func renderGenshinServer(code string) string {
	if name, ok := genshinServerNames[code]; ok {
		return name
	}
	return genshinDefaultServerName
}
