//go:build windows

package processes

// Names are the Riot Client and League client image names.
var Names = []string{
	"RiotClientServices.exe",
	"RiotClientUx.exe",
	"RiotClientUxRender.exe",
	"LeagueClient.exe",
	"LeagueClientUx.exe",
	"LeagueClientUxRender.exe",
}

func killCommand(name string) (string, []string) {
	return "taskkill", []string{"/F", "/IM", name}
}
