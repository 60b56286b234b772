//go:build darwin

package processes

var Names = []string{
	"Riot Client",
	"RiotClientServices",
	"RiotClientUx",
	"RiotClientUxRender",
	"LeagueClient",
	"LeagueClientUx",
	"LeagueClientUxRender",
}

// pkill -f matches the full command line, so "Riot Client" also catches the app bundle path.
func killCommand(name string) (string, []string) {
	return "pkill", []string{"-f", name}
}
