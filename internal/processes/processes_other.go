//go:build !windows && !darwin

package processes

var Names = []string{
	"RiotClientServices",
	"RiotClientUx",
	"RiotClientUxRender",
	"LeagueClient",
	"LeagueClientUx",
	"LeagueClientUxRender",
}

func killCommand(name string) (string, []string) {
	return "pkill", []string{"-f", name}
}
