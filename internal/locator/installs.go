package locator

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Keys of RiotClientInstalls.json that point at the client launcher itself;
// the other keys are per-game installs.
var clientInstallKeys = []string{"rc_default", "rc_live"}

// InstallsManifest reads %ProgramData%\Riot Games\RiotClientInstalls.json.
// programData is evaluated on each call; when it is empty the source is silent.
func InstallsManifest(programData func() string) Source {
	return func() []string {
		root := programData()
		if root == "" {
			return nil
		}

		data, err := os.ReadFile(filepath.Join(root, "Riot Games", "RiotClientInstalls.json"))
		if err != nil {
			return nil
		}

		// Values are mixed: launcher paths are strings, associated_client and
		// patchlines are objects.
		var installs map[string]json.RawMessage
		if err := json.Unmarshal(data, &installs); err != nil {
			return nil
		}

		var paths []string
		for _, key := range clientInstallKeys {
			var p string
			if err := json.Unmarshal(installs[key], &p); err != nil || p == "" {
				continue
			}
			paths = append(paths, filepath.Clean(p))
		}
		return paths
	}
}
