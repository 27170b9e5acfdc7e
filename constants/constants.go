package constants

import "os"

func GetConfigPath() string {
	path := os.Getenv("SCALECHORDS_CONFIG")
	if path != "" {
		return path
	}
	return "./scalechords.ini"
}

// GetFormulasPath returns "" when no formula file is configured through the
// environment; the built-in table is used in that case.
func GetFormulasPath() string {
	return os.Getenv("FORMULAS_PATH")
}

func GetListenAddress() string {
	return os.Getenv("LISTEN_ADDRESS")
}

// semitones in one octave
const OctaveSize = 12

const DefaultListenAddress = ":8080"

const ReloadDebounceMillis = 200
