package constants

import "os"

func GetEnv() string {
	env := os.Getenv("CHORDNOVA_ENV")
	if env != "" {
		return env
	}
	return "local"
}

func GetConfigPath() string {
	return os.Getenv("CHORDNOVA_CONFIG")
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

const MidiExtension = ".mid"
