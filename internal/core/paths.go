package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	DataDir     string
	LogFile     string
	ConfigFile  string
	JournalFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		dataDir := filepath.Join(homeDir, ".tsh")
		if dir := os.Getenv("TSH_DATA_DIR"); dir != "" {
			dataDir = dir
		}

		defaultPaths = &Paths{
			DataDir:     dataDir,
			LogFile:     filepath.Join(dataDir, "tsh.log"),
			ConfigFile:  filepath.Join(dataDir, "config.yaml"),
			JournalFile: filepath.Join(dataDir, "journal.db"),
		}

		err = os.MkdirAll(defaultPaths.DataDir, 0755)
		if err != nil {
			panic(err)
		}
	}
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

func JournalFile() string {
	ensureDefaultPaths()
	return defaultPaths.JournalFile
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
