package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	HomeEnv   = "EARTHEDIT_HOME"
	RecentEnv = "EARTHEDIT_RECENT"
)

// DocumentsDir returns the folder new documents are created in, creating
// it if needed: $EARTHEDIT_HOME, else ~/Documents/EarthEdit.
func DocumentsDir() (string, error) {
	dir := os.Getenv(HomeEnv)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("documents folder: %w", err)
		}
		dir = filepath.Join(home, "Documents", "EarthEdit")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("documents folder: %w", err)
	}
	return dir, nil
}

// RecentPath returns the recent-files store: $EARTHEDIT_RECENT, else
// recent.json in the documents folder.
func RecentPath() (string, error) {
	if p := os.Getenv(RecentEnv); p != "" {
		return p, nil
	}
	dir, err := DocumentsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recent.json"), nil
}
