package store

import (
	"encoding/json"
	"errors"
	"os"
)

// readJSON loads one tracker file into out. A file that does not exist
// yet reads as the zero value, so every tracker starts empty on first run.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON replaces a tracker file atomically: marshal indented (the
// files are meant to be hand-readable), write a sibling temp file, then
// rename it over the original so an interrupted write never leaves a
// half-written tracker behind.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
