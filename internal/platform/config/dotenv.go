package config

import (
	stderrs "errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotenv merges KEY=VALUE files into the process environment without overriding
// variables that are already set. Missing files are skipped; with no paths ".env" is tried
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if stderrs.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
