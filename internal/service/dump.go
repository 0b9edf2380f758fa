package service

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeName sanitizes an identity for use as a dump filename prefix.
func SafeName(s string) string {
	return unsafeNameChars.ReplaceAllString(s, "_")
}

// Dumper writes diagnostic JSON snapshots when the debug profile enables
// them. Dumps are pure observability; no caller consumes them and a failed
// write is only logged.
type Dumper struct {
	enabled bool
	dir     string
}

// NewDumper creates a dumper honoring the configured profile.
func NewDumper(cfg *config.Config) *Dumper {
	return &Dumper{enabled: cfg.Profile.DumpEnabled, dir: cfg.DumpDir}
}

// Write serializes v as indented JSON into the dump directory.
func (d *Dumper) Write(filename string, v interface{}) {
	if !d.enabled {
		return
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		log.Printf("[dump] creating %s: %v", d.dir, err)
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("[dump] encoding %s: %v", filename, err)
		return
	}
	path := filepath.Join(d.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[dump] writing %s: %v", path, err)
	}
}
