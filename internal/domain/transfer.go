package domain

import (
	"strings"
	"time"
)

// ShareVersion is the current share-package schema version, stamped on every
// exported package.
const ShareVersion = 1

// Backup is the full-dataset snapshot written by the backup export.
// Importing a backup is destructive: both tables are cleared and replaced in
// one transaction, identities included.
type Backup struct {
	Trips      []Trip     `json:"trips"`
	Items      []TripItem `json:"items"`
	ExportedAt time.Time  `json:"exportedAt"`
}

// SharePackage is a single-trip export meant to be handed to another user.
// Importing one is additive: stored identities are stripped so the store
// assigns fresh ones, which means the same file can be imported any number
// of times without ever colliding with existing trips.
type SharePackage struct {
	Trip     Trip       `json:"trip"`
	Items    []TripItem `json:"items"`
	SharedAt time.Time  `json:"sharedAt"`
	Version  int        `json:"version"`
}

// BackupFileName returns the conventional backup file name for the given
// date: "wanderlust-backup-2006-01-02.json".
func BackupFileName(now time.Time) string {
	return "wanderlust-backup-" + now.UTC().Format(DayKeyLayout) + ".json"
}

// Slugify lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen, for use in share file names. Returns "" when nothing
// usable remains.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
