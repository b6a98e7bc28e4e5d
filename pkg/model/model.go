// Package model provides the data structures shared between the index cache,
// the artifact fetcher, the installer and the persistent state store.
package model

import (
	"sort"

	"github.com/hashicorp/go-version"
)

// Source records where an installed package came from.
type Source string

const (
	// SourceGithub marks packages fetched from the remote repository.
	SourceGithub Source = "github"
	// SourceLocal marks packages installed from a local directory or archive.
	SourceLocal Source = "local"
)

// DefaultLocalVersion is recorded for packages installed from a local source
// that carry no version of their own.
const DefaultLocalVersion = "1.0.0"

// PackageRecord is one entry of the remote index. It is read-only from the
// installer's perspective; name matches the entry's key in the index mapping.
type PackageRecord struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Description  string   `json:"description,omitempty"`
	Author       string   `json:"author,omitempty"`
	License      string   `json:"license,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

// GetVersion returns the parsed version of this record, or nil when the
// version string does not parse.
func (r *PackageRecord) GetVersion() *version.Version {
	v, err := version.NewVersion(r.Version)
	if err != nil {
		return nil
	}
	return v
}

// Index maps package names to their latest advertised records.
type Index map[string]PackageRecord

// Names returns the sorted package names the index advertises.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Artifact is the fetched content of a single package: the primary source
// file plus its metadata record.
type Artifact struct {
	Name     string
	Content  []byte
	Metadata PackageRecord
}

// InstalledEntry is the persisted record of one installed package. Entries
// are replaced whole, never mutated in place.
type InstalledEntry struct {
	Version     string `json:"version"`
	Path        string `json:"path"`
	Source      Source `json:"source"`
	InstalledAt string `json:"installed_at,omitempty"`
}
