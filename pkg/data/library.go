// Package data reads the cross-section data library registry.
//
// The registry is an XML document (conventionally cross_sections.xml)
// listing the data libraries available to a simulation. Its location is
// discovered through the OPENMC_CROSS_SECTIONS environment variable.
package data

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/hturner08/openmc/pkg/app/errors"
)

// EnvCrossSections names the environment variable holding the registry path.
const EnvCrossSections = "OPENMC_CROSS_SECTIONS"

// TypeDepletionChain is the registry entry type for depletion chain files.
const TypeDepletionChain = "depletion_chain"

// ErrNoCrossSections is returned by FromEnv when OPENMC_CROSS_SECTIONS is unset.
var ErrNoCrossSections = errors.New("OPENMC_CROSS_SECTIONS environment variable is not set")

// Entry is one registered data library.
type Entry struct {
	Type      string
	Path      string
	Materials []string
}

// Library is the parsed registry. Entries keep registration order; later
// entries of the same type take precedence over earlier ones.
type Library struct {
	// Path is the registry document this library was loaded from.
	Path string
	// Entries lists the registered libraries in document order.
	Entries []Entry
}

type libraryXML struct {
	XMLName xml.Name   `xml:"cross_sections"`
	Entries []entryXML `xml:"library"`
}

type entryXML struct {
	Type      string `xml:"type,attr"`
	Path      string `xml:"path,attr"`
	Materials string `xml:"materials,attr"`
}

// FromXML reads a registry document from path. Relative entry paths are
// resolved against the document's directory.
func FromXML(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.IOError(fmt.Errorf("reading cross sections %s: %w", path, err), "cross-section registry unreadable")
	}

	var doc libraryXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.DataError(fmt.Errorf("parsing cross sections %s: %w", path, err), "malformed cross-section registry")
	}

	base := filepath.Dir(path)
	lib := &Library{Path: path}
	for _, e := range doc.Entries {
		entry := Entry{
			Type: e.Type,
			Path: e.Path,
		}
		if entry.Path != "" && !filepath.IsAbs(entry.Path) {
			entry.Path = filepath.Join(base, entry.Path)
		}
		if e.Materials != "" {
			entry.Materials = strings.Fields(e.Materials)
		}
		lib.Entries = append(lib.Entries, entry)
	}

	return lib, nil
}

// FromEnv loads the registry from its default discovery path, the
// OPENMC_CROSS_SECTIONS environment variable.
func FromEnv() (*Library, error) {
	path := os.Getenv(EnvCrossSections)
	if path == "" {
		return nil, apperrors.ConfigError(ErrNoCrossSections, "cross-section registry not configured")
	}
	return FromXML(path)
}

// DepletionChain returns the path of the last registered depletion_chain
// entry. Scanning starts from the end of the list so that later
// registrations override earlier ones of the same type.
func (l *Library) DepletionChain() (string, bool) {
	found := false
	var path string
	for i := len(l.Entries) - 1; i >= 0; i-- {
		if l.Entries[i].Type == TypeDepletionChain {
			found = true
			path = l.Entries[i].Path
			break
		}
	}
	return path, found
}
