// Package fonts locates the TrueType font used for border labels.
//
// A font can be named by file path, or by file name when it is installed on
// the system (looked up with go-findfont in the usual font directories).
// An empty name selects Go Mono, which is compiled into the binary so a
// diagram can always be labelled.
package fonts

import (
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/tileboard/pkg/errors"
)

// EmbeddedName is the name reported for the built-in font.
const EmbeddedName = "Go Mono (embedded)"

// Source is a font file's contents and where it came from.
type Source struct {
	// Name is the path the font was read from, or EmbeddedName.
	Name string
	Data []byte
}

// Embedded reports whether the source is the built-in font.
func (s Source) Embedded() bool { return s.Name == EmbeddedName }

// Resolve finds and reads a font. The name is tried as a path first. A bare
// file name (no directory) is then looked up among the installed system
// fonts; a name with a directory must exist as given.
func Resolve(name string) (Source, error) {
	if name == "" {
		return Source{Name: EmbeddedName, Data: gomono.TTF}, nil
	}

	path := name
	if _, err := os.Stat(path); err != nil {
		if filepath.Base(name) != name {
			return Source{}, errors.Wrap(errors.ErrCodeAssetLoad, err, "unable to load font: %s", name)
		}
		found, findErr := findfont.Find(name)
		if findErr != nil {
			return Source{}, errors.Wrap(errors.ErrCodeAssetLoad, findErr, "unable to load font: %s", name)
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, errors.Wrap(errors.ErrCodeAssetLoad, err, "unable to load font: %s", path)
	}
	return Source{Name: path, Data: data}, nil
}
