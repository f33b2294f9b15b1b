// Package commands contains the core logic for data collection for each command.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/shelltree/internal/utils"
)

const (
	standardInputSourceName = "<stdin>"

	errorReadSourceFormat   = "reading transcript %s: %w"
	errorBinarySourceFormat = "transcript %s looks like binary data"
)

// Source is a transcript loaded into memory.
type Source struct {
	Name string
	Text string
}

// LoadSources reads every transcript path. "-" reads standardInput, and an
// empty path list reads standardInput once.
func LoadSources(paths []string, standardInput io.Reader) ([]Source, error) {
	if len(paths) == 0 {
		paths = []string{utils.StandardInputName}
	}
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		var data []byte
		var readError error
		name := path
		if path == utils.StandardInputName {
			name = standardInputSourceName
			data, readError = io.ReadAll(standardInput)
		} else {
			data, readError = os.ReadFile(path)
		}
		if readError != nil {
			return nil, fmt.Errorf(errorReadSourceFormat, name, readError)
		}
		if utils.IsBinary(data) {
			return nil, fmt.Errorf(errorBinarySourceFormat, name)
		}
		sources = append(sources, Source{Name: name, Text: string(data)})
	}
	return sources, nil
}
