// Package paths locates SLP and palette data files for the tools and
// tests in this module.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// getPossiblePaths lists the locations a datafile shortname may resolve
// to, in probing order.
func getPossiblePaths(fileName string) []string {
	paths := []string{
		fileName,
		filepath.Join("datafiles", fileName),
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		paths = append(paths, filepath.Join(gopath, "src", "github.com", "ChariotEngine", "Slp", "datafiles", fileName))
	}
	if srcdir := os.Getenv("TEST_SRCDIR"); srcdir != "" {
		paths = append(paths, filepath.Join(srcdir, "slp", "datafiles", fileName))
	}
	return paths
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at, or an empty string when no
// candidate location has it.
//
// For example, for "interface.pal" it may return
// "datafiles/interface.pal".
func Find(fileName string) string {
	for _, path := range getPossiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would
// look, and opens it. If Find returns an empty string, an error is
// returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "no candidate location has %q", fileName)
	}
	return os.Open(path)
}

// NoFindOpen opens the passed path directly, without probing the
// candidate locations.
func NoFindOpen(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	return os.Open(fileName)
}
