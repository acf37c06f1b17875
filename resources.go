package skills_installer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	rice "github.com/GeertJohan/go.rice"
)

var resourcesBox *rice.Box
var dataBox *rice.Box

type dataFile struct {
	path string
	info os.FileInfo
}

// openBoxes opens the two payload boxes: "resources" holds the installer's
// own config and language files, "data" holds the skill bundle that gets
// copied to the target.
//
// For go.rice's 'append' mode to work, all calls to FindBox() have to be with
// a literal string parameter.
func openBoxes() (err error) {
	resourcesBox, err = rice.FindBox("resources")
	if err != nil {
		return fmt.Errorf("resources payload not found: %w", err)
	}
	dataBox, err = rice.FindBox("data")
	if err != nil {
		return fmt.Errorf("data payload not found: %w", err)
	}
	return nil
}

// GetResource returns the content of a single file from the resources box.
func GetResource(name string) (string, error) {
	if resourcesBox == nil {
		return "", fmt.Errorf("resources payload not opened")
	}
	return resourcesBox.String(name)
}

// MustGetResource is GetResource for resources that are compiled in and thus
// cannot be missing. It panics on error.
func MustGetResource(name string) string {
	content, err := GetResource(name)
	if err != nil {
		panic(err)
	}
	return content
}

// GetResourceFiltered returns a map of filename to content for all files
// under the named resource directory whose path matches the given filter.
func GetResourceFiltered(name string, fileFilter *regexp.Regexp) (map[string]string, error) {
	if resourcesBox == nil {
		return nil, fmt.Errorf("resources payload not opened")
	}
	contents := make(map[string]string)
	err := resourcesBox.Walk(name, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && fileFilter.FindStringIndex(path) != nil {
			content, err := resourcesBox.String(path)
			if err != nil {
				return err
			}
			contents[path] = content
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", name, err)
	}
	return contents, nil
}

// MustGetResourceFiltered is GetResourceFiltered for resource directories
// that are compiled in and thus cannot be missing. It panics on error.
func MustGetResourceFiltered(name string, fileFilter *regexp.Regexp) map[string]string {
	contents, err := GetResourceFiltered(name, fileFilter)
	if err != nil {
		panic(err)
	}
	return contents
}

// ListDataDir returns all files and directories inside the given subdir of
// the data box, directories before their contents. An empty subdir lists the
// whole box.
func ListDataDir(subdir string) (files []dataFile, err error) {
	if dataBox == nil {
		return nil, fmt.Errorf("data payload not opened")
	}
	err = dataBox.Walk(subdir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// In dev mode the walk hands the box root through as its absolute
		// on-disk path. Only box-relative entries belong to the payload.
		if path == subdir || path == "" || path == "." || filepath.IsAbs(path) {
			return nil
		}
		files = append(files, dataFile{path, info})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("data dir '%s' not listable: %w", subdir, err)
	}
	return files, nil
}

// DataSize returns the total size in bytes of all files in the data box.
func DataSize() (size int64) {
	if dataBox == nil {
		return 0
	}
	dataBox.Walk("", func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size
}

// UnpackDataFile copies a single file out of the data box to the given
// target path, overwriting any existing file there.
func UnpackDataFile(name, target string) error {
	content, err := dataBox.Bytes(name)
	if err != nil {
		return fmt.Errorf("data file '%s' not found: %w", name, err)
	}
	if err = os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.WriteFile(target, content, 0644)
}
