// Package yaml loads topic pattern overrides from YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/soliddocs"
	"gopkg.in/yaml.v3"
)

// LoadTopics reads a topic→pattern override map from the YAML file at path.
// A missing file is not an error and yields an empty map, so the override
// file stays optional.
// Returns EINVALID if the file exists but cannot be parsed.
func LoadTopics(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, soliddocs.Errorf(soliddocs.EINTERNAL, "reading topic overrides %q: %v", path, err)
	}

	overrides := map[string]string{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, soliddocs.Errorf(soliddocs.EINVALID, "parsing topic overrides %q: %v", path, err)
	}

	return overrides, nil
}
