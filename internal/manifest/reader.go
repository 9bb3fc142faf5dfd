package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and decodes a custom-elements manifest. The whole document is
// read into memory up front; the generator makes a single pass over it.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &pkg, nil
}
