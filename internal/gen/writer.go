package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// StaleFiles lists synthesized artifacts in dir that are not among keep.
// A missing directory has no stale files.
func StaleFiles(dir string, keep []GeneratedFile) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	wanted := make(map[string]bool, len(keep))
	for _, f := range keep {
		wanted[f.Filename] = true
	}

	var stale []string

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ArtifactSuffix) || wanted[e.Name()] {
			continue
		}

		stale = append(stale, filepath.Join(dir, e.Name()))
	}

	return stale, nil
}

// writeDebugUnformatted writes unformatted code next to the intended
// output. Best-effort: the caller already has an error to report.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ArtifactSuffix) + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(dir, debugName), content, filePerm)
}
