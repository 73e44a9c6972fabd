package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"strictjson-generator/internal/common"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = common.GeneratedHeader

// ErrNotGenerated is returned by WriteFiles when the destination exists and
// was not produced by the generator.
var ErrNotGenerated = errors.New("refusing to overwrite a file that was not generated")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. Existing files are only
// replaced when they carry GeneratedHeader.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := checkOverwrite(outputPath); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func checkOverwrite(path string) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if !bytes.HasPrefix(existing, []byte(GeneratedHeader)) {
		return ErrNotGenerated
	}

	return nil
}
