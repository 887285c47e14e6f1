package chart2html

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// outputFileMode is applied to newly created output files. Existing files
// keep their mode.
const outputFileMode = 0o644

// writeOutput writes content to path through a temporary file in the same
// directory that is renamed into place, so a failed write never leaves a
// partial file at path.
func writeOutput(path, content string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrWriteOutput)
	}
	if dir := filepath.Dir(path); dir != "." {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("%w: directory %q does not exist", ErrWriteOutput, dir)
		}
	}

	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if created {
		if err := os.Chmod(path, outputFileMode); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}
