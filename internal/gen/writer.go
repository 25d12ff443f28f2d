package gen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNotGenerated is returned when a write would replace a hand-written file.
var ErrNotGenerated = errors.New("refusing to overwrite a file that is not generated")

// generatedHeader is the standard marker of generated Go files.
var generatedHeader = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// Path returns where the file is written when no output directory is forced.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// WriteFiles writes all generated files. A non-empty outputDir overrides
// every file's own directory and is created if it doesn't exist.
// Existing files are only replaced when they carry the generated header.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if outputDir != "" {
		err := os.MkdirAll(outputDir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, file := range files {
		outputPath := file.Path()
		if outputDir != "" {
			outputPath = filepath.Join(outputDir, file.Filename)
		}

		if err := checkOverwrite(outputPath); err != nil {
			return err
		}

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func checkOverwrite(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !IsGenerated(content) {
		return fmt.Errorf("%s: %w", path, ErrNotGenerated)
	}

	return nil
}

// IsGenerated reports whether src carries the generated-code marker before
// its package clause.
func IsGenerated(src []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if generatedHeader.MatchString(line) {
			return true
		}

		if bytes.HasPrefix(bytes.TrimSpace(sc.Bytes()), []byte("package ")) {
			return false
		}
	}

	return false
}
