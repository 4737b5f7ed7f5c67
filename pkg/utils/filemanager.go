// =============================================================================
// Domains Template Generator - File Manager Utility
// =============================================================================
//
// This module provides the file operations the generator needs:
//   - Output directory creation
//   - File existence checks
//   - Archival of the previous template before it is overwritten
//
// ARCHIVAL STRATEGY:
//   When archival is enabled, the existing template file is copied into the
//   archive directory under a uuid-suffixed name before the new file is
//   written. The original name is kept in the archive name so old templates
//   remain recognizable, and the uuid keeps successive archives from
//   colliding.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates the directory (and any missing parents) if it does not
// exist. It is a no-op when the directory already exists.
//
// RETURNS:
//   - An error if the directory cannot be created, including when the path
//     exists as a regular file.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveExisting copies the file at path into archiveDir under a
// uuid-suffixed name. If no file exists at path, nothing is archived.
//
// PARAMETERS:
//   - path: The file about to be overwritten.
//   - archiveDir: The directory to copy it into. Created if missing.
//
// RETURNS:
//   - The path of the archived copy, or "" if there was nothing to archive.
//   - An error if the archive directory cannot be created or the copy fails.
func ArchiveExisting(path, archiveDir string) (string, error) {
	if !FileExists(path) {
		return "", nil
	}

	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	archivePath := filepath.Join(archiveDir, archiveName(filepath.Base(path)))
	if err := copyFile(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return archivePath, nil
}

// archiveName builds the archive file name for fileName by inserting a uuid
// before the extension.
// Example: "domains-template.xlsx" -> "domains-template_<uuid>.xlsx"
func archiveName(fileName string) string {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	return fmt.Sprintf("%s_%s%s", base, uuid.New().String(), ext)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}
