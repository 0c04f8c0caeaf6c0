package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// uploadsRoot is relative to the working directory; the router serves it
// under /uploads.
const uploadsRoot = "uploads"

// SaveBase64File decodes a base64 payload (raw or data-URI form) and writes
// it under uploads/<subdir>. Returns the uploads-relative path stored in the
// database, e.g. "rider_documents/3f1c….jpg".
func SaveBase64File(b64, subdir string) (string, error) {
	b64 = strings.TrimSpace(b64)
	if b64 == "" {
		return "", fmt.Errorf("empty base64 payload")
	}

	ext := ".jpg"
	if strings.HasPrefix(b64, "data:") {
		parts := strings.SplitN(b64, ";base64,", 2)
		if len(parts) == 2 {
			switch strings.TrimPrefix(parts[0], "data:") {
			case "image/png":
				ext = ".png"
			case "application/pdf":
				ext = ".pdf"
			}
			b64 = parts[1]
		} else if idx := strings.Index(b64, ","); idx != -1 {
			b64 = b64[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join(uploadsRoot, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// RemoveStoredFile deletes an uploads-relative path. A missing file is not
// an error; cleanup runs best-effort after DB commits.
func RemoveStoredFile(relPath string) error {
	relPath = strings.TrimSpace(relPath)
	if relPath == "" {
		return nil
	}
	// Refuse anything escaping the uploads root.
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid stored path %q", relPath)
	}
	err := os.Remove(filepath.Join(uploadsRoot, clean))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
