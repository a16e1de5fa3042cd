package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultVideoExtensions is the default set of recognized video file extensions.
var DefaultVideoExtensions = []string{
	".mkv", ".wmv", ".ts", ".avi", ".mp4", ".m4v", ".mpg",
	".mpeg", ".mov", ".webm", ".flv", ".m2ts", ".ogv", ".vob",
}

// ExtensionSet normalizes a list of extensions into a lowercase lookup set.
// A missing leading dot is tolerated, so "mp4" and ".MP4" both map to ".mp4".
func ExtensionSet(extensions []string) map[string]bool {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// IsVideoFile checks if the given path is an existing file with a recognized extension.
func IsVideoFile(path string, extensions map[string]bool) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	return extensions[ext]
}

// GetFilename returns the filename from a path.
func GetFilename(path string) string {
	return filepath.Base(path)
}

// GetFileStem returns the filename without extension.
func GetFileStem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

// EnsureDirectory creates a directory if it doesn't exist.
func EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
