package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/ytget/workout-viewer/internal/platform"
)

// GPXExtension is the extension of exported training files
const GPXExtension = ".gpx"

// Export writes a training file into dir and returns the written path.
// An existing file with the same name is never overwritten.
func (s *Store) Export(ctx context.Context, id int64, dir string) (string, error) {
	file, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("creating export dir %s: %w", dir, err)
	}

	path := platform.UniquePath(dir, platform.SanitizeFileName(file.Name), GPXExtension)
	if err := os.WriteFile(path, file.Data, platform.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
