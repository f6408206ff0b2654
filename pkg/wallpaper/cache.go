package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/paperdesk/paperdesk/util/log"
)

type fileInfo struct {
	path    string
	modTime time.Time
}

// TrimCache keeps the download directory bounded: when it holds more than
// limit images, the oldest ones are removed. A limit of zero or less
// disables trimming.
func TrimCache(dir string, limit int) error {
	if limit <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var files []fileInfo
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		files = append(files, fileInfo{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	excess := len(files) - limit
	for i := 0; i < excess; i++ {
		if err := os.Remove(files[i].path); err != nil {
			return fmt.Errorf("error deleting file %s: %w", files[i].path, err)
		}
		log.Debugf("Cache: trimmed %s", files[i].path)
	}
	return nil
}
