package backup

import (
	"os"

	"github.com/julianstephens/watchlit/internal/logger"
)

func replaceFile(src, dst string) error {
	tempPath := dst + ".restore.tmp"
	if err := copyFile(src, tempPath); err != nil {
		return err
	}
	if err := os.Rename(tempPath, dst); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tempPath, "error", removeErr)
		}
		return err
	}
	return nil
}
