//go:build !windows

package backup

import (
	"io"
	"os"

	"github.com/google/renameio/v2"

	"github.com/julianstephens/watchlit/internal/logger"
)

// replaceFile atomically overwrites dst with the contents of src. dst is
// either the old or the new file at every point, never a partial copy.
func replaceFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	pending, err := renameio.NewPendingFile(dst, renameio.WithPermissions(0600))
	if err != nil {
		return err
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug("Failed to clean up pending restore file", "error", err)
		}
	}()

	if _, err := io.Copy(pending, in); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
