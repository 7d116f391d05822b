package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// TempSuffix is appended to the target path for the staging file of an atomic replace
const TempSuffix = ".unconflict-tmp"

const defaultPerm fs.FileMode = 0644

// symlinkResolver is implemented by filesystems that can follow symlinks
type symlinkResolver interface {
	EvalSymlinks(name string) (string, error)
}

// resolveTarget returns the file that path finally names. Replacing a
// symlink rewrites the file it points to and leaves the link in place.
func resolveTarget(fsys types.FS, path string) string {
	r, ok := fsys.(symlinkResolver)
	if !ok {
		return path
	}
	target, err := r.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return target
}

// ReplaceFile overwrites path with data in one whole-file write, keeping the
// existing permission bits. With atomic set the data is staged next to the
// target and renamed over it, so readers never observe a half-written file.
func ReplaceFile(fsys types.FS, path string, data []byte, atomic bool) error {
	logger := logging.GetLogger("filesystem")

	if target := resolveTarget(fsys, path); target != path {
		logger.Debug().Str("link", path).Str("target", target).Msg("Replacing symlink target")
		path = target
	}

	perm := defaultPerm
	if info, err := fsys.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if !atomic {
		if err := fsys.WriteFile(path, data, perm); err != nil {
			return errors.WrapFS(err, errors.ErrFileWrite, path)
		}
		return nil
	}

	tmp := path + TempSuffix
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return errors.WrapFS(err, errors.ErrFileWrite, tmp)
	}

	if err := fsys.Rename(tmp, path); err != nil {
		if rmErr := fsys.Remove(tmp); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", tmp).Msg("Failed to remove staging file")
		}
		return errors.WrapFS(err, errors.ErrFileWrite, path)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File replaced")
	return nil
}

// Backup writes original next to path with the given suffix and returns the
// backup path.
func Backup(fsys types.FS, path string, original []byte, suffix string) (string, error) {
	perm := defaultPerm
	if info, err := fsys.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	backupPath := path + suffix
	if err := fsys.WriteFile(backupPath, original, perm); err != nil {
		return "", errors.WrapFS(err, errors.ErrFileWrite, backupPath)
	}
	return backupPath, nil
}
