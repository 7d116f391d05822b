package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	sfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// WritePlan describes the writes that put a resolved file in place
type WritePlan struct {
	Path     string
	Original []byte
	Resolved []byte
	// BackupSuffix enables a backup of Original when non-empty
	BackupSuffix string
	Atomic       bool
}

// PlanResult reports what Apply wrote
type PlanResult struct {
	BackupPath string
	// Operations lists the pipeline operation IDs in execution order
	Operations []string
}

// Apply runs the plan as a synthfs pipeline: the backup first, then the
// replace. A failed backup stops the pipeline before the target is touched.
func Apply(ctx context.Context, fsys types.FS, plan WritePlan) (*PlanResult, error) {
	logger := logging.GetLogger("filesystem.plan")

	if plan.Path == "" {
		return nil, errors.New(errors.ErrInternal, "write plan requires a path")
	}

	s := synthfs.New()
	base := filepath.Base(plan.Path)
	result := &PlanResult{}

	// Errors are captured from the closures so callers keep their error codes
	var opErr error
	var ops []synthfs.Operation

	if plan.BackupSuffix != "" {
		id := fmt.Sprintf("backup_%s", base)
		ops = append(ops, s.CustomOperationWithID(id, func(ctx context.Context, _ sfs.FileSystem) error {
			backupPath, err := Backup(fsys, plan.Path, plan.Original, plan.BackupSuffix)
			if err != nil {
				opErr = err
				return err
			}
			result.BackupPath = backupPath
			return nil
		}))
		result.Operations = append(result.Operations, id)
	}

	id := fmt.Sprintf("replace_%s", base)
	ops = append(ops, s.CustomOperationWithID(id, func(ctx context.Context, _ sfs.FileSystem) error {
		if err := ReplaceFile(fsys, plan.Path, plan.Resolved, plan.Atomic); err != nil {
			opErr = err
			return err
		}
		return nil
	}))
	result.Operations = append(result.Operations, id)

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	logger.Debug().
		Str("path", plan.Path).
		Strs("operations", result.Operations).
		Msg("Executing write plan")

	host := synthfs.NewPathAwareFileSystem(sfs.NewOSFileSystem("/"), "/").WithAbsolutePaths()
	if _, err := synthfs.RunWithOptions(ctx, host, options, ops...); err != nil {
		if opErr != nil {
			return nil, opErr
		}
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", plan.Path)
	}

	return result, nil
}
