package unconflict

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve two-way merge conflict markers in a file"
	MsgScanShort       = "Report the conflict blocks of files without changing them"
	MsgRepoShort       = "Resolve every unmerged file of the current git repository"
	MsgVersionShort    = "Print version information"
	MsgGenConfigShort  = "Print a commented default configuration"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoConflicts     = "There are no conflicts in file %s\n"
	MsgResolved        = "Resolved %s in %s (%s)\n"
	MsgBackupWritten   = "Original kept at %s\n"
	MsgNoUnmerged      = "No unmerged files in %s\n"
	MsgRepoResolved    = "Resolved %s in %s\n"
	MsgRepoStaged      = "Staged %s\n"
	MsgDryRunNotice    = "DRY RUN MODE - No files were changed"
	MsgVersionFormat   = "unconflict %s (commit %s, built %s)\n"
	MsgExtraArgsIgnore = "Ignoring extra arguments"

	// Error messages
	MsgErrNotEnoughArgs = "Please provide enough parameters"
	MsgErrScanFailed    = "%d of %d files could not be scanned"
	MsgErrWorkDir       = "failed to determine working directory"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Print the resolved text instead of writing it"
	MsgFlagConfig  = "Read configuration from this file"
	MsgFlagLogFile = "Also append log lines to this file (default $UNCONFLICT_LOG_FILE)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagBackup  = "Keep a copy of each conflicted file before rewriting it"
	MsgFlagStage   = "Stage each rewritten file"
	MsgFlagFormat  = "Output format (auto, term, text, json, checkstyle)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage.txt
	msgUsageRaw string
	MsgUsage    = strings.TrimSpace(msgUsageRaw)

	//go:embed msgs/scan-long.txt
	msgScanLongRaw string
	MsgScanLong    = strings.TrimSpace(msgScanLongRaw)

	//go:embed msgs/scan-example.txt
	msgScanExampleRaw string
	MsgScanExample    = strings.TrimRight(msgScanExampleRaw, "\n")

	//go:embed msgs/repo-long.txt
	msgRepoLongRaw string
	MsgRepoLong    = strings.TrimSpace(msgRepoLongRaw)

	//go:embed msgs/repo-example.txt
	msgRepoExampleRaw string
	MsgRepoExample    = strings.TrimRight(msgRepoExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = msgUsageTemplateRaw
)
