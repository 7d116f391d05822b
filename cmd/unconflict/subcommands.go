package unconflict

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/unconflict/internal/version"
	"github.com/arthur-debert/unconflict/pkg/commands"
	"github.com/arthur-debert/unconflict/pkg/config"
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/report"
	"github.com/arthur-debert/unconflict/pkg/types"
	"github.com/arthur-debert/unconflict/pkg/ui"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "scan FILE...",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrUsage, MsgErrNotEnoughArgs).WithDetail("args", 0)
			}

			cfg, err := loadConfig(cmd, formatOverride(cmd, format))
			if err != nil {
				return err
			}

			reports, err := commands.ScanFiles(commands.ScanFilesOptions{
				Paths:  args,
				Config: cfg,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f, err := outputFormat(cmd, cfg)
			if err != nil {
				return err
			}
			renderer, err := report.NewRenderer(f, out)
			if err != nil {
				return err
			}
			if err := renderer.Render(reports); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write report")
			}

			if summary := report.Summarize(reports); summary.Failed > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrScanFailed, summary.Failed, summary.Files).
					WithDetail("failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}

func newRepoCmd() *cobra.Command {
	var (
		stage  bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "repo RESOLVEMODE",
		Short:   MsgRepoShort,
		Long:    MsgRepoLong,
		Example: MsgRepoExample,
		GroupID: "core",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return types.CompletionTokens(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrUsage, MsgErrNotEnoughArgs).WithDetail("args", 0)
			}
			policy, err := types.ParsePolicy(args[0])
			if err != nil {
				return err
			}

			overrides := formatOverride(cmd, format)
			if cmd.Flags().Changed("stage") {
				overrides["git.stage"] = stage
			}
			cfg, err := loadConfig(cmd, overrides)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			workDir, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrWorkDir)
			}

			result, runErr := commands.ResolveRepo(cmd.Context(), commands.ResolveRepoOptions{
				Dir:    workDir,
				Policy: policy,
				DryRun: dryRun,
				Stage:  cfg.Git.Stage,
				Config: cfg,
				Stdout: cmd.OutOrStdout(),
			})
			if result != nil {
				f, err := outputFormat(cmd, cfg)
				if err != nil {
					return err
				}
				if err := printRepoResult(statusWriter(cmd, dryRun), result, f); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&stage, "stage", false, MsgFlagStage)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}

func printRepoResult(w io.Writer, result *types.RepoResult, format ui.Format) error {
	if format == ui.FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write result")
		}
		return nil
	}

	if len(result.Files) == 0 {
		fmt.Fprintf(w, MsgNoUnmerged, result.Root)
		return nil
	}
	for _, f := range result.Files {
		if f.Conflicts == 0 {
			fmt.Fprintf(w, MsgNoConflicts, f.Path)
			continue
		}
		fmt.Fprintf(w, MsgRepoResolved, plural(f.Conflicts, "conflict"), f.Path)
	}
	for _, path := range result.Staged {
		fmt.Fprintf(w, MsgRepoStaged, path)
	}
	if result.DryRun {
		fmt.Fprintln(w, MsgDryRunNotice)
	}
	return nil
}

// formatOverride turns an explicit --format into a config override
func formatOverride(cmd *cobra.Command, format string) map[string]interface{} {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["ui.format"] = format
	}
	return overrides
}

// outputFormat resolves the configured format against stdout. --no-color
// downgrades terminal output to plain text.
func outputFormat(cmd *cobra.Command, cfg *config.Config) (ui.Format, error) {
	f, err := ui.ParseFormat(cfg.UI.Format)
	if err != nil {
		return f, err
	}
	f = ui.Resolve(f, cmd.OutOrStdout())
	if noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color"); noColor && f == ui.FormatTerminal {
		f = ui.FormatText
	}
	return f, nil
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return config.ValidFormats, cobra.ShellCompDirectiveNoFileComp
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			content, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
