package unconflict

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/unconflict/internal/version"
	"github.com/arthur-debert/unconflict/pkg/cobrax/topics"
	"github.com/arthur-debert/unconflict/pkg/commands"
	"github.com/arthur-debert/unconflict/pkg/config"
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		noColor   bool
		logFile   string
	)

	rootCmd := &cobra.Command{
		Use:     "unconflict FILEPATH RESOLVEMODE",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		// Subcommand names take precedence, everything else is a file path
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{Verbosity: verbosity, File: logFile})
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
				pterm.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, dryRun)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return nil, cobra.ShellCompDirectiveDefault
			case 1:
				return types.CompletionTokens(), cobra.ShellCompDirectiveNoFileComp
			default:
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", os.Getenv(logging.EnvLogFile), MsgFlagLogFile)
	rootCmd.PersistentFlags().String("config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().Bool("backup", false, MsgFlagBackup)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "Misc:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newRepoCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topicRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, source, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// topicRenderer picks the styled glamour renderer only for color terminals
func topicRenderer() topics.Renderer {
	if os.Getenv("NO_COLOR") != "" || !stdoutIsTerminal() {
		return topics.NewPlainGlamourRenderer()
	}
	return topics.NewGlamourRenderer()
}

// runResolve implements `unconflict FILEPATH RESOLVEMODE`
func runResolve(cmd *cobra.Command, args []string, dryRun bool) error {
	if len(args) < 2 {
		return errors.New(errors.ErrUsage, MsgErrNotEnoughArgs).
			WithDetail("args", len(args))
	}
	if len(args) > 2 {
		log.Warn().Strs("extra", args[2:]).Msg(MsgExtraArgsIgnore)
	}

	policy, err := types.ParsePolicy(args[1])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	result, err := commands.ResolveFile(commands.ResolveFileOptions{
		Path:   args[0],
		Policy: policy,
		DryRun: dryRun,
		Config: cfg,
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	printResolveResult(statusWriter(cmd, dryRun), result)
	if dryRun && result.Conflicts > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), MsgDryRunNotice)
	}
	return nil
}

// statusWriter keeps stdout clean for resolved text during dry runs
func statusWriter(cmd *cobra.Command, dryRun bool) io.Writer {
	if dryRun {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func printResolveResult(w io.Writer, result *types.ResolveResult) {
	if result.Conflicts == 0 {
		fmt.Fprintf(w, MsgNoConflicts, result.Path)
		return
	}
	if !result.Written {
		return
	}
	fmt.Fprintf(w, MsgResolved, plural(result.Conflicts, "conflict"), result.Path, result.Policy.Token())
	if result.BackupPath != "" {
		fmt.Fprintf(w, MsgBackupWritten, result.BackupPath)
	}
}

// loadConfig reads the layered configuration for the working directory.
// Flag values in overrides win over every file and the environment.
func loadConfig(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if flags.Changed("backup") {
		backup, _ := flags.GetBool("backup")
		overrides["backup.enabled"] = backup
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrWorkDir)
	}

	configFile, _ := flags.GetString("config")
	return config.Load(config.LoadOptions{
		WorkDir:    workDir,
		ConfigFile: configFile,
		Overrides:  overrides,
	})
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
