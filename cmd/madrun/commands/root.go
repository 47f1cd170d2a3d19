// Package commands implements the CLI commands for madrun.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/madrun/internal/app"
	"go.trai.ch/madrun/internal/build"
	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

// CLI represents the command line interface for madrun.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	// argCount is the number of raw arguments, before flag parsing.
	argCount int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, req domain.InvocationRequest, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "madrun --rom <path> [-s]",
		Short: "Build the madnes emulator and run it on a ROM",
		Long: "Builds the emulator from src/ into target/madnes and, if the build " +
			"succeeds, runs it with the given ROM. The exit status of the failing " +
			"compiler or emulator is passed through.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          rejectPositionalArgs,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("rom", "", "Path of the ROM handed to the emulator (required)")
	rootCmd.Flags().BoolP("sanitize", "s", false, "Build with the memory sanitizer enabled")

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default: "+domain.ConfigFileName+" if present)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log build steps and timings")
	rootCmd.PersistentFlags().String("log-format", logFormatPretty, "Log format: pretty or json")

	rootCmd.SetFlagErrorFunc(flagError)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.argCount = len(args)
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	// Only a bare invocation does nothing; "--" alone still needs --rom.
	if c.argCount == 0 {
		return nil
	}

	rom, _ := cmd.Flags().GetString("rom")
	sanitize, _ := cmd.Flags().GetBool("sanitize")

	opts, err := runOptions(cmd)
	if err != nil {
		return err
	}

	req := domain.InvocationRequest{InputPath: rom, Sanitize: sanitize}
	if err := req.Validate(); err != nil {
		return err
	}

	return c.app.Run(cmd.Context(), req, opts)
}

func runOptions(cmd *cobra.Command) (app.RunOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	json, err := jsonLogs(cmd)
	if err != nil {
		return app.RunOptions{}, err
	}
	return app.RunOptions{ConfigPath: configPath, Verbose: verbose, JSON: json}, nil
}

func jsonLogs(cmd *cobra.Command) (bool, error) {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case logFormatPretty:
		return false, nil
	case logFormatJSON:
		return true, nil
	default:
		return false, errors.Join(
			domain.ErrInvalidArgument,
			zerr.With(zerr.New("log format must be pretty or json"), "log-format", format),
		)
	}
}

func rejectPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Join(
			domain.ErrUnknownArgument,
			zerr.With(zerr.New("unexpected argument"), "argument", args[0]),
		)
	}
	return nil
}

// flagError classifies pflag parse errors.
func flagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown"):
		return errors.Join(domain.ErrUnknownArgument, zerr.Wrap(err, "unrecognized flag"))
	case strings.HasPrefix(msg, "flag needs an argument"):
		return errors.Join(domain.ErrMissingRequiredArgument, zerr.Wrap(err, "flag value missing"))
	default:
		return errors.Join(domain.ErrInvalidArgument, zerr.Wrap(err, "malformed flag"))
	}
}
