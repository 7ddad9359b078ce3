package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yourusername/ringnav/internal/client"
	"github.com/yourusername/ringnav/internal/config"
	ringerrors "github.com/yourusername/ringnav/internal/errors"
	"github.com/yourusername/ringnav/internal/focus"
	"github.com/yourusername/ringnav/internal/logging"
	"github.com/yourusername/ringnav/internal/output"
	"github.com/yourusername/ringnav/internal/state"
	"github.com/yourusername/ringnav/internal/types"
)

var (
	socketPath string
	timeout    time.Duration
	configPath string
	jsonOutput bool
	noColor    bool
	debugMode  bool
	dryRun     bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "ringnav",
	Short: "Ring navigation for i3 and sway workspaces",
	Long: `ringnav moves focus and windows across workspaces arranged in rings.

Workspaces on one output whose numbers share a hundreds band form a ring
(0-99, 100-199, ...). left/right walk through a ring in listing order,
up/down jump between rings. Walking off an edge creates a new workspace
or ring, or wraps around when the current workspace is empty.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return ringerrors.Usage("missing command")
	},
}

// switchCmd moves focus to a neighboring workspace
var switchCmd = &cobra.Command{
	Use:       "switch <left|right|up|down>",
	Short:     "Focus the neighboring workspace or ring",
	Args:      directionArg,
	ValidArgs: directionTokens(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigation(types.KindSwitch, args[0])
	},
}

// moveCmd moves the focused window and follows it
var moveCmd = &cobra.Command{
	Use:       "move <left|right|up|down>",
	Short:     "Move the focused window to the neighboring workspace or ring",
	Long:      `Moves the focused container, then focuses the workspace it landed on.`,
	Args:      directionArg,
	ValidArgs: directionTokens(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigation(types.KindMove, args[0])
	},
}

// statusCmd prints the ring topology
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show outputs, rings and workspaces",
	Long: `Queries the window manager and prints the ring topology: every output's
rings with their workspaces, window counts and remembered positions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, err := connect(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		gs, err := state.Fetch(ctx, c)
		if err != nil {
			logging.Error().Str("cmd", "status").Err(err).Msg("failed to build state")
			return err
		}

		if jsonOutput {
			return printJSON(gs)
		}

		output.PrintRingsTable(os.Stdout, gs)
		return nil
	},
}

// pingCmd tests window manager connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the window manager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, err := connect(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		start := time.Now()
		version, err := c.GetVersion(ctx)
		elapsed := time.Since(start)
		if err != nil {
			return ringerrors.QueryFailed("get_version", err)
		}

		if jsonOutput {
			return printJSON(version)
		}

		successColor.Println("✓ Connected")
		keyColor.Print("Socket: ")
		fmt.Println(c.SocketPath())
		keyColor.Print("Version: ")
		fmt.Println(version.HumanReadable)
		fmt.Printf("Response time: %v\n", elapsed)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&socketPath, "socket", "s", "", "IPC socket path (default: $I3SOCK, $SWAYSOCK or discovered)")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", config.DefaultTimeout, "Timeout for each request")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/ringnav/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the commands instead of running them")

	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pingCmd)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and maps the outcome to an exit code
func run(args []string) int {
	defer logging.Close()

	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	// Anything cobra rejected before our code ran is a usage problem
	if !ringerrors.IsClassified(err) {
		err = ringerrors.Usage(err.Error())
	}

	printError(err.Error())
	if ringerrors.Is(err, ringerrors.KindUsage) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}

	logging.Error().Str("kind", ringerrors.KindOf(err).String()).Err(err).Msg("failed")
	return ringerrors.ExitCode(err)
}

// loadSettings merges the config file under the command line flags and
// starts logging
func loadSettings(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}
		return ringerrors.ConfigInvalid(path, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("socket") {
		socketPath = cfg.Socket
	}
	if !flags.Changed("timeout") {
		timeout = cfg.GetTimeout()
	}
	if !flags.Changed("dry-run") {
		dryRun = cfg.DryRun
	}

	if noColor {
		color.NoColor = true
	}

	// Logging is best effort
	logging.Init(cfg.Log.File, cfg.GetLogLevel())
	if debugMode {
		logging.SetDebug(true)
	}
	return nil
}

// directionArg accepts exactly one direction token
func directionArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return ringerrors.Usage(fmt.Sprintf("expected one direction, got %d arguments", len(args)))
	}
	if _, ok := types.ParseDirection(args[0]); !ok {
		return ringerrors.Usage(fmt.Sprintf("unknown direction %q", args[0]))
	}
	return nil
}

func directionTokens() []string {
	dirs := types.Directions()
	tokens := make([]string, len(dirs))
	for i, d := range dirs {
		tokens[i] = d.String()
	}
	return tokens
}

// connect opens the IPC session
func connect(ctx context.Context) (*client.Client, error) {
	c := client.NewClient(socketPath, timeout)
	if err := c.Connect(ctx); err != nil {
		logging.Error().Err(err).Msg("failed to connect")
		return nil, ringerrors.ConnectionFailed(c.SocketPath(), err)
	}
	return c, nil
}

// runNavigation queries the window manager, decides, and emits the commands
func runNavigation(kind types.CommandKind, arg string) error {
	direction, _ := types.ParseDirection(arg)
	log := logging.WithRun(uuid.New().String(), kind.String())
	log.Info().Str("direction", direction.String()).Bool("dry_run", dryRun).Msg("starting")

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	gs, err := state.Fetch(ctx, c)
	if err != nil {
		log.Error().Err(err).Msg("failed to build state")
		return err
	}

	current, _ := gs.GetCurrentOutput()
	log.Debug().
		Str("output", gs.CurrentOutput).
		Int("ring", current.CurrentRingID).
		Int("workspaces", gs.WorkspaceCount()).
		Int("next_ring", gs.NextRingID).
		Msg("built state")

	plan, err := focus.Decide(gs, direction, kind)
	if err != nil {
		log.Error().Err(err).Msg("failed to decide")
		return ringerrors.Wrap(err, ringerrors.KindInternal, "failed to decide")
	}

	log.Info().
		Str("action", plan.Action.String()).
		Int("target", plan.Target).
		Strs("commands", plan.Commands).
		Msg("decided")

	if dryRun {
		if jsonOutput {
			return printJSON(plan)
		}
		output.PrintPlan(os.Stdout, plan)
		return nil
	}

	if err := focus.Execute(ctx, c, plan.Commands); err != nil {
		log.Error().Err(err).Msg("failed to run commands")
		return err
	}

	log.Info().Msg("done")
	return nil
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return ringerrors.Wrap(err, ringerrors.KindInternal, "failed to write JSON")
	}
	return nil
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
