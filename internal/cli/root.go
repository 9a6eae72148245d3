// Package cli defines the vroom command: play the car animation, then hand
// every argument to the package manager.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/scbrown/vroom/internal/config"
	"github.com/scbrown/vroom/internal/forward"
	"github.com/spf13/cobra"
)

// Streams and pacing used by the command. Tests swap them out.
var (
	stdin  io.Reader = os.Stdin
	stdout           = os.Stdout
	stderr io.Writer = os.Stderr
	sleep            = time.Sleep
)

// rootCmd is the one and only vroom command. Flag parsing is disabled so
// that --help, -g and friends reach the package manager untouched.
var rootCmd = &cobra.Command{
	Use:   "vroom [package manager args...]",
	Short: "Vroom - a car drives by, then your package manager runs",
	Long: `vroom plays a short ASCII-art car animation and then runs your package
manager (npm unless configured otherwise) with exactly the arguments you gave
it. Its exit status is vroom's exit status.

Configuration lives in ~/.vroom/config.toml (or $VROOM_CONFIG):

  package_manager = "npm"     # command line, e.g. "corepack pnpm"
  animation       = "always"  # always, auto (terminals only) or never

VROOM_PACKAGE_MANAGER and VROOM_ANIMATION override the file, and
VROOM_DEBUG=1 prints what vroom is doing to stderr.`,
	Example: `  vroom install
  vroom run build -- --watch
  VROOM_PACKAGE_MANAGER=yarn vroom add left-pad`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := run(cmd.Context(), args)
		if code == 0 && err == nil {
			return nil
		}
		return &exitError{code: code, err: err}
	},
}

// exitError carries the package manager's exit status out of RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// run loads configuration, plays the animation if enabled, and forwards args.
func run(ctx context.Context, args []string) (int, error) {
	cfg := loadConfig()
	debugf("%s wrapping %q (animation: %s)", versionString(), cfg.PackageManager, cfg.Animation)

	if shouldAnimate(cfg.Animation, stdout) {
		playAnimation()
	}

	argv, err := forward.Split(cfg.PackageManager)
	if err != nil {
		return 1, fmt.Errorf("package_manager %q: %w", cfg.PackageManager, err)
	}
	debugf("exec %q", append(append([]string{}, argv...), args...))

	code, err := forward.Run(ctx, argv, args, forward.Stdio{Stdin: stdin, Stdout: stdout, Stderr: stderr})
	debugf("%s exited with status %d", argv[0], code)
	return code, err
}

// loadConfig never fails: broken settings are reported and replaced by
// their defaults while the valid ones still apply, so the user's command
// runs with the package manager they asked for.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "vroom: warning: %v (using defaults for invalid settings)\n", err)
	}
	return cfg.WithDefaults()
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "vroom: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "vroom: %v\n", err)
	return 1
}
