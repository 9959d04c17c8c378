package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"converso/cmd/converso/chat"
	"converso/internal/config"
	"converso/internal/conversation"
	"converso/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootOptions holds the global flags and the logger shared by subcommands.
type rootOptions struct {
	verbose    bool
	configPath string
	workspace  string

	logger *zap.Logger
}

// newRootCmd builds the command tree. The root command launches the chat screen.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "converso",
		Short: "Converso - a terminal chat screen",
		Long: `Converso shows a conversation between a chatbot and you.

Chatbot messages sit on the left, yours on the right. Type in the input at the
bottom and press Enter (or click the send button) to add a message.

Run without arguments to start the interactive screen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip logger init for interactive mode (it owns the terminal)
			if cmd == cmd.Root() {
				return nil
			}

			zcfg := zap.NewProductionConfig()
			if opts.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			opts.logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveChat(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: <workspace>/.converso/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace directory (default: detected from the current directory)")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace returns the --workspace flag or the detected workspace root.
func (o *rootOptions) resolveWorkspace() (string, error) {
	if o.workspace != "" {
		return filepath.Abs(o.workspace)
	}
	return config.FindWorkspaceRoot()
}

// resolveConfigPath returns --config or the default path under the workspace.
func (o *rootOptions) resolveConfigPath(workspace string) string {
	if o.configPath != "" {
		return o.configPath
	}
	return filepath.Join(workspace, ".converso", "config.yaml")
}

// loadConfig reads .env, then the validated config with env overrides applied.
func (o *rootOptions) loadConfig() (cfg *config.Config, path, workspace string, err error) {
	_ = godotenv.Load()

	workspace, err = o.resolveWorkspace()
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to resolve workspace: %w", err)
	}
	path = o.resolveConfigPath(workspace)

	cfg, err = config.Load(path)
	if err != nil {
		return nil, "", "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", "", err
	}
	return cfg, path, workspace, nil
}

// newViewModel builds the seeded store and view-model for cfg.
func newViewModel(cfg *config.Config) (*conversation.ViewModel, error) {
	seed, err := cfg.Seed()
	if err != nil {
		return nil, err
	}
	return conversation.NewViewModel(conversation.NewStore(seed...), cfg.SendPolicy()), nil
}

// runInteractiveChat starts the interactive chat interface.
func runInteractiveChat(cmd *cobra.Command, opts *rootOptions) error {
	cfg, path, workspace, err := opts.loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LoggingOptions(workspace)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.CloseAll()
	logging.Boot("starting chat screen (config=%s)", path)
	logging.BootDebug("workspace=%s watch=%v theme=%s", workspace, cfg.Watch, cfg.UI.Theme)

	vm, err := newViewModel(cfg)
	if err != nil {
		return err
	}

	return chat.RunInteractiveChat(cmd.Context(), chat.RunOptions{
		Config:     cfg,
		ConfigPath: path,
		ViewModel:  vm,
	})
}
