package main

import (
	"errors"
	"fmt"

	"converso/cmd/converso/ui"
	"converso/internal/conversation"
	"converso/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		width int
		sends []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the conversation without starting the interactive screen",
		Long: `Builds the configured conversation, submits each --send through the same
send action the screen uses, and prints the rendered message list.

Example:
  converso render --width 60 --send "Thanks!" --send ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 1 {
				return fmt.Errorf("--width must be positive, got %d", width)
			}

			cfg, _, workspace, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := logging.Initialize(cfg.LoggingOptions(workspace)); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			defer logging.CloseAll()

			vm, err := newViewModel(cfg)
			if err != nil {
				return err
			}

			for _, text := range sends {
				vm.SetDraft(text)
				if _, err := vm.Send(); err != nil {
					if errors.Is(err, conversation.ErrEmptyDraft) {
						opts.logger.Info("skipped empty send")
						continue
					}
					return err
				}
			}

			renderer := ui.NewBubbleRenderer(ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)), ui.BubbleOptions{
				WidthRatio: cfg.UI.BubbleWidthRatio,
				Markdown:   cfg.UI.Markdown,
			})
			opts.logger.Debug("rendering transcript",
				zap.Int("width", width),
				zap.Int("messages", vm.Store().Len()),
			)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Transcript(vm.Store().All(), width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Render width in columns")
	cmd.Flags().StringArrayVar(&sends, "send", nil, "Submit a message before rendering (repeatable)")
	return cmd
}
