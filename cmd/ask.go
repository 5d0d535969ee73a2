package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhubert/nexus/internal/conversation"
	"github.com/zhubert/nexus/internal/logger"
	"github.com/zhubert/nexus/internal/markdown"
	"github.com/zhubert/nexus/internal/ui"
)

var (
	askWidth int
	askPlain bool
)

// errNoAnswer is returned when the exchange ended in the fixed error reply.
var errNoAnswer = errors.New("the research service did not answer")

var askCmd = &cobra.Command{
	Use:   "ask [query...]",
	Short: "Ask a single question and print the agents' answer",
	Long: `Sends one question to the research service with an empty history and
prints the answer rendered as Markdown. Exits non-zero when the service could
not be reached or returned an unusable response.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAskCmd,
}

func init() {
	askCmd.Flags().IntVarP(&askWidth, "width", "w", markdown.DefaultWidth, "Wrap width for the rendered answer")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "Disable colors and syntax highlighting")
	rootCmd.AddCommand(askCmd)
}

func runAskCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := logger.Init(logFilePath(cfg)); err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer logger.Close()

	if askPlain {
		color.NoColor = true
	}
	return runAsk(cmd.Context(), newController(cfg), strings.Join(args, " "), os.Stdout)
}

// runAsk performs one exchange on ctrl and writes the transcript to out
func runAsk(ctx context.Context, ctrl *conversation.Controller, query string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store := ctrl.Store()
	store.SetDraft(query)
	if !ctrl.Exchange(ctx) {
		return fmt.Errorf("nothing to ask: query is empty")
	}

	styles := markdown.DefaultStyles()
	if askPlain || color.NoColor {
		styles = markdown.PlainStyles()
	}
	renderer := markdown.NewRenderer(styles)

	userLabel := color.New(color.FgMagenta, color.Bold).SprintFunc()
	agentLabel := color.New(color.FgCyan, color.Bold).SprintFunc()
	errorText := color.New(color.FgRed).SprintFunc()

	for _, msg := range store.Messages() {
		switch msg.Role {
		case conversation.RoleUser:
			fmt.Fprintf(out, "%s\n%s\n\n", userLabel(ui.UserLabel), msg.Content)
		case conversation.RoleAssistant:
			body := renderer.Render(msg.Content, askWidth)
			if msg.Failed {
				body = errorText(msg.Content)
			}
			fmt.Fprintf(out, "%s\n%s\n", agentLabel(ui.AssistantLabel), body)
		}
	}

	if ctrl.LastReplyFailed() {
		return fmt.Errorf("%w (details in %s)", errNoAnswer, logger.Path())
	}
	return nil
}
