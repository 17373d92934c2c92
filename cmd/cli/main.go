package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"tripchat/cmd/fx/logger_fx"
	"tripchat/internal/config"
	"tripchat/internal/services"
	mem "tripchat/pkg/memcache"
	"tripchat/pkg/utils"
)

var (
	userLabel      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render("You")
	assistantLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("Assistant")
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tripchat",
		Short: "Plan a day-by-day travel itinerary by chatting with a language model",
	}
	root.AddCommand(newChatCmd())
	return root
}

func newChatCmd() *cobra.Command {
	var (
		envFile string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive itinerary chat in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logger_fx.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			itinerary, err := buildItineraryService(cfg, logger)
			if err != nil {
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return err
			}

			return runChat(ctx, itinerary, renderer, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file to load before the environment")
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width for rendered replies")
	return cmd
}

func buildItineraryService(cfg *config.Config, logger *zap.Logger) (services.ItineraryServiceInterface, error) {
	chat, err := utils.NewChatClient(cfg.LLMProvider, cfg.APIKey(), cfg.Model())
	if err != nil {
		return nil, err
	}

	encyclopedia := utils.NewWikipediaClient(utils.WikipediaConfig{
		Language:  cfg.WikipediaLanguage,
		UserAgent: cfg.WikipediaUserAgent,
		BaseURL:   cfg.WikipediaBaseURL,
	}, mem.NewLookupCache(cfg.LookupCacheTTL))

	enricher := services.NewReferenceEnricher(utils.NewProseRecognizer(), encyclopedia, logger.Named("references"))

	return services.NewItineraryService(
		chat,
		services.NewAllocationExtractor(),
		services.NewCommandDetector(),
		services.NewPromptBuilder(),
		enricher,
		logger.Named("itinerary"),
	), nil
}

func runChat(ctx context.Context, itinerary services.ItineraryServiceInterface, renderer *glamour.TermRenderer, in io.Reader, out io.Writer) error {
	state := services.NewSessionState()
	for _, m := range state.Messages {
		printMessage(out, renderer, m)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprintf(out, "%s > ", userLabel)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		next, replies, err := itinerary.Submit(ctx, state, text)
		state = next
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			fmt.Fprintln(out, errorStyle.Render(err.Error()))
			continue
		}
		for _, m := range replies {
			printMessage(out, renderer, m)
		}
	}
}

func printMessage(out io.Writer, renderer *glamour.TermRenderer, m services.Message) {
	if m.Role != utils.RoleAssistant {
		return
	}
	body, err := renderer.Render(m.Content)
	if err != nil {
		body = m.Content + "\n"
	}
	fmt.Fprintf(out, "%s\n%s", assistantLabel, body)
}
