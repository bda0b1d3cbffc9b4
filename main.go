package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/drankou/go-sentiment/internal/api"
	"github.com/drankou/go-sentiment/internal/config"
	"github.com/drankou/go-sentiment/internal/hermes"
	"github.com/drankou/go-sentiment/lexicon"
	"github.com/drankou/go-sentiment/vader"
)

const usage = `Usage:
  vader <command> [flags]

Commands:
  score      score each argument, or each line of stdin
  demo       score the built-in example sentences
  languages  list the built-in lexicon languages
  serve      run the HTTP scoring API
  listen     answer scoring requests over NATS
`

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "score":
		err = runScore(cfg, args, os.Stdin, os.Stdout)
	case "demo":
		err = runDemo(cfg, args, os.Stdout)
	case "languages":
		for _, code := range lexicon.Available() {
			fmt.Println(code)
		}
	case "serve":
		err = runServe(cfg, args)
	case "listen":
		err = runListen(cfg, args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("vader failed", "error", err)
		os.Exit(1)
	}
}

// Options are the flags every command shares, with defaults from Config.
type Options struct {
	Language    string
	LexiconPath string
	Negations   []string
	Port        int
	JSON        bool
}

func parseFlags(fs *flag.FlagSet, args []string, cfg config.Config) (Options, []string, error) {
	opts := Options{
		Language:    cfg.Language,
		LexiconPath: cfg.LexiconPath,
		Negations:   cfg.Negations,
		Port:        cfg.Port,
	}

	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.Language, "lang", opts.Language, "Lexicon language code")
	fs.StringVar(&opts.LexiconPath, "lexicon", opts.LexiconPath, "Path to a tab-separated valence lexicon replacing the embedded English one")
	fs.IntVar(&opts.Port, "port", opts.Port, "HTTP port (serve only)")
	fs.BoolVar(&opts.JSON, "json", false, "Print one JSON object per text")

	if err := fs.Parse(args); err != nil {
		return Options{}, nil, err
	}
	if opts.LexiconPath != "" && opts.Language != "en" {
		return Options{}, nil, fmt.Errorf("-lexicon replaces the English lexicon, got -lang %q", opts.Language)
	}
	return opts, fs.Args(), nil
}

func newAnalyzer(opts Options) (*vader.SentimentIntensityAnalyzer, error) {
	siaOpts := []vader.Option{
		vader.WithNegations(opts.Negations...),
		vader.WithLogger(slog.Default()),
	}

	if opts.LexiconPath == "" {
		sia, err := vader.NewForLanguage(opts.Language, siaOpts...)
		if err != nil {
			return nil, err
		}
		if lex, ok := sia.Language().(*lexicon.Lexicon); ok && lex.Code() == "en" {
			slog.Warn("scoring with the embedded sample English lexicon, set VADER_LEXICON_PATH to the full vader_lexicon.txt",
				"words", lex.Size())
		}
		return sia, nil
	}

	valences, err := lexicon.LoadValences(opts.LexiconPath)
	if err != nil {
		return nil, err
	}
	slog.Info("lexicon loaded", "path", opts.LexiconPath, "words", len(valences))

	return vader.NewSentimentIntensityAnalyzer(append(siaOpts, vader.WithLanguage(lexicon.NewEnglish(valences)))...)
}

func runScore(cfg config.Config, args []string, in io.Reader, out io.Writer) error {
	opts, texts, err := parseFlags(flag.NewFlagSet("score", flag.ContinueOnError), args, cfg)
	if err != nil {
		return err
	}
	sia, err := newAnalyzer(opts)
	if err != nil {
		return err
	}

	if len(texts) > 0 {
		for _, text := range texts {
			if err := printScore(out, sia, text, opts.JSON); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := printScore(out, sia, text, opts.JSON); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func printScore(out io.Writer, sia *vader.SentimentIntensityAnalyzer, text string, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(hermes.NewScoreResponse(sia, text))
	}
	_, err := fmt.Fprintf(out, "%s : %+v\n", text, sia.PolarityScores(text))
	return err
}

func runServe(cfg config.Config, args []string) error {
	opts, _, err := parseFlags(flag.NewFlagSet("serve", flag.ContinueOnError), args, cfg)
	if err != nil {
		return err
	}
	sia, err := newAnalyzer(opts)
	if err != nil {
		return err
	}

	slog.Info("vader starting", "port", opts.Port, "language", sia.Language().Code())
	return api.NewServer(opts.Port, sia).Start()
}

func runListen(cfg config.Config, args []string) error {
	opts, _, err := parseFlags(flag.NewFlagSet("listen", flag.ContinueOnError), args, cfg)
	if err != nil {
		return err
	}
	sia, err := newAnalyzer(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hermesClient, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		return err
	}
	defer hermesClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	if err := hermesClient.Serve(cfg.Subject, sia); err != nil {
		return err
	}

	if err := hermesClient.Publish(cfg.Subject+".registered", map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"language":  sia.Language().Code(),
	}); err != nil {
		slog.Warn("failed to publish registration", "error", err)
	}
	slog.Info("vader ready", "subject", cfg.Subject, "language", sia.Language().Code())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	return nil
}

// Logs go to stderr so that score output on stdout stays clean.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
