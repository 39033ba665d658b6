package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	nanocreatures "github.com/agencyenterprise/nano-creatures-sdk"
	"github.com/agencyenterprise/nano-creatures-sdk/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []nanocreatures.Option{nanocreatures.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, nanocreatures.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, nanocreatures.WithAPIKey(cfg.APIKey))
	}
	if cfg.SigningSecret != "" {
		opts = append(opts, nanocreatures.WithTokenSigner(cfg.SigningSecret))
	}
	client := nanocreatures.New(opts...)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	if err := run(ctx, client, cfg, os.Args[1], os.Args[2:]); err != nil {
		slog.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *nanocreatures.Client, cfg *config.Config, command string, args []string) error {
	switch command {
	case "signup":
		return runSignUp(ctx, client, args)
	case "signin":
		return runSignIn(ctx, client, args)
	case "creatures":
		return runCreatures(ctx, client, cfg, args)
	case "sources":
		return runSources(ctx, client, cfg, args)
	case "chat":
		return runChat(ctx, client, cfg, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runSignUp(ctx context.Context, client *nanocreatures.Client, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email (required)")
	name := fs.String("name", "", "display name")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	resp, err := client.SignUp(ctx, nanocreatures.SignUpParams{
		Email:    *email,
		Name:     *name,
		Password: *password,
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runSignIn(ctx context.Context, client *nanocreatures.Client, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	resp, err := client.SignIn(ctx, nanocreatures.SignInParams{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runCreatures(ctx context.Context, client *nanocreatures.Client, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: nanoctl creatures list|create|update|delete [flags]")
	}
	token := cfg.Credential()

	switch args[0] {
	case "list":
		creatures, err := client.ListCreatures(ctx, token)
		if err != nil {
			return err
		}
		return printJSON(creatures)

	case "create":
		fs := flag.NewFlagSet("creatures create", flag.ExitOnError)
		name := fs.String("name", "", "creature name (required)")
		description := fs.String("description", "", "creature description")
		fs.Parse(args[1:])

		creature, err := client.CreateCreature(ctx, token, nanocreatures.CreateCreatureParams{
			Name:        *name,
			Description: *description,
		})
		if err != nil {
			return err
		}
		return printJSON(creature)

	case "update":
		fs := flag.NewFlagSet("creatures update", flag.ExitOnError)
		id := fs.String("id", "", "creature id (required)")
		name := fs.String("name", "", "new name")
		description := fs.String("description", "", "new description")
		fs.Parse(args[1:])

		// Only flags the user actually passed go into the payload, so
		// -description "" clears the field instead of being dropped.
		var params nanocreatures.UpdateCreatureParams
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				params.Name = name
			case "description":
				params.Description = description
			}
		})

		creature, err := client.UpdateCreature(ctx, token, *id, params)
		if err != nil {
			return err
		}
		return printJSON(creature)

	case "delete":
		fs := flag.NewFlagSet("creatures delete", flag.ExitOnError)
		id := fs.String("id", "", "creature id (required)")
		fs.Parse(args[1:])

		if err := client.DeleteCreature(ctx, token, *id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		return fmt.Errorf("unknown creatures subcommand %q", args[0])
	}
}

func runSources(ctx context.Context, client *nanocreatures.Client, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: nanoctl sources list|create|delete [flags]")
	}
	token := cfg.Credential()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("sources list", flag.ExitOnError)
		creatureID := fs.String("creature", "", "creature id (required)")
		fs.Parse(args[1:])

		sources, err := client.ListMemorySources(ctx, token, *creatureID)
		if err != nil {
			return err
		}
		return printJSON(sources)

	case "create":
		fs := flag.NewFlagSet("sources create", flag.ExitOnError)
		creatureID := fs.String("creature", "", "creature id (required)")
		name := fs.String("name", "", "source name (required)")
		content := fs.String("content", "", "inline text for a STATIC_TEXT source")
		file := fs.String("file", "", "local file to upload as a DOCUMENT source")
		fileURL := fs.String("file-url", "", "remote file URL for a DOCUMENT source")
		fileName := fs.String("file-name", "", "file name when using -file-url")
		fileSize := fs.Int64("file-size", 0, "file size in bytes when using -file-url")
		fs.Parse(args[1:])

		params := nanocreatures.CreateMemorySourceParams{Name: *name}
		switch {
		case *content != "":
			params.Type = nanocreatures.MemorySourceStaticText
			params.Content = *content
		case *file != "":
			data, err := os.ReadFile(*file)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			params.Type = nanocreatures.MemorySourceDocument
			params.Data = data
			params.FileName = *fileName
			if params.FileName == "" {
				params.FileName = *file
			}
		case *fileURL != "":
			params.Type = nanocreatures.MemorySourceDocument
			params.FileURL = *fileURL
			params.FileName = *fileName
			params.FileSize = *fileSize
		default:
			return fmt.Errorf("one of -content, -file or -file-url is required")
		}

		source, err := client.CreateMemorySource(ctx, token, *creatureID, params)
		if err != nil {
			return err
		}
		return printJSON(source)

	case "delete":
		fs := flag.NewFlagSet("sources delete", flag.ExitOnError)
		creatureID := fs.String("creature", "", "creature id (required)")
		id := fs.String("id", "", "memory source id (required)")
		fs.Parse(args[1:])

		if err := client.DeleteMemorySource(ctx, token, *creatureID, *id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		return fmt.Errorf("unknown sources subcommand %q", args[0])
	}
}

func runChat(ctx context.Context, client *nanocreatures.Client, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	creatureID := fs.String("creature", "", "creature id (required)")
	sessionID := fs.String("session", "", "session id from a previous response")
	fs.Parse(args)

	message := strings.Join(fs.Args(), " ")
	if message == "" {
		return fmt.Errorf("usage: nanoctl chat -creature <id> [-session <id>] <message>")
	}

	resp, err := client.Chat(ctx, cfg.Credential(), *creatureID, nanocreatures.ChatParams{
		Message:   message,
		SessionID: *sessionID,
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: nanoctl <command> [flags]

commands:
  signup     -email <email> [-name <name>] [-password <pw>]
  signin     -email <email> [-password <pw>]
  creatures  list|create|update|delete [flags]
  sources    list|create|delete [flags]
  chat       -creature <id> [-session <id>] <message>

configuration comes from the environment (or a local .env file):
  NANO_BASE_URL, NANO_API_KEY, NANO_TOKEN, NANO_SIGNING_SECRET, NANO_LOG_LEVEL`)
}
