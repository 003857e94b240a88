// Command gembridge is a minimal chat REPL over the bridge: it declares a
// couple of local demo tools (plus any remote MCP tools), sends each line
// of input through the function-calling loop, and prints the final answer.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/siscanu/gembridge"
	"github.com/siscanu/gembridge/gemini"
	"github.com/siscanu/gembridge/mcptool"
)

func main() {
	configPath := flag.String("config", "gembridge.yaml", "path to config file")
	flag.Parse()

	// .env is optional; real env vars win.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is required (set it in the environment or .env)")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var geminiOpts []gemini.Option
	if cfg.BaseURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Retries > 0 {
		geminiOpts = append(geminiOpts, gemini.WithRetry(cfg.Retries))
	}
	backend := gemini.NewClient(cfg.Model, apiKey, geminiOpts...)

	metrics := gembridge.NewMetrics(prometheus.DefaultRegisterer)
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	client := gembridge.NewClient(backend,
		gembridge.WithMaxIterations(cfg.MaxIterations),
		gembridge.WithMetrics(metrics),
	)

	tools := demoTools()
	if cfg.MCPServer != "" {
		source, err := mcptool.Connect(ctx, cfg.MCPServer)
		if err != nil {
			slog.Error("mcp connect", slog.Any("error", err))
			os.Exit(1)
		}
		defer source.Close()

		remote, err := source.Tools(ctx)
		if err != nil {
			slog.Error("mcp list tools", slog.Any("error", err))
			os.Exit(1)
		}
		tools = append(tools, remote...)
	}

	slog.Info("bridge ready",
		slog.String("model", cfg.Model),
		slog.Int("tools", len(tools)))

	repl(ctx, client, cfg.SystemPrompt, tools)
}

func logLevel() slog.Level {
	if os.Getenv("GEMBRIDGE_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("metrics listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server", slog.Any("error", err))
	}
}

// repl reads lines from stdin and runs each through the bridge, carrying
// the conversation forward between turns.
func repl(ctx context.Context, client *gembridge.Client, systemPrompt string, tools []gembridge.Tool) {
	var messages []gembridge.Message
	if systemPrompt != "" {
		messages = append(messages, gembridge.SystemMessage(systemPrompt))
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}
		if line == "/quit" {
			return
		}

		messages = append(messages, gembridge.UserMessage(line))
		result, err := client.Complete(ctx, messages, tools)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			fmt.Print("> ")
			continue
		}

		fmt.Println(result.Content)
		messages = append(messages, gembridge.AssistantMessage(result.Content))
		fmt.Print("> ")
	}
}

// demoTools returns the built-in example tools.
func demoTools() []gembridge.Tool {
	getTime := gembridge.NewFuncTool(
		"get_time",
		"Get the current time",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(_ context.Context, _ map[string]any) (any, error) {
			return map[string]string{"time": time.Now().Format(time.RFC3339)}, nil
		},
	)

	echo := gembridge.NewFuncTool(
		"echo",
		"Echo the given text back verbatim",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text to echo",
				},
			},
			"required": []string{"text"},
		},
		func(_ context.Context, args map[string]any) (any, error) {
			text, _ := args["text"].(string)
			return "echo: " + text, nil
		},
	)

	return []gembridge.Tool{getTime, echo}
}
