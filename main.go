// WordPress MCP Server - A Model Context Protocol server for WordPress sites
// Provides tools for managing posts, pages, users, media, comments and taxonomies
// through the WordPress REST API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
	"github.com/olgasafonova/wordpress-mcp-server/internal/config"
	"github.com/olgasafonova/wordpress-mcp-server/internal/wordpress"
	"github.com/olgasafonova/wordpress-mcp-server/tools"
	"github.com/olgasafonova/wordpress-mcp-server/tracing"
)

// recoverPanic logs a panic instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "wordpress-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `WordPress MCP Server manages a WordPress site through its REST API.

Tools are named wp_<action>_<resource> and cover posts, pages, users, media,
comments, categories, tags and site info. Every result carries "success";
failed calls also carry "error" and "error_kind" (authentication,
authorization, not_found, validation, timeout, ...).

Start with wp_get_site_info to confirm the connection and the account's roles.

Configure via environment variables:
- WORDPRESS_URL: Site URL (e.g., https://blog.example.com)
- WORDPRESS_USERNAME: Account that owns the application password
- WORDPRESS_APP_PASSWORD: Application password (Users > Profile > Application Passwords)`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the wired server for one command invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	api    *base.Client
	client *wordpress.Client
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var envFile string

	root := &cobra.Command{
		Use:           ServerName,
		Short:         "MCP server for the WordPress REST API",
		Version:       ServerVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v, envFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env when present)")
	flags.String("url", "", "WordPress site URL (WORDPRESS_URL)")
	flags.String("username", "", "WordPress username (WORDPRESS_USERNAME)")
	flags.String("timeout", "", "request timeout in seconds or as a duration (WORDPRESS_TIMEOUT)")
	flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	flags.String("http", "", "serve streamable HTTP on this address instead of stdio (MCP_HTTP_ADDR)")
	bindFlags(v, flags, map[string]string{
		"url":       config.KeyURL,
		"username":  config.KeyUsername,
		"timeout":   config.KeyTimeout,
		"log-level": config.KeyLogLevel,
		"http":      config.KeyHTTPAddr,
	})

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the MCP server (stdio, or HTTP with --http)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), v, envFile)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify the connection and print the site info",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCheck(cmd, v, envFile)
			},
		},
	)

	return root
}

// bindFlags lets a flag, when given, override the environment and dotenv file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

// setup loads the configuration and builds the WordPress client.
func setup(v *viper.Viper, envFile string) (*app, error) {
	path, required := config.DefaultEnvFile, false
	if envFile != "" {
		path, required = envFile, true
	}
	if err := config.ReadEnvFile(v, path, required); err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	api, err := base.NewClient(cfg.Base(), base.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		api:    api,
		client: wordpress.NewClient(api, logger),
	}, nil
}

// newServer creates the MCP server with every tool registered.
func (a *app) newServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       a.logger,
		Instructions: serverInstructions,
	})
	tools.NewHandlerRegistry(a.client, a.logger).RegisterAll(server)
	return server
}

func runServe(ctx context.Context, v *viper.Viper, envFile string) error {
	a, err := setup(v, envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer a.api.Close()
	defer recoverPanic(a.logger, "serve")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		a.logger.Warn("Tracing disabled", "error", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				a.logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	server := a.newServer()
	a.logger.Info("Starting WordPress MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"site_url", a.api.SiteURL(),
		"username", a.cfg.Username,
		"http", a.cfg.HTTPAddr,
	)

	if a.cfg.HTTPAddr != "" {
		err = serveHTTP(ctx, server, a.cfg, a.logger)
	} else {
		err = server.Run(ctx, &mcp.StdioTransport{})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Server error", "error", err)
		return err
	}
	return nil
}

// runCheck performs the site info lookup once and prints the envelope.
func runCheck(cmd *cobra.Command, v *viper.Viper, envFile string) error {
	a, err := setup(v, envFile)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	defer a.api.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, _ := a.client.GetSiteInfoMCP(ctx, wordpress.GetSiteInfoArgs{})

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("site check failed: %s", result.Error)
	}
	return nil
}
