package main

import (
	"context"
	"errors"
	"fmt"

	portfoliodata "github.com/ozzgio/portfolio-data"
	"github.com/ozzgio/portfolio-data/internal/config"
)

// ErrTooManyArgs indicates extra positional arguments.
var ErrTooManyArgs = errors.New("usage: portfolio-data [flags] [vault] [output]")

// run resolves configuration and delegates to the generation service.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	if flags.version {
		fmt.Fprintf(env.Stdout, "portfolio-data %s\n", Version)
		return nil
	}

	if len(args) > 2 {
		return fmt.Errorf("%w: got %d positional arguments", ErrTooManyArgs, len(args))
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Positional arguments win over the config file.
	vault := cfg.Vault.Dir
	if len(args) >= 1 {
		vault = args[0]
	}
	output := cfg.Output.Dir
	if len(args) >= 2 {
		output = args[1]
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Using vault root: %s\n", orCwd(vault))
		fmt.Fprintf(env.Stderr, "Output directory: %s\n", orDefault(output))
	}
	if flags.dryRun && !flags.quiet {
		fmt.Fprintln(env.Stderr, "DRY RUN MODE: No files will be modified")
	}

	svc := portfoliodata.New(buildOptions(flags, cfg, env)...)
	result, err := svc.Generate(ctx, portfoliodata.Input{
		VaultDir:  vault,
		OutputDir: output,
		DryRun:    flags.dryRun,
	})
	if err != nil {
		return err
	}

	if !flags.quiet {
		prefix := "Generated"
		if flags.dryRun {
			prefix = "[DRY RUN] Would generate"
		}
		fmt.Fprintf(env.Stdout, "%s %d articles and %d books (%d images copied, %d skipped)\n",
			prefix, len(result.Articles), len(result.Books), result.ImagesCopied, result.ImagesSkipped)
	}

	return nil
}

// buildOptions maps flags and config onto service options.
func buildOptions(flags *cliFlags, cfg *config.Config, env *Environment) []portfoliodata.Option {
	opts := []portfoliodata.Option{
		portfoliodata.WithClock(env.Now),
	}

	if !flags.quiet {
		opts = append(opts, portfoliodata.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	}

	if flags.lessonHTML || cfg.Books.LessonHTML {
		opts = append(opts, portfoliodata.WithLessonHTML())
	}
	if cfg.Limits.MaxFileSizeMB > 0 {
		opts = append(opts, portfoliodata.WithMaxFileSize(int64(cfg.Limits.MaxFileSizeMB)<<20))
	}
	if cfg.Limits.MaxImageSizeMB > 0 {
		opts = append(opts, portfoliodata.WithMaxImageSize(int64(cfg.Limits.MaxImageSizeMB)<<20))
	}
	if len(cfg.Images.Extensions) > 0 {
		opts = append(opts, portfoliodata.WithImageExtensions(cfg.Images.Extensions))
	}

	return opts
}

func orCwd(path string) string {
	if path == "" {
		return "current directory"
	}
	return path
}

func orDefault(path string) string {
	if path == "" {
		return portfoliodata.DefaultOutputDir
	}
	return path
}
