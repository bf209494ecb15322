package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blackcoderx/postdoc/pkg/config"
	"github.com/blackcoderx/postdoc/pkg/docgen"
	"github.com/blackcoderx/postdoc/pkg/render"
	"github.com/blackcoderx/postdoc/pkg/storage"
	"github.com/blackcoderx/postdoc/pkg/ui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile  string
	envFile  string
	check    bool
	copyPath bool
	rootCmd  = &cobra.Command{
		Use:   "postdoc <collection.json>",
		Short: "postdoc - static HTML documentation for Postman collections",
		Long: `postdoc validates a Postman v2.1.0 collection, optionally substitutes the
values of an environment file into it, and writes a single-page HTML site
documenting every request and its examples.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runGenerate(cmd, args[0]); err != nil {
				ui.Error(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
)

// errStale is returned by --check when the page on disk differs.
var errStale = errors.New("documentation is out of date")

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")

	rootCmd.Flags().StringVarP(&envFile, "env", "e", "", "Environment file (Postman JSON or YAML) to substitute into the collection")
	rootCmd.Flags().StringP("out", "o", "", "Output directory (default ./output)")
	rootCmd.Flags().BoolP("download", "d", false, "Copy the source files next to the page and link them")
	rootCmd.Flags().String("title", "", "Page title (default is the collection name)")
	rootCmd.Flags().Bool("force", false, "Overwrite an existing page without asking")
	rootCmd.Flags().String("highlight-style", "", "Syntax highlighting style for example bodies")
	rootCmd.Flags().BoolVar(&check, "check", false, "Print a diff against the existing page instead of writing; exit 1 if it differs")
	rootCmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the generated page path to the clipboard")

	for key, flag := range map[string]string{
		"out":             "out",
		"download":        "download",
		"title":           "title",
		"force":           "force",
		"highlight_style": "highlight-style",
	} {
		_ = viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
}

func initConfig() {
	// Load .env file if it exists (optional, warn if malformed)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		ui.Warn(os.Stderr, "Failed to load .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(config.BaseName)
	}

	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			ui.Warn(os.Stderr, "Failed to read config: %v", err)
		}
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func newGenerator(cfg config.Config, log *slog.Logger) (*docgen.Generator, error) {
	r, err := render.New(render.WithHighlightStyle(cfg.HighlightStyle))
	if err != nil {
		return nil, err
	}
	return docgen.New(r,
		docgen.WithMarkdown(render.Markdown),
		docgen.WithSanitizer(render.Sanitize),
		docgen.WithLogger(log),
	), nil
}

func runGenerate(cmd *cobra.Command, collectionPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := cfg.Logger(os.Stderr)

	g, err := newGenerator(cfg, log)
	if err != nil {
		return err
	}
	opts := docgen.Options{
		CollectionPath:  collectionPath,
		EnvironmentPath: envFile,
		OutputDir:       cfg.Out,
		Download:        cfg.Download,
		Title:           cfg.Title,
	}

	if check {
		diff, err := g.Check(opts)
		if err != nil {
			return err
		}
		if diff != "" {
			ui.Diff(cmd.OutOrStdout(), diff)
			return errStale
		}
		ui.Success(cmd.OutOrStdout(), "Document at %s is up to date", cfg.Out)
		return nil
	}

	page := filepath.Join(cfg.Out, storage.PageFile)
	if !cfg.Force && exists(page) && term.IsTerminal(int(os.Stdin.Fd())) {
		ok, err := ui.ConfirmOverwrite(page)
		if err != nil {
			return err
		}
		if !ok {
			ui.Warn(cmd.OutOrStdout(), "Aborted, %s left unchanged", page)
			return nil
		}
	}

	res, err := g.Generate(opts)
	if err != nil {
		return err
	}
	ui.Success(cmd.OutOrStdout(), "Success. Document generated at %s", res.OutputDir)

	if copyPath {
		abs, err := filepath.Abs(filepath.Join(res.OutputDir, storage.PageFile))
		if err != nil {
			return fmt.Errorf("failed to resolve page path: %w", err)
		}
		if err := ui.CopyToClipboard(abs); err != nil {
			ui.Warn(os.Stderr, "%v", err)
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
