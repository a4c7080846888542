// Command mailstrip prints the visible text of a plaintext email, or the
// fragments it was split into.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/kvannotten/mailstrip/v2"
	"github.com/kvannotten/mailstrip/v2/config"
)

func main() {
	rootCmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to register CLI flags: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "mailstrip <file>",
		Short: "Strip quoted history and signatures from a plaintext email",
		Long: `mailstrip splits a plaintext email into fragments and prints the text
a reader of the latest message cares about. Use - to read from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd, args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			logger, err = newLogger(cfg.Verbose)
			if err != nil {
				return err
			}

			return run(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	if err := config.RegisterFlags(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func run(cfg config.Config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	var opts []mailstrip.Option
	if cfg.CatalogPath != "" {
		catalog, err := config.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		opts, err = catalog.Options()
		if err != nil {
			return fmt.Errorf("catalog %s: %w", cfg.CatalogPath, err)
		}
		logger.Debug("loaded pattern catalog", zap.String("path", cfg.CatalogPath))
	}
	opts = append(opts, mailstrip.WithLogger(logger))

	text, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}

	email := mailstrip.New(opts...).Parse(text)
	logger.Debug("parsed email",
		zap.String("path", cfg.Path),
		zap.Int("bytes", len(text)),
		zap.Int("fragments", email.Len()))

	switch cfg.Format {
	case config.FormatYAML:
		return writeYAML(stdout, cfg, email)
	default:
		return writeText(stdout, cfg, email)
	}
}

func readInput(cfg config.Config, stdin io.Reader) (string, error) {
	r := stdin
	if cfg.Path != "-" {
		f, err := os.Open(cfg.Path)
		if err != nil {
			return "", fmt.Errorf("open email: %w", err)
		}
		defer f.Close()
		r = f
	}

	if cfg.Charset != "" {
		cr, err := charset.NewReaderLabel(cfg.Charset, r)
		if err != nil {
			return "", fmt.Errorf("decode %s input: %w", cfg.Charset, err)
		}
		r = cr
	}
	if cfg.NFC {
		r = norm.NFC.Reader(r)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read email: %w", err)
	}
	return string(b), nil
}

func writeText(w io.Writer, cfg config.Config, email *mailstrip.Email) error {
	if !cfg.Fragments {
		_, err := fmt.Fprintln(w, email.VisibleText(cfg.Aggressive))
		return err
	}

	for i, f := range email.Fragments() {
		_, err := fmt.Fprintf(w, "#%d quoted=%t signature=%t hidden=%t\n%s\n",
			i, f.Quoted(), f.Signature(), f.Hidden(), f.Content())
		if err != nil {
			return err
		}
	}
	return nil
}

type fragmentDoc struct {
	Content   string `yaml:"content"`
	Quoted    bool   `yaml:"quoted"`
	Signature bool   `yaml:"signature"`
	Hidden    bool   `yaml:"hidden"`
}

type emailDoc struct {
	VisibleText string        `yaml:"visible_text"`
	Fragments   []fragmentDoc `yaml:"fragments,omitempty"`
}

func writeYAML(w io.Writer, cfg config.Config, email *mailstrip.Email) error {
	doc := emailDoc{VisibleText: email.VisibleText(cfg.Aggressive)}
	if cfg.Fragments {
		for _, f := range email.Fragments() {
			doc.Fragments = append(doc.Fragments, fragmentDoc{
				Content:   f.Content(),
				Quoted:    f.Quoted(),
				Signature: f.Signature(),
				Hidden:    f.Hidden(),
			})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal fragments: %w", err)
	}
	return enc.Close()
}
