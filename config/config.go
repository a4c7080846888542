package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html/charset"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config captures all command-line options of the mailstrip command.
type Config struct {
	// Path of the email to read, "-" for stdin.
	Path        string
	Aggressive  bool
	Fragments   bool
	Format      string
	CatalogPath string
	Charset     string
	NFC         bool
	Verbose     bool
}

// RegisterFlags attaches all CLI flags to the provided command.
func RegisterFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	flags.Bool("aggressive", false, "Also drop visible fragments enclosed by hidden ones")
	flags.Bool("fragments", false, "Print every fragment instead of the visible text")
	flags.String("format", FormatText, "Output format: text, yaml")
	flags.String("catalog", "", "Pattern catalog file (.yaml, .yml or .toml)")
	flags.String("charset", "", "Charset of the input, e.g. iso-8859-1 (default utf-8)")
	flags.Bool("nfc", false, "Normalize the input to Unicode NFC before parsing")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	if err := cmd.MarkFlagFilename("catalog", "yaml", "yml", "toml"); err != nil {
		return fmt.Errorf("failed to annotate --catalog: %w", err)
	}
	return nil
}

// LoadConfig converts the parsed Cobra flags and arguments into a Config
// struct with validation.
func LoadConfig(cmd *cobra.Command, args []string) (Config, error) {
	flags := cmd.Flags()

	aggressive, err := flags.GetBool("aggressive")
	if err != nil {
		return Config{}, err
	}
	fragments, err := flags.GetBool("fragments")
	if err != nil {
		return Config{}, err
	}
	format, err := flags.GetString("format")
	if err != nil {
		return Config{}, err
	}
	catalogPath, err := flags.GetString("catalog")
	if err != nil {
		return Config{}, err
	}
	charsetLabel, err := flags.GetString("charset")
	if err != nil {
		return Config{}, err
	}
	nfc, err := flags.GetBool("nfc")
	if err != nil {
		return Config{}, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return Config{}, err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	cfg := Config{
		Path:        path,
		Aggressive:  aggressive,
		Fragments:   fragments,
		Format:      strings.ToLower(format),
		CatalogPath: catalogPath,
		Charset:     strings.TrimSpace(charsetLabel),
		NFC:         nfc,
		Verbose:     verbose,
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("an email file or - is required")
	}

	switch cfg.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("invalid --format %q: %w", cfg.Format, ErrUnknownFormat)
	}

	if cfg.Charset != "" {
		if enc, _ := charset.Lookup(cfg.Charset); enc == nil {
			return fmt.Errorf("invalid --charset: %s", cfg.Charset)
		}
	}

	return nil
}
