package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/codec"
	"github.com/birdayz/morse/pkg/config"
	"github.com/birdayz/morse/pkg/logger"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg     config.Config
	CfgFile string

	// Flags shared by encode and decode
	OutputFlag   OutputFormat
	TemplateFlag string
	LenientFlag  bool
	NoColorFlag  bool
	VerboseFlag  bool

	Log zerolog.Logger

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Log:          zerolog.Nop(),
	}
}

// InitConfig sets up logging and reads the config file.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	a.Log = logger.New(a.ErrWriter, a.VerboseFlag)

	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if a.Cfg.Output != "" {
		var f OutputFormat
		if err := f.Set(a.Cfg.Output); err != nil {
			return fmt.Errorf("invalid config: output: %w", err)
		}
	}
	a.Log.Debug().Str("path", a.Cfg.Path()).Msg("config loaded")
	return nil
}

// Output returns the output format from the flag, then the config, then
// the default.
func (a *App) Output() OutputFormat {
	if a.OutputFlag != "" {
		return a.OutputFlag
	}
	if a.Cfg.Output != "" {
		return OutputFormat(a.Cfg.Output)
	}
	return OutputFormatText
}

// Lenient reports whether untranslatable units should be tolerated.
func (a *App) Lenient() bool {
	return a.LenientFlag || a.Cfg.Lenient
}

// Codec returns the codec selected by the lenient setting.
func (a *App) Codec() codec.Codec {
	if a.Lenient() {
		return codec.Lenient(codec.Morse{})
	}
	return codec.Morse{}
}

// Color reports whether JSON output should be coloured. Colour is only
// used when writing to a terminal.
func (a *App) Color() bool {
	if a.NoColorFlag || a.Cfg.NoColor {
		return false
	}
	f, ok := a.OutWriter.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AddTranslateFlags installs the flags shared by encode and decode.
func (a *App) AddTranslateFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(&a.OutputFlag, "output", "o", "Output format. One of: text, json, json-each-row, yaml, msgpack, template")
	cmd.Flags().StringVar(&a.TemplateFlag, "template", "", "Go template executed per result when --output template is used")
	cmd.Flags().BoolVar(&a.LenientFlag, "lenient", false, "Replace unsupported units with '#' without failing")
	_ = cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat)
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
