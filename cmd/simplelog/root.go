package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipp01105/simplelog/config"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
	"github.com/philipp01105/simplelog/logger"
)

const maxLineSize = 1 << 20

type options struct {
	format         string
	dateTimeFormat string
	configPath     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "simplelog [file...]",
		Short:        "Render JSON-lines log events with a template",
		Long:         "Reads one JSON object per line from the given files (or stdin) and prints each as a line rendered with the template.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.formatter(cmd)
			if err != nil {
				return err
			}
			return run(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", formatter.DefaultFormat, "template with %field% placeholders")
	flags.StringVarP(&opts.dateTimeFormat, "date-format", "d", formatter.DefaultDateTimeFormat, "Go time layout for date values, or U for Unix seconds")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or TOML file with format and dateTimeFormat")

	return cmd
}

// formatter builds the formatter from the config file, then applies the
// flags the user set explicitly.
func (o *options) formatter(cmd *cobra.Command) (*formatter.Simple, error) {
	cfg := formatter.Config{Format: o.format, DateTimeFormat: o.dateTimeFormat}

	if o.configPath != "" {
		f, err := config.LoadFormatter(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = formatter.Config{Format: f.Template(), DateTimeFormat: f.DateTimeFormat()}
		if cmd.Flags().Changed("format") {
			cfg.Format = o.format
		}
	}

	f := formatter.NewSimple(cfg)
	if cmd.Flags().Changed("date-format") {
		f.SetDateTimeFormat(o.dateTimeFormat)
	}
	return f, nil
}

func run(cmd *cobra.Command, f formatter.Formatter, files []string) error {
	out := handler.NewStream(handler.StreamConfig{Writer: cmd.OutOrStdout(), Formatter: f})
	defer out.Close()

	diag := logger.NewBuilder().
		WithHandler(handler.NewStream(handler.StreamConfig{
			Writer:    cmd.ErrOrStderr(),
			Formatter: formatter.NewSimpleFormat("simplelog: %priorityName%: %message% (%source%:%line%)"),
		})).
		Build()

	if len(files) == 0 {
		skipped, err := render(cmd.InOrStdin(), "-", out, diag)
		return summarize(skipped, err)
	}

	var skipped int
	for _, name := range files {
		n, err := renderFile(name, out, diag)
		skipped += n
		if err != nil {
			return err
		}
	}
	return summarize(skipped, nil)
}

func renderFile(name string, out handler.Handler, diag *logger.Logger) (int, error) {
	file, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return render(file, name, out, diag)
}

// render formats every line of r. Lines that are not JSON objects are
// reported on diag and skipped.
func render(r io.Reader, source string, out handler.Handler, diag *logger.Logger) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var skipped, line int
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		event, err := parseEvent(raw)
		if err != nil {
			skipped++
			diag.Warn("skipping line", logger.String("source", source), logger.Int("line", line), err)
			continue
		}
		if err := out.Handle(event); err != nil {
			return skipped, fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return skipped, fmt.Errorf("read %s: %w", source, err)
	}
	return skipped, nil
}

func summarize(skipped int, err error) error {
	if err != nil {
		return err
	}
	if skipped > 0 {
		return fmt.Errorf("%d malformed line(s) skipped", skipped)
	}
	return nil
}
