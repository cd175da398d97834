// Command uqparse decodes saved Urgent Quest schedule pages and prints the
// events they list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"gopkg.in/yaml.v3"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/schedule"
)

const dateLayout = "2006-01-02"

var errUsage = errors.New("usage")

type options struct {
	today    time.Time
	location *time.Location
	format   string
	verbose  bool
	files    []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	//nolint:exhaustruct //other fields are optional
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	events, failed := decodeFiles(logger, opts)

	switch opts.format {
	case "table":
		err = writeTable(stdout, events)
	default:
		err = writeYAML(stdout, events)
	}
	if err != nil {
		logger.Error("failed to write events", logging.ErrAttr(err))
		return 1
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	flags := flag.NewFlagSet("uqparse", flag.ContinueOnError)
	flags.SetOutput(stderr)

	today := flags.String("today", "", "Reference date (YYYY-MM-DD), defaults to today")
	zone := flags.String("tz", "America/Los_Angeles", "Time zone of the schedule")
	format := flags.String("format", "yaml", "Output format: 'yaml' or 'table'")
	verbose := flags.Bool("v", false, "Log skipped rows and nearest color matches")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: uqparse [flags] page.html...")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return options{}, errUsage
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return options{}, errUsage
	}

	if *format != "yaml" && *format != "table" {
		return options{}, fmt.Errorf("unknown format %q", *format)
	}

	location, err := time.LoadLocation(*zone)
	if err != nil {
		return options{}, err
	}

	reference := time.Now().In(location)
	if *today != "" {
		reference, err = time.ParseInLocation(dateLayout, *today, location)
		if err != nil {
			return options{}, fmt.Errorf("invalid -today: %w", err)
		}
	}

	return options{
		today:    reference,
		location: location,
		format:   *format,
		verbose:  *verbose,
		files:    flags.Args(),
	}, nil
}

// decodeFiles decodes every file with one registry and reference date. The
// first event seen at an instant wins across files.
func decodeFiles(logger *slog.Logger, opts options) ([]schedule.Event, int) {
	decoder := schedule.NewDecoder(
		logger,
		schedule.NewColorRegistry(),
		opts.today,
		opts.location,
	)

	events := []schedule.Event{}
	seen := map[int64]bool{}
	failed := 0

	for _, file := range opts.files {
		decoded, err := decodeFile(decoder, file)
		if err != nil {
			logger.Error("failed to decode "+file, logging.ErrAttr(err))
			failed++
			continue
		}

		for _, event := range decoded {
			if seen[event.Time.Unix()] {
				continue
			}
			seen[event.Time.Unix()] = true
			events = append(events, event)
		}
	}

	return events, failed
}

func decodeFile(decoder *schedule.Decoder, path string) ([]schedule.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(doc.Selection)
}

func writeYAML(w io.Writer, events []schedule.Event) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd //indent width

	if err := encoder.Encode(events); err != nil {
		return err
	}

	return encoder.Close()
}

func writeTable(w io.Writer, events []schedule.Event) error {
	const timeLayout = "Mon 2006-01-02 15:04 MST"

	header := []string{"TIME", "EVENT"}
	width := runewidth.StringWidth(header[0])
	for _, event := range events {
		width = max(width, runewidth.StringWidth(event.Time.Format(timeLayout)))
	}

	_, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(header[0], width), header[1])
	if err != nil {
		return err
	}

	for _, event := range events {
		_, err = fmt.Fprintf(
			w,
			"%s  %s\n",
			runewidth.FillRight(event.Time.Format(timeLayout), width),
			event.Name,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
