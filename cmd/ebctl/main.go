// Command ebctl builds and sends EventBridge and Scheduler API requests from
// the command line. With --dry-run it prints the assembled request descriptor
// instead of sending it, which is handy for inspecting exactly what would go
// on the wire.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/microdose-ai-team/eventbridge"
	"github.com/microdose-ai-team/eventbridge/middleware"
)

type Globals struct {
	Region          string `help:"AWS region." env:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `help:"Access key ID." env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `help:"Secret access key." env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `help:"Session token for temporary credentials." env:"AWS_SESSION_TOKEN"`
	Endpoint        string `help:"Endpoint URL override (e.g. a local stack)."`
	DryRun          bool   `help:"Print the request descriptor instead of sending it."`
	Verbose         bool   `help:"Enable debug logging." short:"v"`
}

type CLI struct {
	Globals

	ListBuses      ListBusesCmd      `cmd:"" name:"list-buses" help:"List event buses."`
	CreateBus      CreateBusCmd      `cmd:"" name:"create-bus" help:"Create a custom event bus."`
	DeleteBus      DeleteBusCmd      `cmd:"" name:"delete-bus" help:"Delete an event bus."`
	DescribeBus    DescribeBusCmd    `cmd:"" name:"describe-bus" help:"Describe an event bus."`
	PutEvents      PutEventsCmd      `cmd:"" name:"put-events" help:"Publish a batch of events."`
	CreateSchedule CreateScheduleCmd `cmd:"" name:"create-schedule" help:"Create a schedule."`
	DeleteSchedule DeleteScheduleCmd `cmd:"" name:"delete-schedule" help:"Delete a schedule."`
	Version        VersionCmd        `cmd:"" help:"Print version information."`
}

type ListBusesCmd struct {
	Option []string `help:"Extra option as key=value, e.g. name_prefix=ops-." short:"o"`
}

func (c *ListBusesCmd) Run(g *Globals) error {
	opts, err := parseOptions(c.Option)
	if err != nil {
		return err
	}
	return dispatch(g, eventbridge.ListEventBuses(opts...))
}

type CreateBusCmd struct {
	Name   string   `arg:"" help:"Event bus name."`
	Option []string `help:"Extra option as key=value." short:"o"`
}

func (c *CreateBusCmd) Run(g *Globals) error {
	opts, err := parseOptions(c.Option)
	if err != nil {
		return err
	}
	return dispatch(g, eventbridge.CreateEventBus(c.Name, opts...))
}

type DeleteBusCmd struct {
	Name string `arg:"" help:"Event bus name."`
}

func (c *DeleteBusCmd) Run(g *Globals) error {
	return dispatch(g, eventbridge.DeleteEventBus(c.Name))
}

type DescribeBusCmd struct {
	Name string `help:"Event bus name. Defaults to the account's default bus."`
}

func (c *DescribeBusCmd) Run(g *Globals) error {
	var opts []eventbridge.Option
	if c.Name != "" {
		opts = append(opts, eventbridge.Opt("name", c.Name))
	}
	return dispatch(g, eventbridge.DescribeEventBus(opts...))
}

type PutEventsCmd struct {
	Entry  []string `arg:"" help:"Event entry as a JSON object with symbolic keys, e.g. '{\"detail_type\": \"order\"}'."`
	Option []string `help:"Extra top-level option as key=value." short:"o"`
}

func (c *PutEventsCmd) Run(g *Globals) error {
	entries := make([]eventbridge.Entry, 0, len(c.Entry))
	for _, raw := range c.Entry {
		entry, err := parseEntry(raw)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	opts, err := parseOptions(c.Option)
	if err != nil {
		return err
	}
	return dispatch(g, eventbridge.PutEvents(entries, opts...))
}

type CreateScheduleCmd struct {
	Name   string   `arg:"" help:"Schedule name."`
	Option []string `help:"Extra option as key=value, e.g. schedule_expression='rate(5 minutes)'." short:"o"`
}

func (c *CreateScheduleCmd) Run(g *Globals) error {
	opts, err := parseOptions(c.Option)
	if err != nil {
		return err
	}
	return dispatch(g, eventbridge.CreateSchedule(c.Name, opts...))
}

type DeleteScheduleCmd struct {
	Name string `arg:"" help:"Schedule name."`
}

func (c *DeleteScheduleCmd) Run(g *Globals) error {
	return dispatch(g, eventbridge.DeleteSchedule(c.Name))
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

// parseOptions turns repeated key=value flags into symbolic options. The
// value stays a string; anything richer belongs in a JSON entry.
func parseOptions(raw []string) ([]eventbridge.Option, error) {
	opts := make([]eventbridge.Option, 0, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("option %q is not key=value", kv)
		}
		opts = append(opts, eventbridge.Opt(key, value))
	}
	return opts, nil
}

// parseEntry decodes one JSON event entry into an option list. Keys are
// sorted so the resulting body is deterministic across invocations.
func parseEntry(raw string) (eventbridge.Entry, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("entry %q is not a JSON object: %w", raw, err)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entry := make(eventbridge.Entry, 0, len(fields))
	for _, k := range keys {
		entry = append(entry, eventbridge.Opt(k, fields[k]))
	}
	return entry, nil
}

// dispatch either prints the descriptor (--dry-run) or executes it and
// prints the response body.
func dispatch(g *Globals, req eventbridge.Request) error {
	if g.DryRun {
		out, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	cfg := eventbridge.Config{
		Region:          g.Region,
		AccessKeyID:     g.AccessKeyID,
		SecretAccessKey: g.SecretAccessKey,
		SessionToken:    g.SessionToken,
		Endpoint:        g.Endpoint,
	}
	if g.Verbose {
		cfg.HTTPClient = &http.Client{
			Transport: middleware.LoggingTransport(slog.Default(), nil),
			Timeout:   30 * time.Second,
		}
	}

	client, err := eventbridge.NewClient(cfg)
	if err != nil {
		return err
	}

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		return err
	}
	if len(resp.Body) == 0 {
		fmt.Println("ok")
		return nil
	}

	var pretty map[string]any
	if err := json.Unmarshal(resp.Body, &pretty); err != nil {
		fmt.Println(string(resp.Body))
		return nil
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("ebctl"),
		kong.Description("EventBridge and Scheduler request tool."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
