package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	localedata "github.com/goliatone/go-localedata"
)

type cliConfig struct {
	locale string
	accept string
	key    string
	policy string
	chain  bool
	data   []string
}

type pathFlag struct {
	items []string
}

func (f *pathFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *pathFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "localedata: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	var dataFiles pathFlag

	fs := flag.NewFlagSet("localedata", flag.ContinueOnError)
	fs.StringVar(&cfg.locale, "locale", "", "locale to resolve, e.g. en-GB or sr_Latn_RS")
	fs.StringVar(&cfg.accept, "accept", "", "Accept-Language header to resolve instead of -locale")
	fs.StringVar(&cfg.key, "key", localedata.LongWeekKey.String(), "data key to resolve against")
	fs.StringVar(&cfg.policy, "policy", "", "fallback policy: language (default), region or collation")
	fs.BoolVar(&cfg.chain, "chain", false, "print the fallback chain for -locale and exit")
	fs.Var(&dataFiles, "data", "JSON, YAML or TOML relative time file layered over the baked tables. Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	cfg.data = dataFiles.items

	if cfg.locale == "" && cfg.accept == "" {
		return cliConfig{}, errors.New("one of -locale or -accept is required")
	}
	if cfg.locale != "" && cfg.accept != "" {
		return cliConfig{}, errors.New("-locale and -accept are mutually exclusive")
	}
	if cfg.chain && cfg.locale == "" {
		return cliConfig{}, errors.New("-chain requires -locale")
	}

	return cfg, nil
}

func run(cfg cliConfig, out io.Writer) error {
	policy, err := localedata.ParseFallbackPolicy(cfg.policy)
	if err != nil {
		return err
	}

	if cfg.chain {
		locale, err := localedata.ParseLocale(cfg.locale)
		if err != nil {
			return err
		}
		for _, candidate := range localedata.FallbackChain(locale, policy) {
			fmt.Fprintln(out, candidate)
		}
		return nil
	}

	key := localedata.DataKey(cfg.key)
	opts := []localedata.Option[*localedata.RelativeTimePatterns]{}
	if len(cfg.data) > 0 {
		opts = append(opts, localedata.WithLoader[*localedata.RelativeTimePatterns](localedata.NewRelativeTimeFileLoader(cfg.data...)))
	}
	if cfg.policy != "" {
		opts = append(opts, localedata.WithKeyPolicy[*localedata.RelativeTimePatterns](key, policy))
	}

	provider, err := localedata.NewRelativeTimeProvider(opts...)
	if err != nil {
		return err
	}

	var res localedata.Resolution[*localedata.RelativeTimePatterns]
	if cfg.accept != "" {
		res, err = provider.LoadAcceptLanguage(key, cfg.accept)
	} else {
		res, err = provider.LoadString(key, cfg.locale)
	}
	if err != nil {
		return err
	}

	printResolution(out, key, res)
	return nil
}

func printResolution(out io.Writer, key localedata.DataKey, res localedata.Resolution[*localedata.RelativeTimePatterns]) {
	match := "fallback"
	if res.Exact {
		match = "exact"
	}

	fmt.Fprintf(out, "key:      %s\n", key)
	fmt.Fprintf(out, "resolved: %s (%s)\n", res.Locale, match)

	record := res.Record
	if record == nil {
		return
	}
	for _, phrase := range record.Relatives {
		fmt.Fprintf(out, "relative %+d: %s\n", phrase.Offset, phrase.Text)
	}
	for _, category := range record.Past.Categories() {
		fmt.Fprintf(out, "past %s: %s\n", category, record.Past.Select(category).Template())
	}
	for _, category := range record.Future.Categories() {
		fmt.Fprintf(out, "future %s: %s\n", category, record.Future.Select(category).Template())
	}
}
