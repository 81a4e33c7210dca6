// Command wificard evaluates a normalized Wi-Fi observation snapshot
// and renders the risk card.
//
// Usage:
//
//	wificard -input home.yaml
//	wificard -input scan.json -format json -output result.json
//	wificard -input office.yaml -fail-on High
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wificard/wificard/pkg/assessment"
	"github.com/wificard/wificard/pkg/config"
	"github.com/wificard/wificard/pkg/defaults"
	"github.com/wificard/wificard/pkg/input"
	"github.com/wificard/wificard/pkg/jsonutil"
	"github.com/wificard/wificard/pkg/ui"
)

func main() {
	cfg := config.Default()

	flag.StringVar(&cfg.InputFile, "input", "", "snapshot file to evaluate (.yaml, .yml, or .json)")
	flag.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "output format: console, text, or json")
	flag.StringVar(&cfg.OutputFile, "output", "", "write output to file instead of stdout")
	flag.StringVar(&cfg.FailOn, "fail-on", "", "exit non-zero when severity is at or above this level")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	flag.BoolVar(&cfg.Silent, "silent", false, "print only the card itself")
	flag.Parse()

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "wificard: %v\n", err)
		flag.Usage()
		return defaults.ExitUserError
	}

	ui.SetSilent(cfg.Silent)
	// Styled output only makes sense on a color-capable terminal that
	// is not being piped.
	if cfg.NoColor || cfg.OutputFile != "" || !ui.StdoutIsTerminal() {
		ui.SetNoColor(true)
	}

	snap, err := input.LoadSnapshot(cfg.InputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wificard: %v\n", err)
		return defaults.ExitUserError
	}

	result := assessment.EvaluateSnapshot(snap)

	rendered, err := render(cfg, result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wificard: %v\n", err)
		return defaults.ExitInternalError
	}

	if err := emit(cfg.OutputFile, rendered); err != nil {
		fmt.Fprintf(os.Stderr, "wificard: %v\n", err)
		return defaults.ExitInternalError
	}

	if cfg.GateTripped(result.Severity) {
		if !cfg.Silent {
			fmt.Fprintf(os.Stderr, "wificard: severity %s meets -fail-on %s\n", result.Severity, cfg.FailOn)
		}
		return defaults.ExitSeverityGate
	}
	return defaults.ExitSuccess
}

func render(cfg *config.Config, result *assessment.Result) (string, error) {
	switch cfg.OutputFormat {
	case config.FormatText:
		return result.CardText, nil
	case config.FormatJSON:
		data, err := jsonutil.MarshalIndent(result, "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return ui.RenderConsole(result), nil
	}
}

func emit(path, rendered string) error {
	if path == "" {
		fmt.Println(rendered)
		return nil
	}
	return os.WriteFile(path, []byte(rendered+"\n"), 0o644)
}
