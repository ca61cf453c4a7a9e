package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/knadh/koanf"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/pterm/pterm"

	"github.com/npillmayer/golox/interpreter"
	"github.com/npillmayer/golox/lox"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracerKeys are the selectors of all tracers golox uses.
var tracerKeys = []string{
	"golox.scanner",
	"golox.parser",
	"golox.resolver",
	"golox.interpreter",
	"golox.lox",
	"golox.repl",
}

// defaultMaxCallDepth limits recursion of Lox functions, if not configured
// otherwise.
const defaultMaxCallDepth = 10000

func main() {
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	conffile := flag.String("config", "", "Configuration file (YAML)")
	initf := flag.String("init", "", "Lox script to run before going interactive")
	flag.Parse()
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(lox.ExitUsage)
	}
	traceSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "trace" {
			traceSet = true
		}
	})
	if err := setupConfiguration(*conffile, *tlevel, traceSet); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(lox.ExitIO)
	}
	tracer().Infof("max call depth is %d", gconf.GetInt("maxcalldepth"))
	if flag.NArg() == 1 {
		os.Exit(runFile(flag.Arg(0)))
	}
	repl, err := NewREPL()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(lox.ExitIO)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to golox") // colored welcome message
	tracer().Infof("Quit with <ctrl>D or 'exit'")
	repl.loadInitFile(*initf)
	repl.Loop()
}

// setupConfiguration builds the global configuration from defaults, an
// optional YAML file and the trace level flag, then sets up tracing.
// An explicitly given trace level flag overrides levels from the file.
func setupConfiguration(filename string, level string, levelFlagSet bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	k := koanf.New(".")
	defaults := map[string]interface{}{
		"maxcalldepth":       defaultMaxCallDepth,
		"tracelevel.root":    level,
		"tracinginterpreter": level,
	}
	for _, key := range tracerKeys {
		defaults["tracelevel."+key] = level
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return err
	}
	if filename != "" {
		if err := k.Load(file.Provider(filename), kyaml.Parser()); err != nil {
			return fmt.Errorf("cannot load configuration %q: %w", filename, err)
		}
	}
	conf := koanfadapter.New(k, "", nil) // no lookup of default config locations
	if levelFlagSet {
		conf.Set("tracelevel.root", level)
		conf.Set("tracinginterpreter", level)
		for _, key := range tracerKeys {
			conf.Set("tracelevel."+key, level)
		}
	}
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// runFile runs a script and returns the exit code.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("cannot read script: %v", err))
		return lox.ExitIO
	}
	intp := interpreter.New()
	intp.SetErrorHandler(func(e error) {
		fmt.Fprintln(os.Stderr, e.Error())
	})
	err = lox.Run(string(source), intp)
	if err != nil {
		tracer().Infof("script %s failed: %v", path, err)
	}
	return lox.ExitCode(err)
}
