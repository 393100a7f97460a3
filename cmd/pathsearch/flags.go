package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/QSI-BAQS/pathsearch/config"
)

const usage = `Usage: pathsearch [flags] CIRCUIT

Reads CIRCUIT_jabalize.json from the store and writes CIRCUIT_analyzed.json.
Without -s/--search the greedy path is written; with it, every Pareto-optimal
(path length, peak memory) pair.

Flags:
`

// cliArgs holds the parsed command line. set records which flags were given
// explicitly so that they override the configuration file.
type cliArgs struct {
	circuit    string
	configPath string

	search      bool
	threads     int
	taskBound   int
	store       string
	codec       string
	compression string
	logLevel    string
	logFormat   string
	metricsAddr string

	set map[string]bool
}

func newFlagSet(a *cliArgs, out io.Writer) *flag.FlagSet {
	def := config.Default()
	fs := flag.NewFlagSet("pathsearch", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		_, _ = fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}

	fs.BoolVar(&a.search, "s", def.Search, "search for all best paths (shorthand)")
	fs.BoolVar(&a.search, "search", def.Search, "search for all best paths; this may take some time")
	fs.IntVar(&a.threads, "n", def.Threads, "number of threads (shorthand)")
	fs.IntVar(&a.threads, "nthreads", def.Threads, "number of threads; below 3 the search runs sequentially, otherwise one thread aggregates results")
	fs.IntVar(&a.taskBound, "b", def.TaskBound, "bound on the number of tasks (shorthand)")
	fs.IntVar(&a.taskBound, "task-bound", def.TaskBound, "bound on the number of split tasks; the last task does all remaining work")
	fs.StringVar(&a.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&a.store, "store", def.Store, "document store: file://dir, s3://bucket/prefix or minio://host/bucket/prefix")
	fs.StringVar(&a.codec, "codec", def.Codec, "codec of written documents (json, go-json)")
	fs.StringVar(&a.compression, "compression", def.Compression, "compression of written documents (none, lz4, zstd)")
	fs.StringVar(&a.logLevel, "log-level", def.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&a.logFormat, "log-format", def.Log.Format, "log format (text, json)")
	fs.StringVar(&a.metricsAddr, "metrics-addr", def.Metrics.Addr, "serve Prometheus metrics on this address")
	return fs
}

// parseArgs parses args. Flags may appear before and after CIRCUIT.
func parseArgs(args []string, out io.Writer) (cliArgs, error) {
	a := cliArgs{set: make(map[string]bool)}
	fs := newFlagSet(&a, out)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return cliArgs{}, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	switch len(positional) {
	case 0:
		fs.Usage()
		return cliArgs{}, errors.New("missing CIRCUIT")
	case 1:
		a.circuit = positional[0]
	default:
		return cliArgs{}, fmt.Errorf("expected one CIRCUIT, got %d arguments", len(positional))
	}

	fs.Visit(func(f *flag.Flag) { a.set[canonical(f.Name)] = true })
	return a, nil
}

func canonical(name string) string {
	switch name {
	case "s":
		return "search"
	case "n":
		return "nthreads"
	case "b":
		return "task-bound"
	default:
		return name
	}
}

// apply overrides cfg with every flag given on the command line.
func (a cliArgs) apply(cfg config.Config) (config.Config, error) {
	if a.set["search"] {
		cfg.Search = a.search
	}
	if a.set["nthreads"] {
		cfg.Threads = a.threads
	}
	if a.set["task-bound"] {
		cfg.TaskBound = a.taskBound
	}
	if a.set["store"] {
		cfg.Store = a.store
	}
	if a.set["codec"] {
		cfg.Codec = a.codec
	}
	if a.set["compression"] {
		cfg.Compression = a.compression
	}
	if a.set["log-level"] {
		cfg.Log.Level = a.logLevel
	}
	if a.set["log-format"] {
		cfg.Log.Format = a.logFormat
	}
	if a.set["metrics-addr"] {
		cfg.Metrics.Addr = a.metricsAddr
	}

	// Re-run normalization and validation on the merged result.
	data, err := cfg.Marshal()
	if err != nil {
		return config.Config{}, err
	}
	return config.Parse(data)
}

// loadConfig returns the configuration file (or the defaults) with the
// command line applied.
func (a cliArgs) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return config.Config{}, err
		}
	}
	return a.apply(cfg)
}
