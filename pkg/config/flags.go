package config

import "flag"

// Flags holds command-line overrides. Only flags that were set on the
// command line are applied.
type Flags struct {
	Config   string
	Case     string
	Samples  int
	Workers  int
	Seed     int64
	Parallel bool
	Debug    bool
	LogFile  string

	fs *flag.FlagSet
}

// Register defines the override flags on fs
func (f *Flags) Register(fs *flag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.Config, "config", "", "Path to config file (default ./"+DefaultFileName+" if present)")
	fs.StringVar(&f.Case, "case", "", "Case to estimate (see -list)")
	fs.IntVar(&f.Samples, "samples", 0, "Number of rays emitted from the source surface")
	fs.IntVar(&f.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&f.Seed, "seed", 0, "Base random seed")
	fs.BoolVar(&f.Parallel, "parallel", true, "Use the parallel estimator")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this rotated file")
}

// Apply copies every flag set on the command line into cfg
func (f *Flags) Apply(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "case":
			cfg.Estimate.Case = f.Case
		case "samples":
			cfg.Estimate.Samples = f.Samples
		case "workers":
			cfg.Estimate.Workers = f.Workers
		case "seed":
			cfg.Estimate.Seed = f.Seed
		case "parallel":
			cfg.Estimate.Parallel = f.Parallel
		case "debug":
			if f.Debug {
				cfg.Logging.Level = "debug"
			}
		case "log-file":
			cfg.Logging.LogFile = f.LogFile
		}
	})
}
