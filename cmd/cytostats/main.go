// cytostats computes summary statistics over cytometry event tables and
// writes the assembled result as CSV or XLSX, with an optional HTML report
// and optional PostgreSQL persistence.
//
// Each input file holds one sample: a header row of channel names followed
// by one numeric row per event. Sample names default to the file base name.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"cytostats/adapters/export"
	"cytostats/adapters/postgres"
	"cytostats/adapters/source"
	"cytostats/adapters/tabular"
	"cytostats/app"
	"cytostats/domain/cyto"
	"cytostats/domain/stats"
	"cytostats/internal"
	"cytostats/internal/config"
	"cytostats/ports"
)

func main() {
	var (
		in       = flag.String("in", "", "comma-separated event table files, one sample each (.csv/.xlsx - required)")
		stat     = flag.String("stat", "", "statistic to compute: count, freq, mean, geo mean, median, mode, cv (required)")
		channels = flag.String("channels", "", "comma-separated channel subset (default all)")
		long     = flag.Bool("long", false, "assemble long-format output")
		out      = flag.String("out", "stats", "output path (.csv appended when no extension)")
		format   = flag.String("format", "csv", "output format: csv or xlsx")
		report   = flag.String("report", "", "also write an HTML report to this path")
		smooth   = flag.Float64("smooth", 0, "kernel density bandwidth multiplier for mode (default from config)")
		store    = flag.Bool("store", false, "persist the run to the configured database")
	)
	flag.Parse()

	if *in == "" || *stat == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := internal.NewDefaultLogger()

	if *smooth <= 0 {
		*smooth = cfg.Stats.DensitySmooth
	}

	samples, err := loadSamples(strings.Split(*in, ","))
	if err != nil {
		logger.Error("loading samples: %v", err)
		os.Exit(1)
	}
	set, err := source.NewSampleSet(samples...)
	if err != nil {
		logger.Error("building sample set: %v", err)
		os.Exit(1)
	}

	req := stats.Request{
		Statistic:     *stat,
		DensitySmooth: *smooth,
		Long:          *long,
	}
	if *channels != "" {
		req.Channels = strings.Split(*channels, ",")
	}

	ctx := context.Background()
	service := app.NewStatsService(logger)
	rs, err := service.Compute(ctx, set, req)
	if err != nil {
		logger.Error("computing %q: %v", *stat, err)
		os.Exit(1)
	}

	var exporter ports.Exporter
	switch *format {
	case "csv":
		exporter = export.CSV{}
	case "xlsx":
		exporter = export.Excel{}
	default:
		logger.Error("unknown format %q", *format)
		os.Exit(1)
	}
	path, err := service.Save(rs, *long, exporter, *out)
	if err != nil {
		logger.Error("writing result: %v", err)
		os.Exit(1)
	}
	fmt.Println(path)

	run := stats.NewRun(rs, *long)
	if *report != "" {
		rpath, err := export.Report{Run: run}.Export(*report, run.Table)
		if err != nil {
			logger.Error("writing report: %v", err)
			os.Exit(1)
		}
		fmt.Println(rpath)
	}

	if *store {
		if cfg.Database.URL == "" {
			logger.Error("-store requires DATABASE_URL")
			os.Exit(1)
		}
		db, err := postgres.Open(cfg.Database.URL)
		if err != nil {
			logger.Error("opening database: %v", err)
			os.Exit(1)
		}
		defer db.Close()
		rstore := postgres.NewResultStore(db)
		if err := rstore.Init(ctx); err != nil {
			logger.Error("initializing schema: %v", err)
			os.Exit(1)
		}
		if err := rstore.SaveRun(ctx, run); err != nil {
			logger.Error("storing run: %v", err)
			os.Exit(1)
		}
		logger.Info("run %s stored", run.ID)
	}
}

func loadSamples(paths []string) ([]*cyto.Sample, error) {
	samples := make([]*cyto.Sample, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		smp, err := tabular.NewReader(p).ReadSample("")
		if err != nil {
			return nil, err
		}
		samples = append(samples, smp)
	}
	return samples, nil
}
