package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/devops-works/slow2csv"
	. "github.com/logrusorgru/aurora"
	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	var o options
	flag.StringVar(&o.logfile, "f", "", "Slow query log file to convert")
	flag.StringVar(&o.output, "o", "", "Output CSV file. Defaults to stdout")
	flag.StringVar(&o.loglevel, "l", "info", "Log level")
	flag.BoolVar(&o.summary, "summary", false, "Show query time statistics once done")
	flag.Parse()

	if err := o.parse(); err != nil {
		flag.Usage()
		logrus.Fatalf("cannot parse options: %s", err)
	}

	logger, err := newLogger(o.loglevel)
	if err != nil {
		logrus.Fatalf("cannot create logger: %s", err)
	}

	fd, err := os.Open(o.logfile)
	if err != nil {
		logger.Fatalf("cannot open log file: %s", err)
	}
	defer fd.Close()
	logger.Debugf("%s successfully opened", o.logfile)

	out := os.Stdout
	if o.output != "" {
		out, err = os.Create(o.output)
		if err != nil {
			logger.Fatalf("cannot create output file: %s", err)
		}
		defer out.Close()
		logger.Debugf("%s successfully created", o.output)
	}

	// The progress bar would fight with the CSV for the terminal, so it only
	// shows up when the CSV goes to a file
	var src io.Reader = fd
	var bar *pb.ProgressBar
	if o.output != "" && term.IsTerminal(int(os.Stderr.Fd())) {
		if fi, err := fd.Stat(); err == nil {
			bar = pb.Full.Start64(fi.Size())
			bar.SetWriter(os.Stderr)
			src = bar.NewProxyReader(fd)
		}
	}

	c := slow2csv.NewConverter(src, out)
	start := time.Now()
	if err := c.Run(); err != nil {
		logger.Fatalf("conversion failed: %s", err)
	}
	if bar != nil {
		bar.Finish()
	}
	elapsed := time.Since(start)

	if srv := c.Server(); srv.Binary != "" {
		logger.Infof("log from %s, version %s", srv.Binary, srv.Version)
	}
	logger.Infof("converted %d entries in %s", c.Entries(), elapsed)

	if o.summary {
		showSummary(c.QueryTimes())
	}
}

// newLogger creates the application logger with the desired level. Logs go
// to stderr so they never end up in the CSV when writing to stdout.
func newLogger(loglevel string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	switch loglevel {
	case "trace":
		logger.SetLevel(logrus.TraceLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error", "err":
		logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logger.SetLevel(logrus.FatalLevel)
	default:
		return nil, errors.New("log level not recognised: " + loglevel)
	}

	return logger, nil
}

// showSummary prints query time statistics on stderr
func showSummary(times []float64) {
	if len(times) == 0 {
		fmt.Fprintln(os.Stderr, "no query times found, nothing to show")
		return
	}

	mean, _ := stats.Mean(times)
	p50, _ := stats.Percentile(times, 50)
	p95, _ := stats.Percentile(times, 95)
	max, _ := stats.Max(times)

	fmt.Fprintf(os.Stderr, `
=-= Query times =-=

Queries:  %d
Mean:     %.6fs
P50:      %.6fs
P95:      %.6fs
Max:      %.6fs
`,
		Bold(len(times)),
		Bold(mean),
		Bold(p50),
		Bold(p95),
		Bold(max),
	)
}
