package slow2csv

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Converter drives a full conversion run: it pulls blocs from a Parser,
// resolves the carried-over time and writes one CSV record per entry.
type Converter struct {
	p *Parser
	w *csv.Writer

	// MariaDB only logs '# Time:' when the clock changed since the previous
	// entry, so entries without it reuse the last value seen
	lastTime string

	entries    int
	queryTimes []float64
}

// NewConverter returns a Converter reading a slow query log from r and
// writing CSV to w.
func NewConverter(r io.Reader, w io.Writer) *Converter {
	return &Converter{
		p: NewParser(r),
		w: csv.NewWriter(w),
	}
}

// Run converts the whole log. It writes the header row, then one record per
// entry. Malformed entries produce records with empty fields, only read and
// write errors stop the run.
func (c *Converter) Run() error {
	if err := c.w.Write(Columns); err != nil {
		return err
	}

	for {
		bloc, err := c.p.Next()
		if err != nil {
			return err
		}
		if bloc == nil {
			break
		}

		e := ParseBloc(bloc)

		// An entry carrying its own time updates the reference, the others
		// inherit it
		if e.hasTime {
			c.lastTime = e.Time
		} else {
			e.Time = c.lastTime
		}

		if err := c.w.Write(e.Record()); err != nil {
			return err
		}
		c.entries++

		if qt, err := strconv.ParseFloat(e.QueryTime, 64); err == nil {
			c.queryTimes = append(c.queryTimes, qt)
		}
	}

	c.w.Flush()
	return c.w.Error()
}

// Entries returns the number of records written.
func (c *Converter) Entries() int {
	return c.entries
}

// QueryTimes returns the query times of the converted entries, in seconds.
func (c *Converter) QueryTimes() []float64 {
	return c.queryTimes
}

// Server returns the server information found in the log banner, if any.
func (c *Converter) Server() Server {
	return c.p.ServerMeta()
}
