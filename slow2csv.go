// Package slow2csv converts MariaDB slow query logs into CSV, one row per
// query entry. The SQL text is kept multiline and quoted following RFC 4180,
// so the output can be imported directly into spreadsheet software.
package slow2csv

// Columns is the CSV header row. Entry.Record emits fields in this exact
// order.
var Columns = []string{
	"time",
	"user",
	"host",
	"thread_id",
	"schema",
	"qc_hit",
	"set_timestamp",
	"use_schema",
	"query",
	"query_time",
	"lock_time",
	"rows_sent",
	"rows_examined",
	"rows_affected",
	"bytes_sent",
}

// Entry is a single slow query entry and the data associated. All fields are
// kept as strings so that values reach the CSV exactly as they appear in the
// log file. Numeric fields are validated while parsing and left empty when
// missing or unparsable.
type Entry struct {
	Time         string
	User         string
	Host         string
	ThreadID     string
	Schema       string
	QCHit        string
	SetTimestamp string
	UseSchema    string
	Query        string
	QueryTime    string
	LockTime     string
	RowsSent     string
	RowsExamined string
	RowsAffected string
	BytesSent    string

	// hasTime tells whether the entry carried its own '# Time:' header or
	// must inherit the value from a previous entry
	hasTime bool
}

// Record returns the entry as a CSV record, fields in the same order than
// Columns.
func (e Entry) Record() []string {
	return []string{
		e.Time,
		e.User,
		e.Host,
		e.ThreadID,
		e.Schema,
		e.QCHit,
		e.SetTimestamp,
		e.UseSchema,
		e.Query,
		e.QueryTime,
		e.LockTime,
		e.RowsSent,
		e.RowsExamined,
		e.RowsAffected,
		e.BytesSent,
	}
}
