package slow2csv

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	userHostRe     = regexp.MustCompile(`^# User@Host: (.*?) @\s*(.*)`)
	setTimestampRe = regexp.MustCompile(`(?i)^\s*SET timestamp=(\d+);\s*$`)
	useSchemaRe    = regexp.MustCompile("(?i)^\\s*USE `?([0-9A-Za-z$_]+)`?;\\s*$")
)

// ParseBloc parses the lines of a bloc into an Entry. Header lines fill the
// metadata fields, the remaining lines form the SQL text. 'SET timestamp'
// and 'USE' statements are pulled out of the SQL text into their own fields
// so they do not appear twice.
//
// A malformed bloc still yields an Entry: missing pieces degrade to empty
// fields, they never fail the whole conversion.
func ParseBloc(bloc []string) Entry {
	var e Entry
	var body []string

	for _, line := range bloc {
		if strings.HasPrefix(line, "#") {
			e.parseHeader(line)
			continue
		}

		if m := setTimestampRe.FindStringSubmatch(line); m != nil && e.SetTimestamp == "" {
			e.SetTimestamp = m[1]
			continue
		}
		if m := useSchemaRe.FindStringSubmatch(line); m != nil && e.UseSchema == "" {
			e.UseSchema = m[1]
			continue
		}

		body = append(body, line)
	}

	if e.User == "" && e.Host == "" {
		logrus.Warn("bloc without User@Host header, user and host left empty")
	}

	// Blank lines inside the SQL text are kept, the ones left over by the
	// extracted statements are not
	e.Query = strings.Trim(strings.Join(body, "\n"), "\n")

	return e
}

// parseHeader parses a line that begins with # and fills the matching Entry
// fields. Fields are matched by label because their position and presence
// vary between server versions.
func (e *Entry) parseHeader(line string) {
	if strings.HasPrefix(line, "# Time:") {
		e.Time = formatLogTime(strings.TrimSpace(strings.TrimPrefix(line, "# Time:")))
		e.hasTime = true
		return
	}

	if strings.HasPrefix(line, "# User@Host:") {
		if m := userHostRe.FindStringSubmatch(line); m != nil {
			// The user part reads like 'hugo[hugo]', the host part like
			// 'localhost []' or ' [172.18.0.3]'. The hostname wins over the
			// IP when both are there.
			e.User = strings.SplitN(strings.TrimSpace(m[1]), "[", 2)[0]
			for _, f := range strings.Fields(m[2]) {
				f = strings.Trim(f, "[]")
				if f == "" {
					continue
				}
				if strings.HasSuffix(f, ":") {
					// Reached the 'Id:' label some servers put on this line
					break
				}
				e.Host = f
				break
			}
		}
	}

	parts := strings.Split(line, " ")
	for idx, part := range parts {
		switch strings.ToLower(part) {
		case "query_time:":
			e.QueryTime = floatField("query_time", nextField(parts, idx))
		case "lock_time:":
			e.LockTime = floatField("lock_time", nextField(parts, idx))
		case "rows_sent:":
			e.RowsSent = intField("rows_sent", nextField(parts, idx))
		case "rows_examined:":
			e.RowsExamined = intField("rows_examined", nextField(parts, idx))
		case "rows_affected:":
			e.RowsAffected = intField("rows_affected", nextField(parts, idx))
		case "bytes_sent:":
			e.BytesSent = intField("bytes_sent", nextField(parts, idx))
		case "thread_id:", "id:":
			e.ThreadID = intField("thread_id", nextField(parts, idx))
		case "schema:":
			e.Schema = nextField(parts, idx)
		case "qc_hit:":
			e.QCHit = nextField(parts, idx)
		}
	}
}

// nextField returns the first non-empty field after position idx, stopping
// at the next label. Values can be right-aligned with spaces, like thread
// IDs, and some values can be missing entirely, like an empty Schema.
func nextField(parts []string, idx int) string {
	for i := idx + 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		if strings.HasSuffix(parts[i], ":") {
			return ""
		}
		return parts[i]
	}
	return ""
}

// floatField validates that s parses as a float. It returns s untouched so
// the value reaches the CSV exactly as logged, or an empty string when it
// does not parse.
func floatField(label, s string) string {
	if s == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		logrus.Warnf("%s: cannot parse %q as float: %s", label, s, err)
		return ""
	}
	return s
}

// intField validates that s parses as an int, see floatField.
func intField(label, s string) string {
	if s == "" {
		return ""
	}
	if _, err := strconv.Atoi(s); err != nil {
		logrus.Warnf("%s: cannot parse %q as int: %s", label, s, err)
		return ""
	}
	return s
}

// formatLogTime normalizes MariaDB's '210323 11:31:57' time format into
// '2021-03-23 11:31:57'. Values using another format are kept as-is.
func formatLogTime(raw string) string {
	t, err := time.Parse("060102 15:04:05", strings.Join(strings.Fields(raw), " "))
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02 15:04:05")
}
