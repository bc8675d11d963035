package slow2csv

import (
	"regexp"
	"strconv"
	"strings"
)

// Server holds the information found in the banner lines at the top of a
// slow query log file.
type Server struct {
	Binary             string
	VersionShort       string
	Version            string
	VersionDescription string
	Port               int
	Socket             string
}

var versionRe = regexp.MustCompile(`^([^,]+),\s+Version:\s+([0-9\.]+)([A-Za-z0-9-]+)\s+\((.*)\)\. started`)

// parseServerMeta parses the banner lines. Files rotated mid-write may not
// have a banner at all, in which case a zero Server is returned.
func parseServerMeta(preamble []string) Server {
	var srv Server

	if len(preamble) < 2 {
		return srv
	}

	matches := versionRe.FindStringSubmatch(preamble[0])
	if len(matches) != 5 {
		return srv
	}
	srv.Binary = matches[1]
	srv.VersionShort = matches[2]
	srv.Version = srv.VersionShort + matches[3]
	srv.VersionDescription = matches[4]

	net := preamble[1]
	if parts := strings.Split(net, " "); len(parts) > 2 {
		srv.Port, _ = strconv.Atoi(parts[2])
	}
	if parts := strings.Split(net, ":"); len(parts) > 2 {
		srv.Socket = strings.TrimLeft(parts[2], " ")
	}

	return srv
}
