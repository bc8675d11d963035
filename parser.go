package slow2csv

import (
	"bufio"
	"io"
	"strings"
)

// Parser reads a slow query log and cuts it into blocs, one bloc per query
// entry. It consumes the source one line at a time, so the whole file never
// needs to fit in memory.
//
// A Parser is forward-only: once Next returned nil, the source is exhausted
// and the Parser cannot be rewound.
type Parser struct {
	scanner  *bufio.Scanner
	bloc     []string
	preamble []string
	started  bool
	srv      Server
}

// NewParser returns a new Parser reading from r.
func NewParser(r io.Reader) *Parser {
	s := bufio.NewScanner(r)
	// Multi-value INSERT lines can be way longer than the default 64k
	s.Buffer(make([]byte, 1024*1024), 1024*1024)

	return &Parser{scanner: s}
}

// Next returns the lines of the next bloc. It returns nil once the source is
// exhausted, and a non-nil error if the source could not be read entirely.
func (p *Parser) Next() ([]string, error) {
	for p.scanner.Scan() {
		line := p.scanner.Text()

		if isBlocStart(line) {
			if !p.started {
				// Lines seen so far are the server banner, not a query
				// entry. Keep them around for ServerMeta.
				p.started = true
				p.srv = parseServerMeta(p.preamble)
				p.bloc = append(p.bloc, line)
				continue
			}

			// A '# User@Host:' right after '# Time:' headers belongs to the
			// same bloc
			if strings.HasPrefix(line, "# User@Host:") && onlyTimeHeaders(p.bloc) {
				p.bloc = append(p.bloc, line)
				continue
			}

			bloc := p.bloc
			p.bloc = []string{line}
			return bloc, nil
		}

		if !p.started {
			p.preamble = append(p.preamble, line)
			continue
		}
		p.bloc = append(p.bloc, line)
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}

	// Send the last bloc
	if len(p.bloc) > 0 {
		bloc := p.bloc
		p.bloc = nil
		return bloc, nil
	}

	return nil, nil
}

// ServerMeta returns the server information parsed from the log banner. It
// stays zero until the first bloc has been reached.
func (p *Parser) ServerMeta() Server {
	return p.srv
}

func isBlocStart(line string) bool {
	return strings.HasPrefix(line, "# Time:") || strings.HasPrefix(line, "# User@Host:")
}

// onlyTimeHeaders tells whether the bloc contains nothing but '# Time:'
// headers, meaning the upcoming '# User@Host:' line completes it instead of
// starting a new one.
func onlyTimeHeaders(bloc []string) bool {
	if len(bloc) == 0 {
		return false
	}
	for _, line := range bloc {
		if !strings.HasPrefix(line, "# Time:") {
			return false
		}
	}
	return true
}
