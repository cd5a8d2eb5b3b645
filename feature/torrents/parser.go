package torrents

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Record is one row of the download manager listing.
type Record struct {
	ID     int     `json:"id"`
	Done   string  `json:"done"`
	Have   string  `json:"have"`
	ETA    string  `json:"eta"`
	Up     float64 `json:"up"`
	Down   float64 `json:"down"`
	Ratio  float64 `json:"ratio"`
	Status string  `json:"status"`
	Name   string  `json:"name"`
}

// ParserOptions controls how the column-aligned listing is read.
type ParserOptions struct {
	// HeaderLines leading non-blank lines are discarded before matching.
	HeaderLines int
	// MinColumnGap is the smallest whitespace run treated as a column boundary.
	MinColumnGap int
}

// DefaultParserOptions matches the layout printed by transmission-remote -l.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{HeaderLines: 0, MinColumnGap: 2}
}

// Parser turns `transmission-remote -l` output into records.
// Lines that do not match the full column layout are dropped.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	opts    ParserOptions
	pattern *regexp.Regexp
}

// NewParser builds a parser. Negative header counts become zero and
// gaps below one become one.
func NewParser(opts ParserOptions) *Parser {
	if opts.HeaderLines < 0 {
		opts.HeaderLines = 0
	}
	if opts.MinColumnGap < 1 {
		opts.MinColumnGap = 1
	}
	return &Parser{opts: opts, pattern: linePattern(opts.MinColumnGap)}
}

// Options returns the effective options.
func (p *Parser) Options() ParserOptions {
	return p.opts
}

// linePattern builds the row pattern: id, done%, have, eta, up, down, ratio,
// status, name. Words inside eta, have and status are joined by one space,
// so with a gap of two or more every column boundary is unambiguous.
// transmission marks torrents in error with a `*` after the id.
func linePattern(gap int) *regexp.Regexp {
	g := fmt.Sprintf(`[ \t]{%d,}`, gap)
	return regexp.MustCompile(`^[ \t]*(\d+)\*?` + g +
		`(\d+)%` + g +
		`([\d.]+ \w+)` + g +
		`(\w+(?: \w+)*)` + g +
		`([\d.]+)` + g +
		`([\d.]+)` + g +
		`([\d.]+)` + g +
		`([\w&]+(?: [\w&]+)*)` + g +
		`(\S.*)$`)
}

// Parse returns the records found in raw. It never fails; input without any
// matching row yields an empty slice.
func (p *Parser) Parse(raw string) []Record {
	records := []Record{}
	skipped := 0

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "Sum:") {
			continue
		}
		if skipped < p.opts.HeaderLines {
			skipped++
			continue
		}

		if rec, ok := p.parseLine(line); ok {
			records = append(records, rec)
		}
	}

	return records
}

// parseLine converts a single row. A malformed numeric token rejects the row.
func (p *Parser) parseLine(line string) (Record, bool) {
	m := p.pattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Record{}, false
	}
	rates := make([]float64, 3)
	for i, s := range m[5:8] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Record{}, false
		}
		rates[i] = v
	}

	return Record{
		ID:     id,
		Done:   m[2],
		Have:   strings.TrimSpace(m[3]),
		ETA:    strings.TrimSpace(m[4]),
		Up:     rates[0],
		Down:   rates[1],
		Ratio:  rates[2],
		Status: strings.TrimSpace(m[8]),
		Name:   strings.TrimSpace(m[9]),
	}, true
}
