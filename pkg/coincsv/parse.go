// Package coincsv loads the coin catalogue from CSV. Malformed content never
// fails the parse as a whole: rows are validated independently and problems
// accumulate as diagnostics alongside the records that could be salvaged.
// The one fatal condition is a header row missing required columns.
package coincsv

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/coinmelt/coinmelt/pkg/coin"
)

const (
	// DefaultMaxFieldLength bounds a single field; excess characters are
	// dropped and one diagnostic emitted per over-long field.
	DefaultMaxFieldLength = 2000

	// DefaultMaxLineLength bounds a single line; longer lines are skipped
	// entirely. Protects against pathological input.
	DefaultMaxLineLength = 10000

	// DefaultMaxDiagnostics caps accumulated diagnostics; once reached, a
	// summary diagnostic is emitted and remaining lines are not evaluated.
	DefaultMaxDiagnostics = 100
)

// requiredHeaders must all be present in the header row. Other columns (e.g.
// numistaUrl) are optional and passed through.
var requiredHeaders = []string{"country", "name", "date", "grossWeight", "purity"}

// Limits are the parser resource limits.
type Limits struct {
	MaxFieldLength int
	MaxLineLength  int
	MaxDiagnostics int
}

func DefaultLimits() Limits {
	return Limits{
		MaxFieldLength: DefaultMaxFieldLength,
		MaxLineLength:  DefaultMaxLineLength,
		MaxDiagnostics: DefaultMaxDiagnostics,
	}
}

// Diagnostic describes one skipped or adjusted input element. Line is the
// 1-based line number in the CSV source, or 0 for file-level problems.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Record is one validated catalogue row.
type Record struct {
	// Line is the 1-based line number in the CSV source.
	Line int

	Coin coin.Coin

	// Extra holds values of columns beyond the known ones, keyed by header.
	Extra map[string]string
}

// Result is the outcome of a parse: the records that validated plus the
// diagnostics for everything that did not.
type Result struct {
	Records     []Record
	Diagnostics []Diagnostic
}

// Coins returns just the validated coins, in file order.
func (r Result) Coins() []coin.Coin {
	coins := make([]coin.Coin, 0, len(r.Records))
	for _, rec := range r.Records {
		coins = append(coins, rec.Coin)
	}
	return coins
}

// Parse parses the catalogue CSV with the default limits.
func Parse(text []byte) Result {
	return ParseWithLimits(text, DefaultLimits())
}

// ParseWithLimits parses the catalogue CSV. It never fails: all problems are
// reported through Result.Diagnostics.
func ParseWithLimits(text []byte, limits Limits) Result {
	p := &parser{limits: limits}
	p.run(string(text))
	return p.result
}

type parser struct {
	limits  Limits
	result  Result
	headers []string
}

func (p *parser) diag(line int, format string, args ...any) {
	p.result.Diagnostics = append(p.result.Diagnostics, Diagnostic{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) run(text string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) < 2 {
		p.diag(0, "CSV file is empty or only contains headers.")
		return
	}

	p.headers = p.parseLine(lines[0], 1)

	var missing []string
	for _, h := range requiredHeaders {
		if !slices.Contains(p.headers, h) {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		// fatal to the whole file: no records, single diagnostic
		p.diag(0, "Missing required headers in CSV: %s. Please check your CSV file.", strings.Join(missing, ", "))
		return
	}

	for i := 1; i < len(lines); i++ {
		if len(p.result.Diagnostics) >= p.limits.MaxDiagnostics {
			p.diag(0, "Too many errors (%d+). Remaining lines skipped.", p.limits.MaxDiagnostics)
			break
		}

		lineNumber := i + 1
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if length := len([]rune(line)); length > p.limits.MaxLineLength {
			p.diag(lineNumber, "Line too long (%d chars, max %d). Possible formatting error. Skipping.", length, p.limits.MaxLineLength)
			continue
		}

		values := p.parseLine(line, lineNumber)
		if len(values) != len(p.headers) {
			p.diag(lineNumber, "Column count mismatch (%d found, %d expected). Skipping this line.", len(values), len(p.headers))
			continue
		}

		if rec, ok := p.validateRow(lineNumber, values); ok {
			p.result.Records = append(p.result.Records, rec)
		}
	}
}

// parseLine tokenizes a single line into fields. A double quote toggles
// quote mode; a doubled quote inside quote mode emits one literal quote.
// Commas outside quote mode end the field. Fields are trimmed and truncated
// at the field length limit with one diagnostic per over-long field.
func (p *parser) parseLine(line string, lineNumber int) []string {
	var result []string
	var current []rune
	inQuotes := false
	fieldTruncated := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current = append(current, '"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(string(current)))
			current = current[:0]
			fieldTruncated = false
		default:
			if len(current) < p.limits.MaxFieldLength {
				current = append(current, ch)
			} else if !fieldTruncated {
				p.diag(lineNumber, "Field exceeded max length (%d chars). Field truncated.", p.limits.MaxFieldLength)
				fieldTruncated = true
			}
			// excess characters are silently dropped once reported
		}
	}
	result = append(result, strings.TrimSpace(string(current)))
	return result
}

// validateRow coerces and validates one tokenized row. The first failure
// drops the row with one diagnostic; an invalid URL only clears the field.
func (p *parser) validateRow(lineNumber int, values []string) (Record, bool) {
	row := make(map[string]string, len(p.headers))
	for i, h := range p.headers {
		row[h] = values[i]
	}

	c := coin.Coin{
		Country: row["country"],
		Name:    row["name"],
		Date:    row["date"],
	}

	grossWeight, err := strconv.ParseFloat(row["grossWeight"], 64)
	if err != nil || !isFinite(grossWeight) || grossWeight <= 0 {
		p.diag(lineNumber, "Invalid gross weight %q for %q. Must be a positive number. Skipping.", row["grossWeight"], c.Name)
		return Record{}, false
	}
	c.GrossWeight = grossWeight

	purity, err := strconv.ParseFloat(row["purity"], 64)
	if err != nil || !isFinite(purity) || purity <= 0 || purity > 1000 {
		p.diag(lineNumber, "Invalid purity %q for %q. Must be between 1 and 1000. Skipping.", row["purity"], c.Name)
		return Record{}, false
	}
	c.Purity = purity

	if raw := strings.TrimSpace(row["numistaUrl"]); raw != "" {
		u, err := url.Parse(raw)
		switch {
		case err != nil:
			p.diag(lineNumber, "Malformed URL for %q. URL will be ignored.", c.Name)
		case u.Scheme != "http" && u.Scheme != "https":
			p.diag(lineNumber, "Invalid URL protocol for %q. Only http/https allowed. URL will be ignored.", c.Name)
		default:
			c.NumistaURL = raw
		}
		// URL problems are never fatal to the row
	}

	rec := Record{Line: lineNumber, Coin: c}
	for h, v := range row {
		if !isKnownHeader(h) {
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[h] = v
		}
	}
	return rec, true
}

func isKnownHeader(h string) bool {
	return h == "numistaUrl" || slices.Contains(requiredHeaders, h)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
