package extract

import (
	"regexp"
	"strings"
)

// Credit reports list one numbered entry per loan: "N. <bank> - <deal type>".
// Entries are split on these headers; everything between two headers belongs
// to the first one.
var headerRe = regexp.MustCompile(`(?mi)^\s*\d+\.\s+.+?\s+-\s+(?:Договор\s+займа\s*\(кредита\)|Поручительство\s+по\s+займу\s*\(кредиту\)|Потребит\.\s*кредит|Кредитная\s+карта|Микрокредит)`)

// noiseRe matches candidates that carry no loan facts: bare page numbers and
// page-footer leftovers.
var noiseRe = regexp.MustCompile(`^(?:\d+|[Сс]траница\s+\d+(?:\s+из\s+\d+)?)$`)

var spaceRe = regexp.MustCompile(`\s+`)

// SplitterConfig controls paragraph candidate selection.
type SplitterConfig struct {
	// MinLen drops fragments too short to describe a loan. Default 100.
	MinLen int
	// HeaderMarker / FooterMarker are optional boundary markers: page text
	// before the first header match and after the last footer match is a
	// running header/footer and is stripped.
	HeaderMarker string
	FooterMarker string
}

// Splitter turns raw page text into loan-entry paragraph candidates.
// It is pure: identical input yields the identical candidate sequence.
// Deduplication across overlapping runs is the store's job, not ours.
type Splitter struct {
	cfg SplitterConfig
}

func NewSplitter(cfg SplitterConfig) *Splitter {
	if cfg.MinLen <= 0 {
		cfg.MinLen = 100
	}
	return &Splitter{cfg: cfg}
}

// SplitPage returns the loan-entry paragraphs of one page, in page order.
// No cross-page merging: an entry truncated by a page break yields what the
// page holds.
func (s *Splitter) SplitPage(text string) []string {
	text = s.trimBoundaries(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	headers := headerRe.FindAllStringIndex(text, -1)
	if len(headers) == 0 {
		return nil
	}

	out := make([]string, 0, len(headers))
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		candidate := Normalize(text[h[0]:end])
		if len([]rune(candidate)) < s.cfg.MinLen {
			continue
		}
		if noiseRe.MatchString(candidate) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func (s *Splitter) trimBoundaries(text string) string {
	if m := s.cfg.HeaderMarker; m != "" {
		if idx := strings.Index(text, m); idx >= 0 {
			text = text[idx+len(m):]
		}
	}
	if m := s.cfg.FooterMarker; m != "" {
		if idx := strings.LastIndex(text, m); idx >= 0 {
			text = text[:idx]
		}
	}
	return text
}

// Normalize collapses all whitespace runs to single spaces and trims the
// result. Fingerprinting depends on this being stable.
func Normalize(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
