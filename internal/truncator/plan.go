package truncator

import (
	"strings"

	"trimlines/internal/textfile"
)

// Plan is the read side of a truncation: the decoded lines of a file and
// the limit that will be applied to them.
type Plan struct {
	Encoding string
	Limit    int
	Lines    []string
	Size     int
}

// NewPlan decodes data and splits it into lines.
func NewPlan(data []byte, encoding string, limit int) (*Plan, error) {
	text, err := textfile.Decode(data, encoding)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Encoding: encoding,
		Limit:    limit,
		Lines:    textfile.SplitLines(text),
		Size:     len(data),
	}, nil
}

// Keep is the number of lines that survive, min(len(Lines), Limit).
func (p *Plan) Keep() int {
	return max(0, min(len(p.Lines), p.Limit))
}

func (p *Plan) Retained() []string {
	return p.Lines[:p.Keep()]
}

func (p *Plan) Discarded() []string {
	return p.Lines[p.Keep():]
}

// Truncates reports whether applying the plan changes the file.
func (p *Plan) Truncates() bool {
	return len(p.Lines) > p.Limit
}

// RetainedText is the prefix that will be written back.
func (p *Plan) RetainedText() string {
	return strings.Join(p.Retained(), "")
}

func (p *Plan) DiscardedText() string {
	return strings.Join(p.Discarded(), "")
}
