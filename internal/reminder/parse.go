package reminder

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InputLayout is the only accepted format of the modal timestamp field.
const InputLayout = "2006-01-02 15:04"

var (
	ErrInvalidTimestamp = errors.New("timestamp must look like YYYY-MM-DD HH:MM")
	ErrInPast           = errors.New("timestamp is not in the future")
)

// Parser turns the modal timestamp into an absolute fire time. The input is
// read as wall-clock time in Location, then Offset is added.
type Parser struct {
	Location *time.Location
	Offset   time.Duration
	Now      func() time.Time
}

func NewParser(loc *time.Location, offset time.Duration) *Parser {
	return &Parser{Location: loc, Offset: offset, Now: time.Now}
}

func (p *Parser) Parse(input string) (time.Time, error) {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(InputLayout, strings.TrimSpace(input), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, input)
	}
	t = t.Add(p.Offset)

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	if !t.After(now()) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInPast, t.Format(time.RFC3339))
	}
	return t, nil
}
