package caption

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cue is a single timed caption line
type Cue struct {
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	Text  string        `json:"text"`
}

// CueSet is an ordered, immutable set of cues
type CueSet struct {
	cues []Cue
}

// Cues returns a copy of the cues
func (s CueSet) Cues() []Cue {
	res := make([]Cue, len(s.cues))
	copy(res, s.cues)
	return res
}

// Len returns the number of cues
func (s CueSet) Len() int { return len(s.cues) }

// Block renders the set back into raw cue block form
func (s CueSet) Block() string {
	parts := make([]string, 0, len(s.cues))
	for _, c := range s.cues {
		parts = append(parts, formatTimestamp(c.Start)+" --> "+formatTimestamp(c.End)+"\n"+c.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Track builds the subtitle resource for the set
func (s CueSet) Track() Track {
	return Build(s.Block())
}

// Parse reads a raw cue block. A leading WEBVTT header block and cue identifiers are skipped.
func Parse(raw string) (CueSet, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var cues []Cue
	for i, block := range strings.Split(strings.TrimSpace(raw), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" || (i == 0 && strings.HasPrefix(block, header)) {
			continue
		}
		lines := strings.Split(block, "\n")
		timing := -1
		for j, line := range lines {
			if strings.Contains(line, "-->") {
				timing = j
				break
			}
		}
		if timing < 0 {
			return CueSet{}, fmt.Errorf("cue %d: missing timing line", len(cues)+1)
		}
		start, end, err := parseTiming(lines[timing])
		if err != nil {
			return CueSet{}, fmt.Errorf("cue %d: %w", len(cues)+1, err)
		}
		cues = append(cues, Cue{Start: start, End: end, Text: strings.Join(lines[timing+1:], "\n")})
	}
	return CueSet{cues: cues}, nil
}

func parseTiming(line string) (start, end time.Duration, err error) {
	parts := strings.SplitN(line, "-->", 2)
	if start, err = parseTimestamp(parts[0]); err != nil {
		return 0, 0, err
	}
	// cue settings may follow the end timestamp
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("missing end timestamp")
	}
	if end, err = parseTimestamp(fields[0]); err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("end %s before start %s", fields[0], strings.TrimSpace(parts[0]))
	}
	return start, end, nil
}

// parseTimestamp accepts mm:ss.mmm and hh:mm:ss.mmm
func parseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	secPart, msPart, ok := strings.Cut(value, ".")
	if !ok || len(msPart) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	fields := strings.Split(secPart, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if len(fields) == 2 {
		fields = append([]string{"0"}, fields...)
	}
	hours, errH := strconv.Atoi(fields[0])
	minutes, errM := strconv.Atoi(fields[1])
	seconds, errS := strconv.Atoi(fields[2])
	millis, errMS := strconv.Atoi(msPart)
	if errH != nil || errM != nil || errS != nil || errMS != nil || minutes > 59 || seconds > 59 ||
		hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second + time.Duration(millis)*time.Millisecond, nil
}

func formatTimestamp(d time.Duration) string {
	ms := d.Milliseconds()
	h, ms := ms/3600000, ms%3600000
	m, ms := ms/60000, ms%60000
	s, ms := ms/1000, ms%1000
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
	}
	return fmt.Sprintf("%02d:%02d.%03d", m, s, ms)
}
