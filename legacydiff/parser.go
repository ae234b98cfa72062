// Package legacydiff parses context-style diffs produced by legacy diff
// tools and reconciles their fragments into two-column rows.
package legacydiff

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Header tokens, matched bit-exactly after left-trimming the line.
const (
	fragmentToken = "*************** "
	leftPrefix    = "*** "
	leftSuffix    = " ***"
	rightPrefix   = "--- "
	rightSuffix   = " ---"
)

// Fragment is one contiguous aligned region of a legacy diff. The line
// slices keep the original marker character ('!', '+', '-' or space) in
// their first column.
type Fragment struct {
	Header     string
	LeftStart  int // 1-based starting line on the old side, -1 until seen
	RightStart int // 1-based starting line on the new side, -1 until seen
	LeftLines  []string
	RightLines []string
}

// Diff is an ordered sequence of fragments, in header order.
type Diff struct {
	Fragments []Fragment
}

// MalformedError reports structurally invalid diff input.
type MalformedError struct {
	LineNum int // 1-based line number in the input
	Reason  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("legacydiff: malformed diff at line %d: %s", e.LineNum, e.Reason)
}

// Parser states. Content lines are only legal once a side header has
// selected a side; the transition table makes the malformed cases explicit.
type state int

const (
	stateNoFragment state = iota
	stateHeaderSeen
	stateInLeft
	stateInRight
)

type event int

const (
	eventFragmentHeader event = iota
	eventLeftHeader
	eventRightHeader
	eventContent
)

// transitions maps (state, event) to the next state. A missing entry means
// the input is malformed.
var transitions = map[state]map[event]state{
	stateNoFragment: {
		eventFragmentHeader: stateHeaderSeen,
	},
	stateHeaderSeen: {
		eventFragmentHeader: stateHeaderSeen,
		eventLeftHeader:     stateInLeft,
		eventRightHeader:    stateInRight,
	},
	stateInLeft: {
		eventFragmentHeader: stateHeaderSeen,
		eventLeftHeader:     stateInLeft,
		eventRightHeader:    stateInRight,
		eventContent:        stateInLeft,
	},
	stateInRight: {
		eventFragmentHeader: stateHeaderSeen,
		eventLeftHeader:     stateInLeft,
		eventRightHeader:    stateInRight,
		eventContent:        stateInRight,
	},
}

func classify(trimmed string) event {
	switch {
	case strings.HasPrefix(trimmed, fragmentToken):
		return eventFragmentHeader
	case strings.HasPrefix(trimmed, "***"):
		return eventLeftHeader
	case strings.HasPrefix(trimmed, "---"):
		return eventRightHeader
	default:
		return eventContent
	}
}

// Parse converts legacy diff text into a structured Diff in a single pass.
// It returns a *MalformedError when content appears before a fragment
// header, before a side header, or when a side header carries no parsable
// line number.
func Parse(input string) (*Diff, error) {
	d := &Diff{}
	st := stateNoFragment
	offset := 0

	for i, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		ev := classify(trimmed)

		next, ok := transitions[st][ev]
		if !ok {
			return nil, &MalformedError{LineNum: i + 1, Reason: reason(st)}
		}

		switch ev {
		case eventFragmentHeader:
			d.Fragments = append(d.Fragments, Fragment{
				Header:     trimmed[len(fragmentToken):],
				LeftStart:  -1,
				RightStart: -1,
			})

		case eventLeftHeader:
			start, err := headerStart(trimmed, leftPrefix, leftSuffix)
			if err != nil {
				return nil, &MalformedError{LineNum: i + 1, Reason: err.Error()}
			}
			d.Fragments[len(d.Fragments)-1].LeftStart = start
			// The two historical diff tools indent their sides differently,
			// so the slicing offset is recomputed at every side header.
			offset = len(line) - len(trimmed)

		case eventRightHeader:
			start, err := headerStart(trimmed, rightPrefix, rightSuffix)
			if err != nil {
				return nil, &MalformedError{LineNum: i + 1, Reason: err.Error()}
			}
			d.Fragments[len(d.Fragments)-1].RightStart = start
			offset = len(line) - len(trimmed)

		case eventContent:
			frag := &d.Fragments[len(d.Fragments)-1]
			var content string
			if offset < len(line) {
				content = line[offset:]
			}
			if st == stateInLeft {
				frag.LeftLines = append(frag.LeftLines, content)
			} else {
				frag.RightLines = append(frag.RightLines, content)
			}
		}

		st = next
	}

	return d, nil
}

// headerStart extracts the starting line number from a side header such as
// "*** 1665,1666 ***": the first integer before the comma between the
// prefix and the suffix.
func headerStart(trimmed, prefix, suffix string) (int, error) {
	body := strings.TrimPrefix(trimmed, prefix)
	body = strings.TrimSuffix(body, suffix)
	first, _, _ := strings.Cut(body, ",")

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, fmt.Errorf("unparsable line number in side header %q", trimmed)
	}
	return start, nil
}

func reason(st state) string {
	if st == stateNoFragment {
		return "line before any fragment header"
	}
	return "side content before any side header"
}
