// Package numbering formats and parses sequential document numbers such as
// INV-2025-00042 and JOB-000017.
package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// Policy decides what happens when the last stored number cannot be parsed.
type Policy string

const (
	// PolicyReset restarts the sequence at 1.
	PolicyReset Policy = "reset"
	// PolicyStrict refuses to guess and returns ErrMalformed.
	PolicyStrict Policy = "strict"
)

// ErrMalformed is returned under PolicyStrict for an unparseable last number.
var ErrMalformed = domain.ErrMalformedDocumentNumber

const (
	seqWidth    = 5
	jobSeqWidth = 6
)

// ParsePolicy validates a configured policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyReset, "":
		return PolicyReset, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown numbering policy %q", s)
	}
}

// Format builds PREFIX-YEAR-NNNNN.
func Format(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, seqWidth, seq)
}

// FormatJob builds JOB-NNNNNN.
func FormatJob(seq int) string {
	return fmt.Sprintf("JOB-%0*d", jobSeqWidth, seq)
}

// Parse splits PREFIX-YEAR-NNNNN. ok is false for any other shape.
func Parse(number string) (prefix string, year, seq int, ok bool) {
	parts := strings.Split(strings.TrimSpace(number), "-")
	if len(parts) != 3 || parts[0] == "" {
		return "", 0, 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil || y <= 0 {
		return "", 0, 0, false
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s < 0 {
		return "", 0, 0, false
	}
	return parts[0], y, s, true
}

// LastSequence extracts the sequence to continue from for the given prefix and
// year. A blank last number yields 0. A number for another prefix or year also
// yields 0 since those belong to a different series.
func LastSequence(last, prefix string, year int, policy Policy) (int, error) {
	if strings.TrimSpace(last) == "" {
		return 0, nil
	}
	p, y, s, ok := Parse(last)
	if !ok {
		if policy == PolicyStrict {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, last)
		}
		return 0, nil
	}
	if p != prefix || y != year {
		return 0, nil
	}
	return s, nil
}

// Next returns the number following last.
func Next(last, prefix string, year int, policy Policy) (string, error) {
	seq, err := LastSequence(last, prefix, year, policy)
	if err != nil {
		return "", err
	}
	return Format(prefix, year, seq+1), nil
}

// LastJobSequence extracts the sequence of a JOB-NNNNNN number. Blank or
// malformed input follows the same policy rules as LastSequence.
func LastJobSequence(last string, policy Policy) (int, error) {
	last = strings.TrimSpace(last)
	if last == "" {
		return 0, nil
	}
	rest, found := strings.CutPrefix(last, "JOB-")
	s, err := strconv.Atoi(rest)
	if !found || err != nil || s < 0 {
		if policy == PolicyStrict {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, last)
		}
		return 0, nil
	}
	return s, nil
}
