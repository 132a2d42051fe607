package parsers

import (
	"bufio"
	"io"
	"strings"
	"time"

	logpkg "github.com/haukened/bindgate/internal/gen/common/log"
	"github.com/haukened/bindgate/internal/gen/domain"
)

// ParsePlainList parses a newline-delimited overlay denylist into DenyRule
// values. Each line names one rule:
//
//	Class::Member [reason]    exact pair
//	Class [reason]            class-wide
//
// The optional reason token uses the domain.Reason spellings
// (e.g. "undefined-symbol"); omitted reasons fall back to defaultReason.
//
// Behavior:
// - Supports comments starting with '#' (inline or whole-line)
// - Trims surrounding whitespace and strips a leading BOM
// - Skips empty lines after trimming/stripping comments
// - Skips malformed lines with a warning instead of failing the load
// - De-duplicates by rule key while preserving first-seen order
// - Each rule is attributed to the provided source and timestamped with now
func ParsePlainList(r io.Reader, source string, defaultReason domain.Reason, logger logpkg.Logger, now time.Time) ([]domain.DenyRule, error) {
	scanner := bufio.NewScanner(r)

	seen := make(map[string]struct{})
	out := make([]domain.DenyRule, 0, 64)
	logger.Debug(map[string]any{"source": source}, "parse_plain_list_start")
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		line = strings.TrimPrefix(line, "\uFEFF")

		// Detect empty or full-line comment before stripping inline comments
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Strip inline comments
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			logger.Warn(map[string]any{"source": source, "line": lineNum}, "skip_malformed_rule")
			continue
		}

		reason := defaultReason
		if len(fields) == 2 {
			parsed, err := domain.ParseReason(fields[1])
			if err != nil {
				logger.Warn(map[string]any{
					"source": source,
					"line":   lineNum,
					"reason": fields[1],
				}, "skip_unknown_reason")
				continue
			}
			reason = parsed
		}

		class, member, isPair := splitMemberRef(fields[0])
		if !isValidName(class) || (isPair && !isValidName(member)) {
			logger.Warn(map[string]any{"source": source, "line": lineNum}, "skip_malformed_rule")
			continue
		}

		var (
			rule domain.DenyRule
			err  error
		)
		if isPair {
			rule, err = domain.NewPairDenyRule(class, member, reason, source, now)
		} else {
			rule, err = domain.NewClassDenyRule(class, reason, source, now)
		}
		if err != nil {
			logger.Warn(map[string]any{
				"source": source,
				"line":   lineNum,
				"error":  err,
			}, "skip_invalid_rule")
			continue
		}

		if _, dup := seen[rule.Key()]; dup {
			continue
		}
		seen[rule.Key()] = struct{}{}
		out = append(out, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logger.Debug(map[string]any{"source": source, "rules": len(out)}, "parse_plain_list_done")
	return out, nil
}
