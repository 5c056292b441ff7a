package adapters

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// ChangelogFilename is the changelog catkin packages keep next to
// package.xml.
const ChangelogFilename = "CHANGELOG.rst"

var (
	versionHeadingPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+\S*)\s+\(([^)]+)\)\s*$`)
	underlinePattern      = regexp.MustCompile(`^[-=~^"'` + "`" + `#*+.:_]{3,}\s*$`)
	bulletPattern         = regexp.MustCompile(`^[*+-]\s+`)
)

type ChangelogRSTAdapter struct{}

func NewChangelogRSTAdapter() ChangelogRSTAdapter {
	return ChangelogRSTAdapter{}
}

// Load parses the version sections of a CHANGELOG.rst. A missing file is
// not an error and yields no entries.
func (a ChangelogRSTAdapter) Load(path string) ([]types.ChangelogEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read changelog").
			WithCause(err)
	}
	entries, err := parseChangelog(content)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse changelog %s", path)).
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("versions", len(entries)).Msg("changelog loaded")
	return entries, nil
}

func parseChangelog(content []byte) ([]types.ChangelogEntry, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var entries []types.ChangelogEntry
	var current *types.ChangelogEntry
	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if isSectionHeading(lines, i) {
			flush()
			match := versionHeadingPattern.FindStringSubmatch(strings.TrimSpace(line))
			i++
			if match == nil {
				// Forthcoming and other non-release sections are skipped.
				continue
			}
			date := parseTimeFlexible(match[2])
			if date.IsZero() {
				return nil, fmt.Errorf("version %s has unparseable date %q", match[1], match[2])
			}
			current = &types.ChangelogEntry{Version: match[1], Date: date}
			continue
		}
		if current == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case bulletPattern.MatchString(trimmed) && !strings.HasPrefix(line, " "):
			current.Changes = append(current.Changes, bulletPattern.ReplaceAllString(trimmed, ""))
		case len(current.Changes) > 0 && strings.HasPrefix(line, " "):
			last := len(current.Changes) - 1
			current.Changes[last] += "\n" + trimmed
		default:
			current.Changes = append(current.Changes, trimmed)
		}
	}
	flush()
	return entries, nil
}

// isSectionHeading reports whether lines[i] is a title underlined by
// lines[i+1].
func isSectionHeading(lines []string, i int) bool {
	if i+1 >= len(lines) || strings.TrimSpace(lines[i]) == "" {
		return false
	}
	if underlinePattern.MatchString(lines[i]) {
		return false
	}
	return underlinePattern.MatchString(lines[i+1])
}

var _ ports.ChangelogPort = ChangelogRSTAdapter{}
