package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

const maxRegexLineBytes = 16 * 1024 * 1024

// RegexSource loads regexes under test.
type RegexSource interface {
	Load(ctx context.Context, path string) ([]m.Regex, error)
}

// NDJSONRegexSource reads one regex object per line.
type NDJSONRegexSource struct{}

// NewNDJSONRegexSource constructs an NDJSONRegexSource.
func NewNDJSONRegexSource() *NDJSONRegexSource {
	return &NDJSONRegexSource{}
}

type regexLine struct {
	Pattern    *string            `json:"pattern"`
	Nick       string             `json:"nick"`
	EvilInputs []m.AttackTemplate `json:"evilInputs"`
	EvilInput  *m.AttackTemplate  `json:"evilInput"`
}

// Load reads the file at path. Malformed lines are logged and skipped.
func (s *NDJSONRegexSource) Load(ctx context.Context, path string) ([]m.Regex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open regex file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close regex file", "path", path, "error", err)
		}
	}()

	regexes, err := ReadRegexes(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Info("loaded regexes", "path", path, "count", len(regexes))

	return regexes, nil
}

// ReadRegexes decodes NDJSON regex lines from r.
func ReadRegexes(ctx context.Context, r io.Reader) ([]m.Regex, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRegexLineBytes)

	var regexes []m.Regex

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return regexes, err
		}

		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		regex, err := parseRegexLine(line)
		if err != nil {
			slog.Warn("skipping malformed regex line", "line", lineNo, "error", err)
			continue
		}

		regexes = append(regexes, regex)
	}

	if err := scanner.Err(); err != nil {
		return regexes, err
	}

	return regexes, nil
}

func parseRegexLine(line string) (m.Regex, error) {
	var raw regexLine
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return m.Regex{}, err
	}

	if raw.Pattern == nil {
		return m.Regex{}, errors.New("missing pattern")
	}

	templates := raw.EvilInputs
	if raw.EvilInput != nil {
		templates = append(templates, *raw.EvilInput)
	}

	return m.Regex{
		Pattern:   *raw.Pattern,
		Nick:      raw.Nick,
		Templates: templates,
	}, nil
}
