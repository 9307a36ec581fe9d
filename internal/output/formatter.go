package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(r *Report) ([]byte, error)
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc struct {
	ID string
	F  func(r *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(r *Report) ([]byte, error) { return f.F(r) }

var formatters = map[string]Formatter{}

var aliases = map[string]string{
	"text":  "console",
	"table": "console",
	"db":    "record",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(CSVFormatter{})
	register(HTMLFormatter{})
	register(PDFFormatter{})
	register(RecordFormatter{})
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for n := range aliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Extension returns the file extension used when a format is written to disk.
func Extension(f Formatter) string {
	switch f.Name() {
	case "console":
		return "txt"
	case "record":
		return "json"
	}
	return f.Name()
}

// WriteFormatted formats r and writes it to an auto-named file in the working
// directory. It returns the file name.
func WriteFormatted(f Formatter, r *Report, ext string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}

	prefix := "dintilhac_"
	if r.CaseID != "" {
		prefix += sanitizeFileName(r.CaseID) + "_"
	}
	filename := fmt.Sprintf("%s%s.%s", prefix, r.GeneratedAt.Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
