package domain

import (
	"bytes"
	"strings"
)

const maskedValue = "********"

type ConfigEntry struct {
	Key       string
	Value     string
	Sensitive bool
}

// String renders the entry as a key=value line, masking sensitive values.
func (e ConfigEntry) String() string {
	if e.Sensitive {
		return e.Key + "=" + maskedValue
	}
	return e.Key + "=" + e.Value
}

type ConfigSection struct {
	Title   string
	Entries []ConfigEntry
}

// ConfigFile is always written whole; there is no merge with a previous file.
type ConfigFile struct {
	Header   []string
	Sections []ConfigSection
}

func (f ConfigFile) Entries() []ConfigEntry {
	entries := make([]ConfigEntry, 0)
	for _, section := range f.Sections {
		entries = append(entries, section.Entries...)
	}
	return entries
}

// Render produces the full file content. Output is deterministic for a given ConfigFile.
func (f ConfigFile) Render() []byte {
	var buf bytes.Buffer
	for _, line := range f.Header {
		buf.WriteString("# ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	for _, section := range f.Sections {
		buf.WriteByte('\n')
		buf.WriteString("# ")
		buf.WriteString(section.Title)
		buf.WriteByte('\n')
		for _, entry := range section.Entries {
			buf.WriteString(entry.Key)
			buf.WriteByte('=')
			buf.WriteString(entry.Value)
			buf.WriteByte('\n')
		}
	}

	return buf.Bytes()
}

// IsAffirmative reports whether an operator answer explicitly confirms.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
