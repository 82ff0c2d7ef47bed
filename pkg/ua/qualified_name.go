package ua

import (
	"fmt"
	"strconv"
	"strings"
)

// QualifiedName is a namespace-qualified name, used for BrowseName.
type QualifiedName struct {
	Namespace uint16
	Name      string
}

// NewQualifiedName makes a QualifiedName.
func NewQualifiedName(ns uint16, name string) QualifiedName {
	return QualifiedName{Namespace: ns, Name: name}
}

// String returns the standard text form, e.g. "2:Motor" or "Motor" for
// namespace 0.
func (q QualifiedName) String() string {
	if q.Namespace == 0 {
		return q.Name
	}
	return fmt.Sprintf("%d:%s", q.Namespace, q.Name)
}

// IsEmpty reports whether the name is empty.
func (q QualifiedName) IsEmpty() bool {
	return q.Name == ""
}

// ParseQualifiedName parses the standard text form "ns:name". A missing
// or non-numeric prefix means namespace 0; OPC UA browse names may
// legitimately contain colons, so an unparseable prefix is treated as
// part of the name rather than rejected.
func ParseQualifiedName(s string) QualifiedName {
	pos := strings.Index(s, ":")
	if pos == -1 {
		return QualifiedName{Name: s}
	}
	ns, err := strconv.ParseUint(s[:pos], 10, 16)
	if err != nil {
		return QualifiedName{Name: s}
	}
	return QualifiedName{Namespace: uint16(ns), Name: s[pos+1:]}
}

// LocalizedText is a human-readable string with an optional locale,
// used for DisplayName, Description and InverseName attributes.
type LocalizedText struct {
	Locale string
	Text   string
}

// NewLocalizedText makes a LocalizedText with an empty locale.
func NewLocalizedText(text string) LocalizedText {
	return LocalizedText{Text: text}
}

// String returns the text part.
func (l LocalizedText) String() string {
	return l.Text
}

// IsEmpty reports whether both locale and text are empty.
func (l LocalizedText) IsEmpty() bool {
	return l.Locale == "" && l.Text == ""
}
