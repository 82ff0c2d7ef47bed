package ua

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Common identifier errors
var (
	ErrMalformedNodeID = errors.New("malformed node id")
	ErrMalformedGUID   = errors.New("malformed guid")
)

// IDType discriminates the identifier variant of a NodeID.
type IDType uint8

const (
	IDTypeNumeric IDType = iota
	IDTypeString
	IDTypeGUID
	IDTypeOpaque
)

// String returns a human-readable name for the identifier type.
func (t IDType) String() string {
	switch t {
	case IDTypeNumeric:
		return "Numeric"
	case IDTypeString:
		return "String"
	case IDTypeGUID:
		return "GUID"
	case IDTypeOpaque:
		return "Opaque"
	default:
		return fmt.Sprintf("IDType(%d)", uint8(t))
	}
}

// NodeID identifies a node within a server's address space. It is a
// namespace index plus one of four identifier variants. The zero value
// is the null NodeID (ns=0, i=0).
//
// NodeID is comparable and can be used directly as a map key. Opaque
// identifiers are stored as strings so the struct stays comparable.
type NodeID struct {
	Namespace uint16
	Type      IDType
	Numeric   uint32
	Text      string
	GUID      uuid.UUID
	Opaque    string
}

// NewNumericNodeID makes a NodeID with a numeric identifier.
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{Namespace: ns, Type: IDTypeNumeric, Numeric: id}
}

// NewStringNodeID makes a NodeID with a string identifier.
func NewStringNodeID(ns uint16, id string) NodeID {
	return NodeID{Namespace: ns, Type: IDTypeString, Text: id}
}

// NewGUIDNodeID makes a NodeID with a GUID identifier.
func NewGUIDNodeID(ns uint16, id uuid.UUID) NodeID {
	return NodeID{Namespace: ns, Type: IDTypeGUID, GUID: id}
}

// NewOpaqueNodeID makes a NodeID with an opaque byte-sequence identifier.
func NewOpaqueNodeID(ns uint16, id []byte) NodeID {
	return NodeID{Namespace: ns, Type: IDTypeOpaque, Opaque: string(id)}
}

// IsNull reports whether the NodeID is the null identifier.
func (n NodeID) IsNull() bool {
	switch n.Type {
	case IDTypeNumeric:
		return n.Namespace == 0 && n.Numeric == 0
	case IDTypeString:
		return n.Text == ""
	case IDTypeGUID:
		return n.GUID == uuid.Nil
	case IDTypeOpaque:
		return n.Opaque == ""
	}
	return true
}

// WithNamespace returns a copy of the NodeID with the namespace index
// replaced. Used when translating document-local indices to the shared
// namespace table.
func (n NodeID) WithNamespace(ns uint16) NodeID {
	n.Namespace = ns
	return n
}

// String returns the standard text form, e.g. "i=85" or "ns=2;s=Motor".
func (n NodeID) String() string {
	var id string
	switch n.Type {
	case IDTypeNumeric:
		id = fmt.Sprintf("i=%d", n.Numeric)
	case IDTypeString:
		id = fmt.Sprintf("s=%s", n.Text)
	case IDTypeGUID:
		id = fmt.Sprintf("g=%s", n.GUID)
	case IDTypeOpaque:
		id = fmt.Sprintf("b=%s", base64.StdEncoding.EncodeToString([]byte(n.Opaque)))
	}
	if n.Namespace == 0 {
		return id
	}
	return fmt.Sprintf("ns=%d;%s", n.Namespace, id)
}

// MarshalText implements encoding.TextMarshaler.
func (n NodeID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Compare orders NodeIDs by namespace, identifier type, then identifier
// value. Returns -1, 0 or +1.
func (n NodeID) Compare(other NodeID) int {
	if n.Namespace != other.Namespace {
		if n.Namespace < other.Namespace {
			return -1
		}
		return 1
	}
	if n.Type != other.Type {
		if n.Type < other.Type {
			return -1
		}
		return 1
	}
	switch n.Type {
	case IDTypeNumeric:
		if n.Numeric != other.Numeric {
			if n.Numeric < other.Numeric {
				return -1
			}
			return 1
		}
	case IDTypeString:
		return strings.Compare(n.Text, other.Text)
	case IDTypeGUID:
		return strings.Compare(n.GUID.String(), other.GUID.String())
	case IDTypeOpaque:
		return strings.Compare(n.Opaque, other.Opaque)
	}
	return 0
}

// ParseNodeID parses the standard text form of a NodeID:
//   - "i=85" (numeric, ns=0 assumed)
//   - "ns=2;s=Demo.Static.Scalar.Float" (string)
//   - "ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c" (GUID)
//   - "ns=2;b=YWJjZA==" (opaque, base64)
func ParseNodeID(s string) (NodeID, error) {
	orig := s
	var ns uint16
	if strings.HasPrefix(s, "ns=") {
		pos := strings.Index(s, ";")
		if pos == -1 {
			return NodeID{}, fmt.Errorf("%w: %q missing identifier after namespace", ErrMalformedNodeID, orig)
		}
		v, err := strconv.ParseUint(s[3:pos], 10, 16)
		if err != nil {
			return NodeID{}, fmt.Errorf("%w: %q has invalid namespace index", ErrMalformedNodeID, orig)
		}
		ns = uint16(v)
		s = s[pos+1:]
	}
	switch {
	case strings.HasPrefix(s, "i="):
		id, err := strconv.ParseUint(s[2:], 10, 32)
		if err != nil {
			return NodeID{}, fmt.Errorf("%w: %q has invalid numeric identifier", ErrMalformedNodeID, orig)
		}
		return NewNumericNodeID(ns, uint32(id)), nil
	case strings.HasPrefix(s, "s="):
		return NewStringNodeID(ns, s[2:]), nil
	case strings.HasPrefix(s, "g="):
		id, err := uuid.Parse(s[2:])
		if err != nil {
			return NodeID{}, fmt.Errorf("%w: %q: %v", ErrMalformedGUID, orig, err)
		}
		return NewGUIDNodeID(ns, id), nil
	case strings.HasPrefix(s, "b="):
		id, err := base64.StdEncoding.DecodeString(s[2:])
		if err != nil {
			return NodeID{}, fmt.Errorf("%w: %q has invalid base64 identifier", ErrMalformedNodeID, orig)
		}
		return NewOpaqueNodeID(ns, id), nil
	}
	return NodeID{}, fmt.Errorf("%w: %q", ErrMalformedNodeID, orig)
}

// MustParseNodeID parses a NodeID and panics on failure. For use with
// compile-time constant inputs only.
func MustParseNodeID(s string) NodeID {
	n, err := ParseNodeID(s)
	if err != nil {
		panic(err)
	}
	return n
}
