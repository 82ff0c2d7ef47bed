package nodes

import (
	"strconv"
	"strings"
)

// AttrKind is the value kind of a class-specific attribute.
type AttrKind uint8

const (
	AttrBool AttrKind = iota
	AttrInt32
	AttrUint8
	AttrUint32
	AttrFloat64
	AttrNodeID
	AttrDims
	AttrText
)

// AttrDescriptor declares one class-specific attribute: its NodeSet
// attribute name, its value kind and its textual default. The table is
// the single source of truth for defaults; both the builders and the
// import pipeline's attribute parser consult it instead of hard-coding
// per-call-site values.
type AttrDescriptor struct {
	Name    string
	Kind    AttrKind
	Default string
}

var attrTable = map[NodeClass][]AttrDescriptor{
	ClassObject: {
		{Name: "EventNotifier", Kind: AttrUint8, Default: "0"},
	},
	ClassVariable: {
		{Name: "DataType", Kind: AttrNodeID, Default: "i=24"},
		{Name: "ValueRank", Kind: AttrInt32, Default: "-1"},
		{Name: "ArrayDimensions", Kind: AttrDims, Default: ""},
		{Name: "AccessLevel", Kind: AttrUint8, Default: "1"},
		{Name: "UserAccessLevel", Kind: AttrUint8, Default: "1"},
		{Name: "MinimumSamplingInterval", Kind: AttrFloat64, Default: "0"},
		{Name: "Historizing", Kind: AttrBool, Default: "false"},
	},
	ClassMethod: {
		{Name: "Executable", Kind: AttrBool, Default: "true"},
		{Name: "UserExecutable", Kind: AttrBool, Default: "true"},
	},
	ClassObjectType: {
		{Name: "IsAbstract", Kind: AttrBool, Default: "false"},
	},
	ClassVariableType: {
		{Name: "DataType", Kind: AttrNodeID, Default: "i=24"},
		{Name: "ValueRank", Kind: AttrInt32, Default: "-1"},
		{Name: "ArrayDimensions", Kind: AttrDims, Default: ""},
		{Name: "IsAbstract", Kind: AttrBool, Default: "false"},
	},
	ClassReferenceType: {
		{Name: "IsAbstract", Kind: AttrBool, Default: "false"},
		{Name: "Symmetric", Kind: AttrBool, Default: "false"},
		{Name: "InverseName", Kind: AttrText, Default: ""},
	},
	ClassDataType: {
		{Name: "IsAbstract", Kind: AttrBool, Default: "false"},
	},
	ClassView: {
		{Name: "ContainsNoLoops", Kind: AttrBool, Default: "false"},
		{Name: "EventNotifier", Kind: AttrUint8, Default: "0"},
	},
}

// Descriptors returns the class-specific attribute descriptors for a
// node class.
func Descriptors(class NodeClass) []AttrDescriptor {
	return attrTable[class]
}

// DefaultFor returns the textual default of a class-specific attribute.
func DefaultFor(class NodeClass, name string) (string, bool) {
	for _, d := range attrTable[class] {
		if d.Name == name {
			return d.Default, true
		}
	}
	return "", false
}

// Lenient attribute text parsers. NodeSet attributes are frequently
// absent or empty; an unparseable value falls back to the default
// rather than failing the whole node.

func ParseBoolAttr(s string, def bool) bool {
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return def
}

func ParseInt32Attr(s string, def int32) int32 {
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(v)
	}
	return def
}

func ParseUint8Attr(s string, def uint8) uint8 {
	if v, err := strconv.ParseUint(s, 10, 8); err == nil {
		return uint8(v)
	}
	return def
}

func ParseUint32Attr(s string, def uint32) uint32 {
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(v)
	}
	return def
}

func ParseFloat64Attr(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return def
}

// ParseDimsAttr parses comma-separated array dimensions such as "2,3".
// An empty string with a positive rank yields rank zero-length
// dimensions, matching how NodeSet files omit unknown lengths.
func ParseDimsAttr(s string, rank int32) []uint32 {
	if s == "" {
		if rank > 0 {
			return make([]uint32, rank)
		}
		return nil
	}
	parts := strings.Split(s, ",")
	dims := make([]uint32, len(parts))
	for i, p := range parts {
		if v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32); err == nil {
			dims[i] = uint32(v)
		}
	}
	return dims
}

func defaultBool(class NodeClass, name string) bool {
	d, _ := DefaultFor(class, name)
	return ParseBoolAttr(d, false)
}

func defaultInt32(class NodeClass, name string) int32 {
	d, _ := DefaultFor(class, name)
	return ParseInt32Attr(d, 0)
}

func defaultUint8(class NodeClass, name string) uint8 {
	d, _ := DefaultFor(class, name)
	return ParseUint8Attr(d, 0)
}
