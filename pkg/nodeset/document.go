package nodeset

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Document is the parsed form of a UANodeSet XML interchange file.
// Node elements keep their class-specific attributes flattened into one
// struct; the element name carries the node class.
type Document struct {
	XMLName       xml.Name   `xml:"UANodeSet"`
	NamespaceURIs []string   `xml:"NamespaceUris>Uri"`
	ServerURIs    []string   `xml:"ServerUris>Uri"`
	Aliases       []XMLAlias `xml:"Aliases>Alias"`
	Models        []XMLModel `xml:"Models>Model"`
	Extensions    []XMLValue `xml:"Extensions>Extension"`
	Nodes         []XMLNode  `xml:",any"`
	LastModified  string     `xml:"LastModified,attr"`
}

// XMLModel identifies the information model a document ships.
type XMLModel struct {
	ModelURI        string `xml:"ModelUri,attr"`
	Version         string `xml:"Version,attr"`
	PublicationDate string `xml:"PublicationDate,attr"`
}

// XMLAlias maps a short alias to a NodeId string.
type XMLAlias struct {
	Alias  string `xml:"Alias,attr"`
	NodeID string `xml:",chardata"`
}

// XMLLocalizedText is a localized string element.
type XMLLocalizedText struct {
	Locale string `xml:"Locale,attr"`
	Text   string `xml:",chardata"`
}

// XMLReference is one entry of a node's References list. The target
// NodeId is the element text; ReferenceType may be an alias.
type XMLReference struct {
	ReferenceType string `xml:"ReferenceType,attr"`
	IsForward     string `xml:"IsForward,attr"`
	Target        string `xml:",chardata"`
}

// XMLValue carries a Variable's initial value as raw XML. The value
// payload is schema'd per data type; it is preserved opaquely and
// decoded lazily, if ever.
type XMLValue struct {
	Inner string `xml:",innerxml"`
}

// XMLDataTypeDefinition describes a structured or enumerated data type.
type XMLDataTypeDefinition struct {
	Name    string             `xml:"Name,attr"`
	IsUnion bool               `xml:"IsUnion,attr"`
	Fields  []XMLDataTypeField `xml:"Field"`
}

// XMLDataTypeField is one field of a data type definition.
type XMLDataTypeField struct {
	Name        string           `xml:"Name,attr"`
	DataType    string           `xml:"DataType,attr"`
	ValueRank   string           `xml:"ValueRank,attr"`
	Value       int64            `xml:"Value,attr"`
	IsOptional  bool             `xml:"IsOptional,attr"`
	Description XMLLocalizedText `xml:"Description"`
}

// XMLNode is one UA* node element. The XML element name (UAObject,
// UAVariable, ...) selects the node class; attributes not applicable
// to that class are left at their zero value.
type XMLNode struct {
	XMLName     xml.Name
	NodeID      string           `xml:"NodeId,attr"`
	BrowseName  string           `xml:"BrowseName,attr"`
	DisplayName XMLLocalizedText `xml:"DisplayName"`
	Description XMLLocalizedText `xml:"Description"`
	References  []XMLReference   `xml:"References>Reference"`

	WriteMask     string `xml:"WriteMask,attr"`
	UserWriteMask string `xml:"UserWriteMask,attr"`

	// Type nodes
	IsAbstract string `xml:"IsAbstract,attr"`

	// Variables and variable types
	DataType        string   `xml:"DataType,attr"`
	ValueRank       string   `xml:"ValueRank,attr"`
	ArrayDimensions string   `xml:"ArrayDimensions,attr"`
	Value           XMLValue `xml:"Value"`

	// Variables only
	AccessLevel             string `xml:"AccessLevel,attr"`
	UserAccessLevel         string `xml:"UserAccessLevel,attr"`
	MinimumSamplingInterval string `xml:"MinimumSamplingInterval,attr"`
	Historizing             string `xml:"Historizing,attr"`

	// Reference types
	Symmetric   string           `xml:"Symmetric,attr"`
	InverseName XMLLocalizedText `xml:"InverseName"`

	// Data types
	Definition *XMLDataTypeDefinition `xml:"Definition"`

	// Objects
	EventNotifier string `xml:"EventNotifier,attr"`

	// Methods
	Executable     string `xml:"Executable,attr"`
	UserExecutable string `xml:"UserExecutable,attr"`

	// Views
	ContainsNoLoops string `xml:"ContainsNoLoops,attr"`
}

// ParseDocument decodes a UANodeSet document from r.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing node set document: %w", err)
	}
	return &doc, nil
}
