package nodeset

import (
	"fmt"
	"strings"

	"github.com/Andy3189/async-opcua/pkg/nodes"
	"github.com/Andy3189/async-opcua/pkg/ua"
)

// docContext carries the per-document tables built by the parse stages.
type docContext struct {
	nsMap   map[uint16]uint16 // document namespace index -> space index
	aliases *ua.AliasTable
	report  *Report
}

// remap rewrites a NodeID's namespace index from document numbering to
// the space's numbering.
func (c *docContext) remap(id ua.NodeID) ua.NodeID {
	if mapped, ok := c.nsMap[id.Namespace]; ok {
		return id.WithNamespace(mapped)
	}
	return id
}

// resolveID parses a NodeId string, going through the alias table
// first. Aliases are stored already remapped; literal ids are remapped
// here.
func (c *docContext) resolveID(s string) (ua.NodeID, error) {
	s = strings.TrimSpace(s)
	if id, ok := c.aliases.Lookup(s); ok {
		return id, nil
	}
	id, err := ua.ParseNodeID(s)
	if err != nil {
		return ua.NodeID{}, err
	}
	return c.remap(id), nil
}

// resolveBrowseName parses a "ns:Name" browse name attribute and
// remaps its namespace index.
func (c *docContext) resolveBrowseName(s string) ua.QualifiedName {
	qn := ua.ParseQualifiedName(s)
	if mapped, ok := c.nsMap[qn.Namespace]; ok {
		qn.Namespace = mapped
	}
	return qn
}

func localized(t XMLLocalizedText) ua.LocalizedText {
	return ua.LocalizedText{Locale: t.Locale, Text: strings.TrimSpace(t.Text)}
}

// buildNode constructs a typed node from one UA* document element.
func (c *docContext) buildNode(x XMLNode, ignoreValues bool) (nodes.Node, error) {
	id, err := c.resolveID(x.NodeID)
	if err != nil {
		return nil, fmt.Errorf("node id %q: %w", x.NodeID, err)
	}
	browse := c.resolveBrowseName(x.BrowseName)

	var n nodes.Node
	switch x.XMLName.Local {
	case "UAObject":
		n, err = nodes.NewObject(id, browse).
			EventNotifier(nodes.ParseUint8Attr(x.EventNotifier, 0)).
			Build()
	case "UAVariable":
		b := nodes.NewVariable(id, browse)
		if dt := strings.TrimSpace(x.DataType); dt != "" {
			dtID, derr := c.resolveID(dt)
			if derr != nil {
				return nil, fmt.Errorf("data type %q: %w", dt, derr)
			}
			b.DataType(dtID)
		}
		rank := nodes.ParseInt32Attr(x.ValueRank, -1)
		b.ValueRank(rank).
			ArrayDimensions(nodes.ParseDimsAttr(x.ArrayDimensions, rank)).
			AccessLevel(nodes.ParseUint8Attr(x.AccessLevel, nodes.AccessLevelCurrentRead)).
			UserAccessLevel(nodes.ParseUint8Attr(x.UserAccessLevel, nodes.AccessLevelCurrentRead)).
			MinimumSamplingInterval(nodes.ParseFloat64Attr(x.MinimumSamplingInterval, 0)).
			Historizing(nodes.ParseBoolAttr(x.Historizing, false))
		if !ignoreValues && x.Value.Inner != "" {
			b.Value(ua.OpaqueXMLVariant(x.Value.Inner))
		}
		n, err = b.Build()
	case "UAMethod":
		n, err = nodes.NewMethod(id, browse).
			Executable(nodes.ParseBoolAttr(x.Executable, true)).
			UserExecutable(nodes.ParseBoolAttr(x.UserExecutable, true)).
			Build()
	case "UAObjectType":
		n, err = nodes.NewObjectType(id, browse).
			IsAbstract(nodes.ParseBoolAttr(x.IsAbstract, false)).
			Build()
	case "UAVariableType":
		b := nodes.NewVariableType(id, browse).
			IsAbstract(nodes.ParseBoolAttr(x.IsAbstract, false))
		if dt := strings.TrimSpace(x.DataType); dt != "" {
			dtID, derr := c.resolveID(dt)
			if derr != nil {
				return nil, fmt.Errorf("data type %q: %w", dt, derr)
			}
			b.DataType(dtID)
		}
		rank := nodes.ParseInt32Attr(x.ValueRank, -1)
		b.ValueRank(rank).ArrayDimensions(nodes.ParseDimsAttr(x.ArrayDimensions, rank))
		n, err = b.Build()
	case "UAReferenceType":
		b := nodes.NewReferenceType(id, browse).
			IsAbstract(nodes.ParseBoolAttr(x.IsAbstract, false)).
			Symmetric(nodes.ParseBoolAttr(x.Symmetric, false))
		if x.InverseName.Text != "" {
			b.InverseName(localized(x.InverseName))
		}
		n, err = b.Build()
	case "UADataType":
		b := nodes.NewDataType(id, browse).
			IsAbstract(nodes.ParseBoolAttr(x.IsAbstract, false))
		if x.Definition != nil {
			def, derr := c.buildDefinition(x.Definition)
			if derr != nil {
				return nil, derr
			}
			b.Definition(def)
		}
		n, err = b.Build()
	case "UAView":
		n, err = nodes.NewView(id, browse).
			ContainsNoLoops(nodes.ParseBoolAttr(x.ContainsNoLoops, false)).
			EventNotifier(nodes.ParseUint8Attr(x.EventNotifier, 0)).
			Build()
	default:
		return nil, fmt.Errorf("unsupported element %q", x.XMLName.Local)
	}
	if err != nil {
		return nil, err
	}

	if x.DisplayName.Text != "" {
		n.SetDisplayName(localized(x.DisplayName))
	}
	if x.Description.Text != "" {
		n.SetDescription(localized(x.Description))
	}
	n.SetWriteMask(nodes.ParseUint32Attr(x.WriteMask, 0))
	n.SetUserWriteMask(nodes.ParseUint32Attr(x.UserWriteMask, 0))
	return n, nil
}

func (c *docContext) buildDefinition(x *XMLDataTypeDefinition) (*nodes.DataTypeDefinition, error) {
	def := &nodes.DataTypeDefinition{
		Name:    x.Name,
		IsUnion: x.IsUnion,
	}
	for _, f := range x.Fields {
		field := nodes.DataTypeField{
			Name:        f.Name,
			Description: strings.TrimSpace(f.Description.Text),
			ValueRank:   nodes.ParseInt32Attr(f.ValueRank, -1),
			Value:       f.Value,
			IsOptional:  f.IsOptional,
		}
		if dt := strings.TrimSpace(f.DataType); dt != "" {
			id, err := c.resolveID(dt)
			if err != nil {
				return nil, fmt.Errorf("definition field %q data type %q: %w", f.Name, dt, err)
			}
			field.DataType = id
		}
		def.Fields = append(def.Fields, field)
	}
	return def, nil
}
