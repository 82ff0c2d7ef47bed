package ua

// Well-known numeric identifiers from the standard namespace (ns=0)
// that the core itself relies on. The full catalog lives in the
// published NodeSet; only the identifiers referenced by the address
// space and the type hierarchy are mirrored here.

// Reference types
var (
	IDReferences                = NewNumericNodeID(0, 31)
	IDNonHierarchicalReferences = NewNumericNodeID(0, 32)
	IDHierarchicalReferences    = NewNumericNodeID(0, 33)
	IDHasChild                  = NewNumericNodeID(0, 34)
	IDOrganizes                 = NewNumericNodeID(0, 35)
	IDHasModellingRule          = NewNumericNodeID(0, 37)
	IDHasEncoding               = NewNumericNodeID(0, 38)
	IDHasTypeDefinition         = NewNumericNodeID(0, 40)
	IDAggregates                = NewNumericNodeID(0, 44)
	IDHasSubtype                = NewNumericNodeID(0, 45)
	IDHasProperty               = NewNumericNodeID(0, 46)
	IDHasComponent              = NewNumericNodeID(0, 47)
	IDHasNotifier               = NewNumericNodeID(0, 48)
)

// Category root types
var (
	IDBaseDataType     = NewNumericNodeID(0, 24)
	IDStructure        = NewNumericNodeID(0, 22)
	IDEnumeration      = NewNumericNodeID(0, 29)
	IDBaseObjectType   = NewNumericNodeID(0, 58)
	IDFolderType       = NewNumericNodeID(0, 61)
	IDBaseVariableType = NewNumericNodeID(0, 62)
	IDBaseDataVariable = NewNumericNodeID(0, 63)
	IDPropertyType     = NewNumericNodeID(0, 68)
)

// Standard folders
var (
	IDRootFolder    = NewNumericNodeID(0, 84)
	IDObjectsFolder = NewNumericNodeID(0, 85)
	IDTypesFolder   = NewNumericNodeID(0, 86)
	IDViewsFolder   = NewNumericNodeID(0, 87)
)
