package tsgen

// FieldType is the closed set of Contentful field kinds the translator understands.
type FieldType string

const (
	FieldSymbol   FieldType = "Symbol"
	FieldText     FieldType = "Text"
	FieldDate     FieldType = "Date"
	FieldNumber   FieldType = "Number"
	FieldInteger  FieldType = "Integer"
	FieldBoolean  FieldType = "Boolean"
	FieldLocation FieldType = "Location"
	FieldObject   FieldType = "Object"
	FieldArray    FieldType = "Array"
	FieldLink     FieldType = "Link"
)

var fieldTypes = map[string]FieldType{
	string(FieldSymbol):   FieldSymbol,
	string(FieldText):     FieldText,
	string(FieldDate):     FieldDate,
	string(FieldNumber):   FieldNumber,
	string(FieldInteger):  FieldInteger,
	string(FieldBoolean):  FieldBoolean,
	string(FieldLocation): FieldLocation,
	string(FieldObject):   FieldObject,
	string(FieldArray):    FieldArray,
	string(FieldLink):     FieldLink,
}

// ParseFieldType reports false for kinds outside the enum.
func ParseFieldType(s string) (FieldType, bool) {
	t, ok := fieldTypes[s]
	return t, ok
}

const (
	ASSET = "Asset"
	ENTRY = "Entry"
)
