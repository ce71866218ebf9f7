package graph

import (
	"encoding/json"
	"strconv"

	language "github.com/graphlink/graphlink/internal/language"
)

// ValueKind discriminates the Value variant.
type ValueKind string

const (
	ValueInt      ValueKind = "INT"
	ValueFloat    ValueKind = "FLOAT"
	ValueString   ValueKind = "STRING"
	ValueBool     ValueKind = "BOOLEAN"
	ValueNull     ValueKind = "NULL"
	ValueEnum     ValueKind = "ENUM"
	ValueList     ValueKind = "LIST"
	ValueObject   ValueKind = "OBJECT"
	ValueVariable ValueKind = "VARIABLE"
)

// Value is a literal from the source document, converted at reduction time:
// integers and floats are parsed, booleans become real booleans, and null is
// its own kind rather than a string. Str doubles as the enum value and the
// variable name for those kinds.
type Value struct {
	Kind   ValueKind
	Int    int64
	Float  float64
	Str    string
	Bool   bool
	List   []*Value
	Fields []*ObjectField
}

// ObjectField is one entry of an object literal.
type ObjectField struct {
	Name  string
	Value *Value
}

// IsNull reports whether the value is the null marker.
func (v *Value) IsNull() bool { return v.Kind == ValueNull }

// MarshalJSON renders the natural JSON form of the literal. Variables keep
// their $ prefix so they stay distinguishable from strings.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueInt:
		return json.Marshal(v.Int)
	case ValueFloat:
		return json.Marshal(v.Float)
	case ValueString, ValueEnum:
		return json.Marshal(v.Str)
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueNull:
		return []byte("null"), nil
	case ValueVariable:
		return json.Marshal("$" + v.Str)
	case ValueList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case ValueObject:
		fields := make(map[string]*Value, len(v.Fields))
		for _, f := range v.Fields {
			fields[f.Name] = f.Value
		}
		return json.Marshal(fields)
	}
	return []byte("null"), nil
}

// String prints the literal in SDL notation.
func (v *Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueNull:
		return "null"
	case ValueEnum:
		return v.Str
	case ValueVariable:
		return "$" + v.Str
	case ValueList:
		s := "["
		for i, item := range v.List {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	case ValueObject:
		s := "{"
		for i, f := range v.Fields {
			if i > 0 {
				s += ", "
			}
			s += f.Name + ": " + f.Value.String()
		}
		return s + "}"
	}
	return ""
}

// convertValue reduces a literal parse node into a Value.
func convertValue(node *language.Value) (*Value, error) {
	switch node.Kind {
	case language.IntValue:
		n, err := strconv.ParseInt(node.Raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: ValueInt, Int: n}, nil
	case language.FloatValue:
		f, err := strconv.ParseFloat(node.Raw, 64)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: ValueFloat, Float: f}, nil
	case language.StringValue, language.BlockValue:
		return &Value{Kind: ValueString, Str: node.Raw}, nil
	case language.BooleanValue:
		return &Value{Kind: ValueBool, Bool: node.Raw == "true"}, nil
	case language.NullValue:
		return &Value{Kind: ValueNull}, nil
	case language.EnumValue:
		return &Value{Kind: ValueEnum, Str: node.Raw}, nil
	case language.Variable:
		return &Value{Kind: ValueVariable, Str: node.Raw}, nil
	case language.ListValue:
		v := &Value{Kind: ValueList}
		for _, child := range node.Children {
			item, err := convertValue(child.Value)
			if err != nil {
				return nil, err
			}
			v.List = append(v.List, item)
		}
		return v, nil
	case language.ObjectValue:
		v := &Value{Kind: ValueObject}
		for _, child := range node.Children {
			item, err := convertValue(child.Value)
			if err != nil {
				return nil, err
			}
			v.Fields = append(v.Fields, &ObjectField{Name: child.Name, Value: item})
		}
		return v, nil
	}
	return &Value{Kind: ValueNull}, nil
}
