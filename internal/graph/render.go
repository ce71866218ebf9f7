package graph

import (
	"sort"
	"strings"
)

// Render prints the linked schema back as SDL. Output is deterministic:
// type names sort lexicographically and implicit built-in scalars are
// omitted. Wrapper chains print through Type.String, so the output only
// mentions types by name and cycles in the graph are harmless.
func Render(s *Schema) string {
	if s == nil {
		return ""
	}
	var b strings.Builder

	typeNames := make([]string, 0, s.Types.Len())
	for _, name := range s.Types.TypeNames() {
		if s.Types.IsBuiltin(name) {
			continue
		}
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	renderSchemaDefinition(&b, s)

	for _, name := range typeNames {
		t := s.Types.Lookup(name)
		switch t.Kind {
		case KindScalar:
			renderScalar(&b, t)
		case KindEnum:
			renderEnum(&b, t)
		case KindUnion:
			renderUnion(&b, t)
		case KindInputObject:
			renderInputObject(&b, t)
		case KindObject:
			renderCompositeType(&b, "type", t)
		case KindInterface:
			renderCompositeType(&b, "interface", t)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderSchemaDefinition(b *strings.Builder, s *Schema) {
	b.WriteString("schema {\n")
	b.WriteString("  query: ")
	b.WriteString(s.Query)
	b.WriteString("\n")
	if s.Mutation != "" {
		b.WriteString("  mutation: ")
		b.WriteString(s.Mutation)
		b.WriteString("\n")
	}
	if s.Subscription != "" {
		b.WriteString("  subscription: ")
		b.WriteString(s.Subscription)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderScalar(b *strings.Builder, t *Type) {
	b.WriteString("scalar ")
	b.WriteString(t.Name)
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, t *Type) {
	b.WriteString("enum ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, value := range t.EnumValues {
		b.WriteString("  ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderUnion(b *strings.Builder, t *Type) {
	b.WriteString("union ")
	b.WriteString(t.Name)
	b.WriteString(" = ")
	for i, member := range t.PossibleTypes {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(member.Name)
	}
	b.WriteString("\n\n")
}

func renderInputObject(b *strings.Builder, t *Type) {
	b.WriteString("input ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, field := range t.InputFields {
		b.WriteString("  ")
		b.WriteString(field.Name)
		b.WriteString(": ")
		b.WriteString(field.Type.String())
		if field.Default != nil {
			b.WriteString(" = ")
			b.WriteString(field.Default.String())
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderCompositeType(b *strings.Builder, keyword string, t *Type) {
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(t.Name)
	if len(t.Interfaces) > 0 {
		b.WriteString(" implements ")
		for i, iface := range t.Interfaces {
			if i > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(iface.Name)
		}
	}
	b.WriteString(" {\n")
	for _, field := range t.Fields {
		renderField(b, field)
	}
	b.WriteString("}\n\n")
}

func renderField(b *strings.Builder, field *FieldDefinition) {
	b.WriteString("  ")
	b.WriteString(field.Name)
	if len(field.Args) > 0 {
		b.WriteString("(")
		for i, arg := range field.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Type.String())
			if arg.Default != nil {
				b.WriteString(" = ")
				b.WriteString(arg.Default.String())
			}
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(field.Type.String())
	b.WriteString("\n")
}
