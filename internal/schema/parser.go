package schema

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/wundergraph/graphql-go-tools/v2/pkg/ast"
	"github.com/wundergraph/graphql-go-tools/v2/pkg/astparser"
)

// ErrInvalidSchema is returned when the schema is not valid GraphQL after
// preprocessing.
var ErrInvalidSchema = errors.New("invalid schema")

// ParseFile reads and parses the schema at path.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read schema %s", path)
	}
	s, err := ParseSchema(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse schema %s", path)
	}
	return s, nil
}

// ParseSchema parses a schema (after preprocessing) into our Schema model
func ParseSchema(input string) (*Schema, error) {
	preprocessed := PreprocessGraphQL(input)

	doc, report := astparser.ParseGraphqlDocumentString(preprocessed)
	if report.HasErrors() {
		return nil, errors.Wrapf(ErrInvalidSchema, "%v", report)
	}

	schema := &Schema{
		Types:      []ObjectType{},
		Inputs:     []ObjectType{},
		Interfaces: []ObjectType{},
		Enums:      []EnumType{},
		Services:   []Service{},
	}

	for i := range doc.RootNodes {
		node := &doc.RootNodes[i]
		switch node.Kind {
		case ast.NodeKindObjectTypeDefinition:
			parseObjectType(&doc, node.Ref, schema)
		case ast.NodeKindInputObjectTypeDefinition:
			schema.Inputs = append(schema.Inputs, parseInputType(&doc, node.Ref))
		case ast.NodeKindInterfaceTypeDefinition:
			schema.Interfaces = append(schema.Interfaces, parseInterfaceType(&doc, node.Ref))
		case ast.NodeKindEnumTypeDefinition:
			schema.Enums = append(schema.Enums, parseEnumType(&doc, node.Ref))
		}
	}

	return schema, nil
}

func parseObjectType(doc *ast.Document, ref int, schema *Schema) {
	typeDef := doc.ObjectTypeDefinitions[ref]
	typeName := doc.Input.ByteSliceString(typeDef.Name)

	if typeName == headerTypeName {
		parseHeader(doc, typeDef, schema)
		return
	}

	if name, ok := strings.CutPrefix(typeName, servicePrefix); ok {
		schema.Services = append(schema.Services, parseService(doc, typeDef, name))
		return
	}

	objType := ObjectType{
		Name:       typeName,
		Doc:        getDescription(doc, typeDef.Description),
		Implements: typeNames(doc, typeDef.ImplementsInterfaces),
		Fields:     []Field{},
		Directives: parseDirectives(doc, typeDef.Directives),
	}
	for _, fieldRef := range typeDef.FieldsDefinition.Refs {
		objType.Fields = append(objType.Fields, parseField(doc, fieldRef))
	}

	schema.Types = append(schema.Types, objType)
}

func parseInputType(doc *ast.Document, ref int) ObjectType {
	inputDef := doc.InputObjectTypeDefinitions[ref]

	input := ObjectType{
		Name:       doc.Input.ByteSliceString(inputDef.Name),
		Doc:        getDescription(doc, inputDef.Description),
		Fields:     []Field{},
		Directives: parseDirectives(doc, inputDef.Directives),
	}
	for _, valueRef := range inputDef.InputFieldsDefinition.Refs {
		input.Fields = append(input.Fields, parseInputField(doc, valueRef))
	}
	return input
}

func parseInterfaceType(doc *ast.Document, ref int) ObjectType {
	ifaceDef := doc.InterfaceTypeDefinitions[ref]

	iface := ObjectType{
		Name:       doc.Input.ByteSliceString(ifaceDef.Name),
		Doc:        getDescription(doc, ifaceDef.Description),
		Implements: typeNames(doc, ifaceDef.ImplementsInterfaces),
		Fields:     []Field{},
		Directives: parseDirectives(doc, ifaceDef.Directives),
	}
	for _, fieldRef := range ifaceDef.FieldsDefinition.Refs {
		iface.Fields = append(iface.Fields, parseField(doc, fieldRef))
	}
	return iface
}

func parseEnumType(doc *ast.Document, ref int) EnumType {
	enumDef := doc.EnumTypeDefinitions[ref]

	enumType := EnumType{
		Name:   doc.Input.ByteSliceString(enumDef.Name),
		Doc:    getDescription(doc, enumDef.Description),
		Values: []EnumValue{},
	}
	for _, valueRef := range enumDef.EnumValuesDefinition.Refs {
		valueDef := doc.EnumValueDefinitions[valueRef]
		enumType.Values = append(enumType.Values, EnumValue{
			Name:       doc.Input.ByteSliceString(valueDef.EnumValue),
			Doc:        getDescription(doc, valueDef.Description),
			Directives: parseDirectives(doc, valueDef.Directives),
		})
	}
	return enumType
}

func parseHeader(doc *ast.Document, typeDef ast.ObjectTypeDefinition, schema *Schema) {
	for _, fieldRef := range typeDef.FieldsDefinition.Refs {
		fieldDef := doc.FieldDefinitions[fieldRef]
		for _, directiveRef := range fieldDef.Directives.Refs {
			directive := doc.Directives[directiveRef]
			if doc.Input.ByteSliceString(directive.Name) != headerDirective {
				continue
			}
			args := parseDirectiveArgs(doc, directive)
			schema.Meta.Namespace = args["namespace"]
			for u := range strings.SplitSeq(args["usings"], ",") {
				if u = strings.TrimSpace(u); u != "" {
					schema.Meta.Usings = append(schema.Meta.Usings, u)
				}
			}
			return
		}
	}
}

func parseService(doc *ast.Document, typeDef ast.ObjectTypeDefinition, name string) Service {
	service := Service{
		Name:    name,
		Doc:     getDescription(doc, typeDef.Description),
		Methods: []Method{},
	}
	for _, fieldRef := range typeDef.FieldsDefinition.Refs {
		service.Methods = append(service.Methods, parseMethod(doc, fieldRef))
	}
	return service
}

func parseField(doc *ast.Document, fieldRef int) Field {
	fieldDef := doc.FieldDefinitions[fieldRef]

	field := Field{
		Name:       doc.Input.ByteSliceString(fieldDef.Name),
		Doc:        getDescription(doc, fieldDef.Description),
		Directives: parseDirectives(doc, fieldDef.Directives),
	}
	field.Type, field.Required, field.ItemRequired = parseType(doc, fieldDef.Type)
	return field
}

func parseInputField(doc *ast.Document, valueRef int) Field {
	valueDef := doc.InputValueDefinitions[valueRef]

	field := Field{
		Name:       doc.Input.ByteSliceString(valueDef.Name),
		Doc:        getDescription(doc, valueDef.Description),
		Directives: parseDirectives(doc, valueDef.Directives),
	}
	field.Type, field.Required, field.ItemRequired = parseType(doc, valueDef.Type)
	if valueDef.DefaultValue.IsDefined {
		field.HasDefault = true
		field.Default = parseValue(doc, valueDef.DefaultValue.Value)
	}
	return field
}

func parseMethod(doc *ast.Document, fieldRef int) Method {
	fieldDef := doc.FieldDefinitions[fieldRef]

	method := Method{
		Name:       doc.Input.ByteSliceString(fieldDef.Name),
		Doc:        getDescription(doc, fieldDef.Description),
		Directives: parseDirectives(doc, fieldDef.Directives),
	}
	method.OutputType, method.OutputRequired, _ = parseType(doc, fieldDef.Type)

	// The first argument is the input.
	if refs := fieldDef.ArgumentsDefinition.Refs; len(refs) > 0 {
		argDef := doc.InputValueDefinitions[refs[0]]
		method.InputName = doc.Input.ByteSliceString(argDef.Name)
		method.InputType, method.InputRequired, _ = parseType(doc, argDef.Type)
	}
	return method
}

// parseType returns the type string ("[T]" for lists), whether the value is
// non-null and, for lists, whether the items are non-null.
func parseType(doc *ast.Document, typeRef int) (string, bool, bool) {
	required := false
	currentRef := typeRef

	if doc.Types[currentRef].TypeKind == ast.TypeKindNonNull {
		required = true
		currentRef = doc.Types[currentRef].OfType
	}

	switch doc.Types[currentRef].TypeKind {
	case ast.TypeKindList:
		inner, itemRequired, _ := parseType(doc, doc.Types[currentRef].OfType)
		return "[" + inner + "]", required, itemRequired
	case ast.TypeKindNamed:
		return doc.Input.ByteSliceString(doc.Types[currentRef].Name), required, false
	}

	return "Unknown", required, false
}

func typeNames(doc *ast.Document, list ast.TypeList) []string {
	names := []string{}
	for _, ref := range list.Refs {
		name, _, _ := parseType(doc, ref)
		names = append(names, name)
	}
	return names
}

func parseDirectives(doc *ast.Document, directives ast.DirectiveList) []Directive {
	result := []Directive{}
	for _, directiveRef := range directives.Refs {
		directive := doc.Directives[directiveRef]
		result = append(result, Directive{
			Name: doc.Input.ByteSliceString(directive.Name),
			Args: parseDirectiveArgs(doc, directive),
		})
	}
	return result
}

func parseDirectiveArgs(doc *ast.Document, directive ast.Directive) map[string]string {
	args := make(map[string]string)
	for _, argRef := range directive.Arguments.Refs {
		arg := doc.Arguments[argRef]
		args[doc.Input.ByteSliceString(arg.Name)] = parseValue(doc, doc.ArgumentValue(argRef))
	}
	return args
}

// parseValue returns the source form of scalar values. String values are
// returned without quotes.
func parseValue(doc *ast.Document, value ast.Value) string {
	switch value.Kind {
	case ast.ValueKindString:
		return doc.StringValueContentString(value.Ref)
	case ast.ValueKindEnum:
		if value.Ref >= 0 && value.Ref < len(doc.EnumValues) {
			return doc.Input.ByteSliceString(doc.EnumValues[value.Ref].Name)
		}
	case ast.ValueKindBoolean:
		if value.Ref >= 0 && value.Ref < len(doc.BooleanValues) {
			return strconv.FormatBool(bool(doc.BooleanValues[value.Ref]))
		}
	case ast.ValueKindInteger:
		return strconv.FormatInt(int64(doc.IntValueAsInt(value.Ref)), 10)
	case ast.ValueKindFloat:
		return strconv.FormatFloat(float64(doc.FloatValueAsFloat32(value.Ref)), 'g', -1, 32)
	case ast.ValueKindNull:
		return "null"
	}
	return ""
}

func getDescription(doc *ast.Document, desc ast.Description) string {
	if !desc.IsDefined {
		return ""
	}
	return strings.TrimSpace(doc.Input.ByteSliceString(desc.Content))
}
