package schema

import (
	"github.com/invopop/jsonschema"

	"kgeyst.com/muse/pkg/muse/domain"
)

type reflector struct {
	reflector jsonschema.Reflector
}

// NewReflector generates inline JSON Schemas for tool arguments. Fields without `omitempty` are required,
// additional properties are forbidden.
func NewReflector() domain.SchemaReflector {
	return &reflector{
		reflector: jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		},
	}
}

func (r *reflector) Reflect(v any) any {
	schema := r.reflector.Reflect(v)
	if enumProvider, ok := v.(domain.EnumProvider); ok {
		applyEnums(schema, enumProvider.JSONSchemaEnums())
	}
	return schema
}

func applyEnums(schema *jsonschema.Schema, enums map[string][]string) {
	if schema.Properties == nil {
		return
	}
	for name, values := range enums {
		property, ok := schema.Properties.Get(name)
		if !ok {
			continue
		}
		if property.Items != nil {
			property = property.Items
		}
		property.Enum = make([]any, 0, len(values))
		for _, value := range values {
			property.Enum = append(property.Enum, value)
		}
	}
}
