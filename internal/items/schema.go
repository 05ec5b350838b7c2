package items

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ItemSchema returns a JSON Schema describing the wire shape of an Item as
// exchanged with the collection endpoint.
func ItemSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Item{})
	sch.Title = "itemctl item record"
	sch.Description = "An item as stored by the collection endpoint. The id is server-assigned."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
