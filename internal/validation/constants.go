package validation

// Embedded schema names
const (
	SchemaCatalogue = "catalogue.schema.json"
	SchemaGoals     = "goals.schema.json"
)

const schemaDir = "schemas"
