package catalogue

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DropLuck_Go/internal/validation"
)

// Loader reads catalogue files.
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() *Loader {
	return &Loader{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads, schema-checks and validates a YAML catalogue file.
func (l *Loader) Load(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf(ErrFmtReadFileFailed, path, err)
	}
	return l.Parse(path, data)
}

// Parse is Load for in-memory documents; name is used in error messages.
func (l *Loader) Parse(name string, data []byte) (Catalogue, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaCatalogue); err != nil {
		return Catalogue{}, fmt.Errorf(ErrFmtSchemaFailed, name, err)
	}

	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf(ErrFmtParseFailed, name, err)
	}

	if err := c.Validate(); err != nil {
		return Catalogue{}, err
	}
	return c, nil
}
