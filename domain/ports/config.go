package ports

import "github.com/reglet-dev/scriptbox/domain/entities"

// ConfigParser decodes raw configuration bytes.
type ConfigParser interface {
	// Document decodes data into a generic tree of maps, slices and scalars.
	Document(data []byte) (any, error)

	// Decode decodes data into out.
	Decode(data []byte, out any) error
}

// DocumentValidator checks a generic document tree against a schema.
type DocumentValidator interface {
	Validate(doc any) (*entities.ValidationResult, error)
}
