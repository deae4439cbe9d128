package quiz

import (
	_ "embed"
)

//go:embed catalogs/aws.yaml
var awsYAML []byte

//go:embed catalogs/gcp.yaml
var gcpYAML []byte

// DefaultCatalog is the catalog used when none is selected.
const DefaultCatalog = "aws"

func init() {
	Register("aws", func() (*Catalog, error) { return Parse(awsYAML, "aws") })
	Register("gcp", func() (*Catalog, error) { return Parse(gcpYAML, "gcp") })
}
