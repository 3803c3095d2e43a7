package fgdc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mth5meta/internal/diagnostic"
)

// DefaultAddressType is written to cntaddr/addrtype when the config names none.
const DefaultAddressType = "Mailing and physical"

// LoadConfig loads and parses a YAML configuration file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig parses YAML data into a Config. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.PrincipleInvestigator.AddressType == "" {
		cfg.PrincipleInvestigator.AddressType = DefaultAddressType
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every required field that is missing or empty. The
// returned error matches ErrMissingField, and *MissingFieldError through
// errors.As, when any field is missing.
func (c *Config) Validate() error {
	diags := c.Diagnostics()

	return diags.Error()
}

// Diagnostics returns the validation findings of c.
func (c *Config) Diagnostics() diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	missing := func(field string) {
		res.AddErr("missing_field", &MissingFieldError{Field: field}, "config", field)
	}

	required := func(field, v string) {
		if v == "" {
			missing(field)
		}
	}

	requiredList := func(field string, v StringOrArray) {
		if v.IsEmpty() {
			missing(field)
		}
	}

	g := c.General
	requiredList("general.authors", g.Authors)
	required("general.title", g.Title)
	required("general.release_date", g.ReleaseDate)
	required("general.doi", g.DOI)
	required("general.gis_data", g.GISData)
	required("general.suggested_citation", g.SuggestedCitation)

	if !g.ORCIDs.IsEmpty() && len(g.ORCIDs) != len(g.Authors) {
		res.AddErr("orcid_count", fmt.Errorf("%w: general.orcids has %d entries for %d authors",
			ErrInvalidField, len(g.ORCIDs), len(g.Authors)), "config", "general.orcids")
	}

	requiredList("keywords.general", c.Keywords.General)
	requiredList("keywords.thesaurus", c.Keywords.Thesaurus)
	requiredList("temporal.geolex", c.Temporal.Geolex)
	requiredList("temporal.eras", c.Temporal.Eras)
	required("usage.constraints", c.Usage.Constraints)

	pi := c.PrincipleInvestigator
	required("principle_investigator.name", pi.Name)
	required("principle_investigator.org", pi.Org)
	required("principle_investigator.email", pi.Email)

	if len(c.Processing) == 0 {
		missing("processing")
	}

	for i, step := range c.Processing {
		required(fmt.Sprintf("processing[%d].description", i), step.Description)
	}

	if len(c.Attachments) == 0 {
		missing("attachments")
	}

	for i, a := range c.Attachments {
		required(fmt.Sprintf("attachments[%d].filename", i), a.Filename)
	}

	if b := c.BoundingBox; b == nil {
		res.AddWarning("no_bounding_box", "template bounding box is kept", "bounding_box")
	} else if b.West > b.East || b.South > b.North {
		res.AddErr("bounding_box", fmt.Errorf("%w: bounding_box is inverted", ErrInvalidField), "config", "bounding_box")
	}

	if p := c.Places; p.GNIS.IsEmpty() && p.Common.IsEmpty() && p.Terranes.IsEmpty() {
		res.AddWarning("no_places", "no place keywords, template places are kept", "places")
	}

	return res
}
