package fgdc

// Config is the YAML configuration that fills a template.
type Config struct {
	General General `yaml:"general"`

	Keywords Keywords `yaml:"keywords"`

	Temporal Temporal `yaml:"temporal"`

	// Places is optional; only non-empty kinds are written.
	Places Places `yaml:"places,omitempty"`

	Usage Usage `yaml:"usage"`

	PrincipleInvestigator Contact `yaml:"principle_investigator"`

	// Processing steps, in lineage order.
	Processing []ProcessStep `yaml:"processing"`

	// Attachments are written as eainfo overview blocks.
	Attachments []Attachment `yaml:"attachments"`

	// BoundingBox is optional.
	BoundingBox *BoundingBox `yaml:"bounding_box,omitempty"`
}

// General holds citation and description fields.
type General struct {
	Authors StringOrArray `yaml:"authors"`
	// ORCIDs pair with Authors by position.
	ORCIDs            StringOrArray `yaml:"orcids,omitempty"`
	Title             string        `yaml:"title"`
	ReleaseDate       string        `yaml:"release_date"`
	DOI               string        `yaml:"doi"`
	GISData           string        `yaml:"gis_data"`
	SuggestedCitation string        `yaml:"suggested_citation"`
	Purpose           string        `yaml:"purpose,omitempty"`
	Abstract          string        `yaml:"abstract,omitempty"`
	SupplementInfo    string        `yaml:"supplement_info,omitempty"`
}

// Keywords are theme keyword lists.
type Keywords struct {
	General   StringOrArray `yaml:"general"`
	Thesaurus StringOrArray `yaml:"thesaurus"`
}

// Temporal are temporal keyword lists.
type Temporal struct {
	Geolex StringOrArray `yaml:"geolex"`
	Eras   StringOrArray `yaml:"eras"`
}

// Places are place keyword lists.
type Places struct {
	GNIS     StringOrArray `yaml:"gnis,omitempty"`
	Common   StringOrArray `yaml:"common,omitempty"`
	Terranes StringOrArray `yaml:"terranes,omitempty"`
}

type Usage struct {
	Constraints string `yaml:"constraints"`
}

// Contact is the point of contact.
type Contact struct {
	Name        string `yaml:"name"`
	Org         string `yaml:"org"`
	AddressType string `yaml:"address_type,omitempty"`
	Address     string `yaml:"address"`
	City        string `yaml:"city"`
	State       string `yaml:"state"`
	Postal      string `yaml:"postal"`
	Country     string `yaml:"country,omitempty"`
	Phone       string `yaml:"phone"`
	Email       string `yaml:"email"`
	Position    string `yaml:"position,omitempty"`
}

type ProcessStep struct {
	Description string `yaml:"description"`
	// Date as YYYY-MM-DD or YYYYMMDD.
	Date string `yaml:"date"`
}

type Attachment struct {
	Filename    string `yaml:"filename"`
	Description string `yaml:"description"`
}

// BoundingBox in decimal degrees.
type BoundingBox struct {
	West  float64 `yaml:"west"`
	East  float64 `yaml:"east"`
	North float64 `yaml:"north"`
	South float64 `yaml:"south"`
}

// Group kinds accepted by UpdateKeywords, UpdatePlaces and UpdateTemporal.
const (
	KeywordsGeneral   = "general"
	KeywordsThesaurus = "thesaurus"

	PlacesGNIS     = "gnis"
	PlacesCommon   = "common"
	PlacesTerranes = "terranes"

	TemporalGeolex = "geolex"
	TemporalEras   = "eras"
)
