package fgdc

import (
	"fmt"
	"strings"

	"mth5meta/internal/xmltree"
)

// Template paths, relative to the <metadata> root.
const (
	citeinfoPath = "idinfo/citation/citeinfo"
	descriptPath = "idinfo/descript"
	boundingPath = "idinfo/spdom/bounding"
	keywordsPath = "idinfo/keywords"
	useconstPath = "idinfo/useconst"
	cntinfoPath  = "idinfo/ptcontac/cntinfo"
	lineagePath  = "dataqual/lineage"
	eainfoPath   = "eainfo"
)

// group describes one repeated keyword block inside idinfo/keywords.
type group struct {
	block  string // theme, place or temporal
	index  int    // which block of that tag
	anchor string // thesaurus element the keys follow
	key    string // repeated key element
}

var keywordGroups = map[string]group{
	KeywordsGeneral:   {block: "theme", index: 1, anchor: "themekt", key: "themekey"},
	KeywordsThesaurus: {block: "theme", index: 2, anchor: "themekt", key: "themekey"},
}

var placeGroups = map[string]group{
	PlacesGNIS:     {block: "place", index: 0, anchor: "placekt", key: "placekey"},
	PlacesCommon:   {block: "place", index: 1, anchor: "placekt", key: "placekey"},
	PlacesTerranes: {block: "place", index: 2, anchor: "placekt", key: "placekey"},
}

var temporalGroups = map[string]group{
	TemporalGeolex: {block: "temporal", index: 0, anchor: "tempkt", key: "tempkey"},
	TemporalEras:   {block: "temporal", index: 1, anchor: "tempkt", key: "tempkey"},
}

// Record is an FGDC document being filled in. It is not safe for
// concurrent use.
type Record struct {
	doc *xmltree.Element
}

// NewRecord returns a record editing a copy of template.
func NewRecord(template *xmltree.Element) *Record {
	return &Record{doc: template.Clone()}
}

// LoadTemplate reads a template file into a new record.
func LoadTemplate(path string) (*Record, error) {
	doc, err := xmltree.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	return &Record{doc: doc}, nil
}

// Document returns a copy of the current document.
func (r *Record) Document() *xmltree.Element {
	return r.doc.Clone()
}

// Marshal encodes the current document.
func (r *Record) Marshal() ([]byte, error) {
	return xmltree.Marshal(r.doc)
}

// WriteFile writes the current document to path.
func (r *Record) WriteFile(path string) error {
	return xmltree.WriteFile(path, r.doc)
}

// Apply validates cfg and writes every section of it. The record changes
// only when every update succeeds.
func (r *Record) Apply(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	work := &Record{doc: r.doc.Clone()}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"citation", func() error { return work.UpdateCitation(cfg.General) }},
		{"description", func() error { return work.UpdateDescription(cfg.General) }},
		{"keywords.general", func() error { return work.UpdateKeywords(KeywordsGeneral, cfg.Keywords.General) }},
		{"keywords.thesaurus", func() error { return work.UpdateKeywords(KeywordsThesaurus, cfg.Keywords.Thesaurus) }},
		{"places", func() error { return work.applyPlaces(cfg.Places) }},
		{"temporal.geolex", func() error { return work.UpdateTemporal(TemporalGeolex, cfg.Temporal.Geolex) }},
		{"temporal.eras", func() error { return work.UpdateTemporal(TemporalEras, cfg.Temporal.Eras) }},
		{"usage.constraints", func() error { return work.UpdateConstraints(cfg.Usage.Constraints) }},
		{"principle_investigator", func() error { return work.UpdateContact(cfg.PrincipleInvestigator) }},
		{"processing", func() error { return work.UpdateProcessing(cfg.Processing) }},
		{"attachments", func() error { return work.UpdateAttachments(cfg.Attachments) }},
		{"bounding_box", func() error {
			if cfg.BoundingBox == nil {
				return nil
			}

			return work.UpdateBoundingBox(*cfg.BoundingBox)
		}},
	}

	for _, s := range steps {
		if err := s.fn(); err != nil {
			return fmt.Errorf("apply %s: %w", s.name, err)
		}
	}

	r.doc = work.doc

	return nil
}

func (r *Record) applyPlaces(p Places) error {
	for _, kv := range []struct {
		kind string
		keys StringOrArray
	}{
		{PlacesGNIS, p.GNIS},
		{PlacesCommon, p.Common},
		{PlacesTerranes, p.Terranes},
	} {
		if kv.keys.IsEmpty() {
			continue
		}

		if err := r.UpdatePlaces(kv.kind, kv.keys); err != nil {
			return err
		}
	}

	return nil
}

// UpdateCitation writes originators, publication date, title, data form,
// online link and the other-citation note. With ORCIDs the note starts with
// "Additional information about Originators: name, orcid; ...".
func (r *Record) UpdateCitation(g General) error {
	cite, err := r.doc.Find(citeinfoPath)
	if err != nil {
		return err
	}

	// resolve every target before touching the group
	targets := map[string]*xmltree.Element{}

	for _, tag := range []string{"pubdate", "title", "geoform", "othercit", "onlink"} {
		el, err := r.doc.Find(citeinfoPath + "/" + tag)
		if err != nil {
			return err
		}

		targets[tag] = el
	}

	origins := make([]*xmltree.Element, len(g.Authors))
	for i, name := range g.Authors {
		origins[i] = xmltree.NewText("origin", name)
	}

	cite.ReplaceGroup("origin", "", origins)

	targets["pubdate"].SetText(compactDate(g.ReleaseDate))
	targets["title"].SetText(g.Title)
	targets["geoform"].SetText(g.GISData)
	targets["onlink"].SetText(g.DOI)
	targets["othercit"].SetText(otherCitation(g))

	return nil
}

func otherCitation(g General) string {
	var b strings.Builder

	if !g.ORCIDs.IsEmpty() {
		b.WriteString("Additional information about Originators: ")

		for i, orcid := range g.ORCIDs {
			if i >= len(g.Authors) {
				break
			}

			fmt.Fprintf(&b, "%s, %s; ", g.Authors[i], orcid)
		}
	}

	if g.SuggestedCitation != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}

		b.WriteString("Suggested citation: " + g.SuggestedCitation)
	}

	return b.String()
}

// UpdateDescription writes purpose, abstract and supplinf, each only when set.
func (r *Record) UpdateDescription(g General) error {
	fields := []struct{ tag, text string }{
		{"purpose", g.Purpose},
		{"abstract", g.Abstract},
		{"supplinf", g.SupplementInfo},
	}

	for _, f := range fields {
		if f.text == "" {
			continue
		}

		if err := r.setText(descriptPath+"/"+f.tag, f.text); err != nil {
			return err
		}
	}

	return nil
}

// UpdateBoundingBox writes the four bounding coordinates with five decimals.
func (r *Record) UpdateBoundingBox(b BoundingBox) error {
	fields := []struct {
		tag string
		v   float64
	}{
		{"westbc", b.West},
		{"eastbc", b.East},
		{"northbc", b.North},
		{"southbc", b.South},
	}

	for _, f := range fields {
		if err := r.setText(boundingPath+"/"+f.tag, fmt.Sprintf("%.5f", f.v)); err != nil {
			return err
		}
	}

	return nil
}

// UpdateKeywords replaces the theme keywords of kind (general or thesaurus).
func (r *Record) UpdateKeywords(kind string, keys []string) error {
	return r.updateGroup(keywordGroups, kind, keys)
}

// UpdatePlaces replaces the place keywords of kind (gnis, common or terranes).
func (r *Record) UpdatePlaces(kind string, keys []string) error {
	return r.updateGroup(placeGroups, kind, keys)
}

// UpdateTemporal replaces the temporal keywords of kind (geolex or eras).
func (r *Record) UpdateTemporal(kind string, keys []string) error {
	return r.updateGroup(temporalGroups, kind, keys)
}

func (r *Record) updateGroup(groups map[string]group, kind string, keys []string) error {
	g, ok := groups[kind]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	block, err := r.doc.FindPath(xmltree.MustParsePath(keywordsPath).Child(g.block, g.index))
	if err != nil {
		return err
	}

	items := make([]*xmltree.Element, len(keys))
	for i, k := range keys {
		items[i] = xmltree.NewText(g.key, k)
	}

	block.ReplaceGroup(g.key, g.anchor, items)

	return nil
}

// UpdateConstraints writes the use constraints.
func (r *Record) UpdateConstraints(constraints string) error {
	return r.setText(useconstPath, constraints)
}

// UpdateContact writes the point of contact. Empty optional fields leave
// the template text alone.
func (r *Record) UpdateContact(c Contact) error {
	fields := []struct {
		path     string
		text     string
		optional bool
	}{
		{"cntperp/cntper", c.Name, false},
		{"cntperp/cntorg", c.Org, false},
		{"cntaddr/addrtype", c.AddressType, true},
		{"cntaddr/address", c.Address, true},
		{"cntaddr/city", c.City, true},
		{"cntaddr/state", c.State, true},
		{"cntaddr/postal", c.Postal, true},
		{"cntaddr/country", c.Country, true},
		{"cntvoice", c.Phone, true},
		{"cntemail", c.Email, false},
		{"cntpos", c.Position, true},
	}

	for _, f := range fields {
		if f.optional && f.text == "" {
			continue
		}

		if err := r.setText(cntinfoPath+"/"+f.path, f.text); err != nil {
			return err
		}
	}

	return nil
}

// UpdateProcessing replaces the lineage processing steps. New steps follow
// the source citations when the template has no steps yet.
func (r *Record) UpdateProcessing(steps []ProcessStep) error {
	lineage, err := r.doc.Find(lineagePath)
	if err != nil {
		return err
	}

	items := make([]*xmltree.Element, len(steps))
	for i, s := range steps {
		items[i] = xmltree.NewElement("procstep",
			xmltree.NewText("procdesc", s.Description),
			xmltree.NewText("procdate", compactDate(s.Date)),
		)
	}

	lineage.ReplaceGroup("procstep", "srcinfo", items)

	return nil
}

// UpdateAttachments replaces the eainfo overview blocks. New blocks follow
// the detailed entity descriptions when the template has none yet.
func (r *Record) UpdateAttachments(attachments []Attachment) error {
	eainfo, err := r.doc.Find(eainfoPath)
	if err != nil {
		return err
	}

	items := make([]*xmltree.Element, len(attachments))
	for i, a := range attachments {
		items[i] = xmltree.NewElement("overview",
			xmltree.NewText("eaover", a.Filename),
			xmltree.NewText("eadetcit", a.Description),
		)
	}

	eainfo.ReplaceGroup("overview", "detailed", items)

	return nil
}

func (r *Record) setText(path, text string) error {
	el, err := r.doc.Find(path)
	if err != nil {
		return err
	}

	el.SetText(text)

	return nil
}

// compactDate turns 2021-06-10 into 20210610.
func compactDate(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "")
}
