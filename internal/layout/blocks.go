// Package layout turns cleaned resume text into an ordered sequence of
// style-tagged blocks that a rendering backend can paginate.
package layout

// Style identifies how a paragraph block is rendered.
type Style string

// Paragraph styles
const (
	// StyleName is the large centered heading for the candidate's name.
	StyleName Style = "name"
	// StyleTitle is the medium centered job title line.
	StyleTitle Style = "title"
	// StyleContact is the small centered, muted contact line.
	StyleContact Style = "contact"
	// StyleBody is left-aligned body text.
	StyleBody Style = "body"
	// StyleBullet is an indented bullet item.
	StyleBullet Style = "bullet"
)

// RowKind identifies the column layout of a two-column row.
type RowKind string

// Row kinds
const (
	// RowRecord is a job/degree entry: wide left cell, right-aligned muted date cell.
	RowRecord RowKind = "record"
	// RowSkill is a skill category entry: narrow bold label cell, wide list cell.
	RowSkill RowKind = "skill"
)

// Block is a single renderable unit of a Document.
type Block interface {
	blockKind() string
}

// Paragraph is a single line of styled text.
type Paragraph struct {
	Text  string
	Style Style
}

// SectionHeader introduces a resume section (PROFILE, SKILLS, ...).
// Title is always stored uppercased.
type SectionHeader struct {
	Title string
}

// Row is a two-column line, either a record entry or a skill category.
type Row struct {
	Kind  RowKind
	Left  string
	Right string
}

func (Paragraph) blockKind() string     { return "paragraph" }
func (SectionHeader) blockKind() string { return "section_header" }
func (Row) blockKind() string           { return "row" }

// Document is the ordered block sequence for one resume, consumed by a
// rendering backend. A Document is created fresh per request and never
// shared between requests.
type Document []Block
