package layout

import "strings"

// sectionVocabulary lists the recognized section headers. A line is a
// header only when its uppercased form equals an entry exactly; substring
// matches like "Profile Summary" fall through to plain paragraphs.
var sectionVocabulary = []string{
	"PROFILE",
	"EMPLOYMENT HISTORY",
	"EDUCATION",
	"SKILLS",
	"INTERNSHIPS",
	"REFERENCES",
}

// recordSections are the sections whose pipe-delimited lines become
// two-column record rows. A pipe anywhere else means nothing.
var recordSections = map[string]bool{
	"EMPLOYMENT HISTORY": true,
	"EDUCATION":          true,
	"INTERNSHIPS":        true,
}

// headerStyles are applied positionally to the first up-to-three lines.
var headerStyles = []Style{StyleName, StyleTitle, StyleContact}

// Format parses cleaned resume text into a Document.
//
// The first up-to-three lines are consumed unconditionally as name, title
// and contact header paragraphs. Remaining lines are classified by a
// single-variable section state machine: the current section changes only
// when a line from the section vocabulary is encountered, and it decides
// whether pipe-delimited and colon-delimited lines become two-column rows
// or plain paragraphs.
func Format(text string) Document {
	lines := splitLines(text)
	doc := Document{}

	i := 0
	for _, style := range headerStyles {
		if i >= len(lines) {
			break
		}
		doc = append(doc, Paragraph{Text: lines[i], Style: style})
		i++
	}

	currentSection := ""
	for ; i < len(lines); i++ {
		line := lines[i]

		if section, ok := matchSectionHeader(line); ok {
			currentSection = section
			doc = append(doc, SectionHeader{Title: section})
			continue
		}

		switch {
		case recordSections[currentSection] && strings.Contains(line, "|"):
			parts := strings.Split(line, "|")
			for j := range parts {
				parts[j] = strings.TrimSpace(parts[j])
			}
			doc = append(doc, Row{
				Kind:  RowRecord,
				Left:  parts[0],
				Right: strings.Join(parts[1:], " | "),
			})
		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-"):
			doc = append(doc, Paragraph{
				Text:  strings.TrimSpace(strings.TrimLeft(line, "•- ")),
				Style: StyleBullet,
			})
		case currentSection == "SKILLS" && strings.Contains(line, ":"):
			label, list, _ := strings.Cut(line, ":")
			doc = append(doc, Row{
				Kind:  RowSkill,
				Left:  strings.TrimSpace(label) + ":",
				Right: strings.TrimSpace(list),
			})
		default:
			doc = append(doc, Paragraph{Text: line, Style: StyleBody})
		}
	}

	return doc
}

// matchSectionHeader reports whether line is a section header, returning
// the canonical uppercased section name.
func matchSectionHeader(line string) (string, bool) {
	upper := strings.ToUpper(line)
	for _, section := range sectionVocabulary {
		if upper == section {
			return section, true
		}
	}
	return "", false
}

// splitLines splits text into trimmed, non-empty lines, preserving order.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
