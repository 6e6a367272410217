package pipeline

import "github.com/alnah/go-proposal/internal/layout"

// Vertical gaps in points.
const (
	coverTopGap   = 40 * layout.MM
	coverTitleGap = 10 * layout.MM
	blankLineGap  = 5
	headingGap    = 5
	teamTableGap  = 10
)

// CoverContent is the text flowed into the cover frame.
type CoverContent struct {
	TitleLines []string
	Subtitle   string
}

// DefaultCover is the built-in cover text.
var DefaultCover = CoverContent{
	TitleLines: []string{"BUSINESS", "PROPOSAL"},
	Subtitle:   "CUSTOM SOLUTIONS FOR SUSTAINABLE SUCCESS",
}

// TeamMember is one column of the team table.
type TeamMember struct {
	Name string
	Role string
}

// TeamSection is appended to every document on its own page.
type TeamSection struct {
	Heading string
	Intro   string
	Members []TeamMember
}

// DefaultTeam is the built-in team section.
var DefaultTeam = TeamSection{
	Heading: "OUR TEAM",
	Intro:   "Meet the experts dedicated to your success.",
	Members: []TeamMember{
		{Name: "Sebastian Bennet", Role: "CEO"},
		{Name: "Hannah Morales", Role: "Project Manager"},
		{Name: "Juliana Silva", Role: "Marketing"},
	},
}

// BuildStory assembles the document: cover content on the Cover template,
// a switch to the Content template with a page break, one element per
// block, then a second page break and the team section.
func BuildStory(blocks []Block, cover CoverContent, team TeamSection) layout.Story {
	story := make(layout.Story, 0, len(blocks)+16)

	story = append(story, layout.Spacer{Height: coverTopGap})
	for _, line := range cover.TitleLines {
		story = append(story, plain(layout.RoleCoverTitle, line))
	}
	story = append(story,
		layout.Spacer{Height: coverTitleGap},
		plain(layout.RoleCoverSubtitle, cover.Subtitle),
		layout.NextTemplate{Kind: layout.TemplateContent},
		layout.PageBreak{},
	)

	for _, b := range blocks {
		story = append(story, blockElements(b)...)
	}

	story = append(story, layout.PageBreak{})
	story = append(story, teamElements(team)...)
	return story
}

// blockElements maps a parsed block to story elements. A Heading1 carries a
// small gap below it; Heading3 shares the Heading2 look through its style.
func blockElements(b Block) []layout.Element {
	switch b.Kind {
	case BlankSpacer:
		return []layout.Element{layout.Spacer{Height: blankLineGap}}
	case Heading1:
		return []layout.Element{paragraph(layout.RoleHeading1, b.Spans), layout.Spacer{Height: headingGap}}
	case Heading2:
		return []layout.Element{paragraph(layout.RoleHeading2, b.Spans)}
	case Heading3:
		return []layout.Element{paragraph(layout.RoleHeading3, b.Spans)}
	case BulletItem:
		return []layout.Element{paragraph(layout.RoleBullet, b.Spans)}
	default:
		return []layout.Element{paragraph(layout.RoleBody, b.Spans)}
	}
}

func teamElements(team TeamSection) []layout.Element {
	names := make([]string, len(team.Members))
	roles := make([]string, len(team.Members))
	for i, m := range team.Members {
		names[i], roles[i] = m.Name, m.Role
	}

	return []layout.Element{
		plain(layout.RoleHeading1, team.Heading),
		plain(layout.RoleBody, team.Intro),
		layout.Spacer{Height: teamTableGap},
		layout.Table{
			ColumnWidth: 50 * layout.MM,
			PadTop:      15,
			PadBottom:   3,
			PadX:        6,
			Rows: []layout.TableRow{
				{Role: layout.RoleTeamName, Cells: names},
				{Role: layout.RoleTeamRole, Cells: roles},
			},
		},
	}
}

func paragraph(role layout.Role, spans []Span) layout.Paragraph {
	runs := make([]layout.Run, len(spans))
	for i, s := range spans {
		runs[i] = layout.Run{Text: s.Text, Bold: s.Bold}
	}
	return layout.Paragraph{Role: role, Runs: runs}
}

func plain(role layout.Role, text string) layout.Paragraph {
	return layout.Paragraph{Role: role, Runs: []layout.Run{{Text: text}}}
}
