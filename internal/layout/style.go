package layout

// Role names a paragraph style.
type Role int

const (
	RoleBody Role = iota
	RoleBullet
	RoleHeading1
	RoleHeading2
	RoleHeading3
	RoleCoverTitle
	RoleCoverSubtitle
	RoleTeamName
	RoleTeamRole

	numRoles
)

// Style is the fixed typography of a Role. Bold styles render every span in
// the bold face; regular styles switch to bold only for bold spans.
type Style struct {
	Bold        bool
	Size        float64
	Leading     float64
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
	Uppercase   bool

	// Background tint drawn behind the paragraph, padded by Padding on
	// every side. Only meaningful when HasBackground is set.
	HasBackground bool
	Background    Color
	Padding       float64
}

var styles = [...]Style{
	RoleBody:          {Size: 11, Leading: 16, Color: ColorDark, SpaceAfter: 10},
	RoleBullet:        {Size: 11, Leading: 16, Color: ColorDark, SpaceAfter: 10},
	RoleHeading1:      {Bold: true, Size: 24, Leading: 29, Color: ColorPrimary, SpaceBefore: 20, SpaceAfter: 10, Uppercase: true},
	RoleHeading2:      {Bold: true, Size: 14, Leading: 17, Color: ColorDark, SpaceBefore: 15, SpaceAfter: 8, HasBackground: true, Background: ColorLight, Padding: 5},
	RoleHeading3:      {Bold: true, Size: 14, Leading: 17, Color: ColorDark, SpaceBefore: 15, SpaceAfter: 8, HasBackground: true, Background: ColorLight, Padding: 5},
	RoleCoverTitle:    {Bold: true, Size: 48, Leading: 55, Color: ColorWhite, SpaceAfter: 10},
	RoleCoverSubtitle: {Bold: true, Size: 14, Leading: 17, Color: ColorWhite, SpaceBefore: 10},
	RoleTeamName:      {Bold: true, Size: 10, Leading: 12, Color: ColorPrimary},
	RoleTeamRole:      {Size: 10, Leading: 12, Color: ColorPrimary},
}

var (
	_ [len(styles) - int(numRoles)]struct{}
	_ [int(numRoles) - len(styles)]struct{}
)

// StyleOf returns the style for r. Unknown roles get the body style.
func StyleOf(r Role) Style {
	if r < 0 || r >= numRoles {
		return styles[RoleBody]
	}
	return styles[r]
}

// font returns the face for a span with the given bold flag.
func (s Style) font(bold bool) Font {
	if s.Bold || bold {
		return FontBold
	}
	return FontRegular
}

func (s Style) valid() bool {
	return s.Size > 0 && s.Leading > 0 && s.Padding >= 0
}
