package config

import (
	"time"

	proposal "github.com/alnah/go-proposal"
)

// GeneratorOptions maps the configuration onto generator options. A zero
// timeout keeps the generator default.
func (c *Config) GeneratorOptions(now func() time.Time, timeout time.Duration) []proposal.Option {
	opts := []proposal.Option{
		proposal.WithAssetPath(c.Assets.BasePath),
		proposal.WithDate(c.Document.Date),
		proposal.WithMaxLines(c.Limits.MaxLines),
		proposal.WithMaxPages(c.Limits.MaxPages),
		proposal.WithBrand(proposal.Brand{
			Name:        c.Brand.Name,
			Tagline:     c.Brand.Tagline,
			PresentedBy: c.Brand.PresentedBy,
			FooterURL:   c.Brand.FooterURL,
		}),
		proposal.WithCover(proposal.Cover{
			TitleLines: c.Cover.TitleLines,
			Subtitle:   c.Cover.Subtitle,
		}),
		proposal.WithTeam(c.Team.toTeam()),
	}
	if now != nil {
		opts = append(opts, proposal.WithClock(now))
	}
	if c.Client.DefaultName != "" {
		opts = append(opts, proposal.WithDefaultClientName(c.Client.DefaultName))
	}
	if timeout > 0 {
		opts = append(opts, proposal.WithTimeout(timeout))
	}
	return opts
}

func (t TeamConfig) toTeam() proposal.Team {
	team := proposal.Team{Heading: t.Heading, Intro: t.Intro}
	for _, m := range t.Members {
		team.Members = append(team.Members, proposal.TeamMember{Name: m.Name, Role: m.Role})
	}
	return team
}
