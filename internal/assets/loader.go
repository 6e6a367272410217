package assets

// AssetLoader defines the contract for loading proposal templates, CSS styles
// and HTML fragments. Implementations may load from embedded assets,
// filesystem, object storage, database, etc.
type AssetLoader interface {
	// LoadProposal loads a markdown proposal template by category slug
	// (without .md extension).
	// Returns ErrProposalNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadProposal(name string) (string, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}
