package assets

// Built-in asset names.
const (
	DefaultStyleName      = "preview"
	DefaultHeaderTemplate = "header"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadProposal loads a proposal template by category slug using the
// embedded loader.
func LoadProposal(name string) (string, error) {
	return defaultLoader.LoadProposal(name)
}

// LoadStyle loads a CSS file by name using the embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML fragment by name using the embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
