// Package assets provides proposal markdown templates, the HTML preview
// stylesheet, and the preview header template.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used when a custom asset path is configured.
// It tries the FilesystemLoader first and falls back to the EmbeddedLoader
// when an asset is not found, so a directory may override a single category
// template while keeping the rest of the defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── proposals/
//	│   └── {category}.md        # ai.md, mobile.md, enterprise.md, web.md, general.md
//	├── styles/
//	│   └── {name}.css           # HTML preview stylesheet
//	└── templates/
//	    └── {name}.html          # HTML preview fragments
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
