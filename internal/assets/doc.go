// Package assets provides the CSS styles embedded into standalone HTML output.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from {basePath}/styles/{name}.css
//	    └── AssetResolver     - custom first, embedded as fallback
//
// AssetResolver enables overriding a single style while keeping the others.
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
