// Package assets provides the stylesheets applied to rendered markdown.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the GitHub markdown stylesheet and the local
// print overrides, embedded at compile time.
//
// FilesystemLoader allows users to override either stylesheet from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the style is not
// found there.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    ├── github-markdown.css
//	    └── default.css
//
// # Highlighting
//
// The code highlighting stylesheet is generated from a chroma style rather
// than stored as a file; see HighlightCSS.
package assets
