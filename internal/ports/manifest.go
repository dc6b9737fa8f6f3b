package ports

import "modemfw/internal/types"

// ManifestSourcePort supplies decoded manifest data to the engine.
// Discovery of manifest paths belongs to the caller; implementations
// only decode what they are handed.
type ManifestSourcePort interface {
	LoadManifest(path string) (types.ManifestFile, error)
}
