package assets

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

// ParticleDir is where particle folders live, one folder per type holding
// frames named 0.png, 1.png, ...
const ParticleDir = "particles"

// ParticleCatalog knows the frame count of each particle type.
type ParticleCatalog struct {
	frames map[string]int
}

// NewParticleCatalog creates a catalog from known frame counts.
func NewParticleCatalog(counts map[string]int) *ParticleCatalog {
	c := &ParticleCatalog{frames: make(map[string]int, len(counts))}
	for t, n := range counts {
		if n > 0 {
			c.frames[t] = n
		}
	}
	return c
}

// FrameCount implements particle.Catalog.
func (c *ParticleCatalog) FrameCount(particleType string) (int, bool) {
	n, ok := c.frames[particleType]
	return n, ok
}

// Types returns the registered types in name order.
func (c *ParticleCatalog) Types() []string {
	types := make([]string, 0, len(c.frames))
	for t := range c.frames {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Paths lists every frame image of every type.
func (c *ParticleCatalog) Paths() []string {
	var paths []string
	for _, t := range c.Types() {
		for i := 0; i < c.frames[t]; i++ {
			paths = append(paths, ParticleFramePath(t, i))
		}
	}
	return paths
}

// ParticleFramePath returns the image path of frame i of a particle type.
func ParticleFramePath(particleType string, i int) string {
	return path.Join(ParticleDir, particleType, strconv.Itoa(i)+".png")
}

// LoadReport is the outcome of loading one particle folder.
type LoadReport struct {
	Type   string
	Frames int
	Err    error
}

// LoadParticles scans the particle folders of fsys. Folders that fail are
// reported and left out of the catalog; a missing particle directory yields
// an empty catalog.
func LoadParticles(fsys fs.FS) (*ParticleCatalog, []LoadReport) {
	catalog := NewParticleCatalog(nil)
	entries, err := fs.ReadDir(fsys, ParticleDir)
	if err != nil {
		return catalog, nil
	}

	var reports []LoadReport
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, err := countFrames(fsys, e.Name())
		reports = append(reports, LoadReport{Type: e.Name(), Frames: n, Err: err})
		if err == nil {
			catalog.frames[e.Name()] = n
		}
	}
	return catalog, reports
}

// countFrames checks that a folder holds exactly 0.png..n-1.png.
func countFrames(fsys fs.FS, particleType string) (int, error) {
	entries, err := fs.ReadDir(fsys, path.Join(ParticleDir, particleType))
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", particleType, err)
	}

	var indices []int
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".png") {
			continue
		}
		i, err := strconv.Atoi(strings.TrimSuffix(name, ".png"))
		if err != nil || i < 0 {
			return 0, fmt.Errorf("%w: unexpected frame %s/%s", ErrAssetMissing, particleType, name)
		}
		indices = append(indices, i)
	}
	if len(indices) == 0 {
		return 0, fmt.Errorf("%w: no frames for %s", ErrAssetMissing, particleType)
	}

	sort.Ints(indices)
	for want, got := range indices {
		if got != want {
			return 0, fmt.Errorf("%w: %s frame %d", ErrAssetMissing, particleType, want)
		}
	}
	return len(indices), nil
}
