package mapping

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirProvider reads mapping files from a local data folder.
type DirProvider struct {
	Root string
}

// NewDirProvider creates a provider rooted at dir.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{Root: dir}
}

// Name returns the provider description.
func (p *DirProvider) Name() string {
	return "dir:" + p.Root
}

// Load reads the data folder.
func (p *DirProvider) Load(ctx context.Context) (*Loaded, error) {
	info, err := os.Stat(p.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("mapping dir %s is not a directory", p.Root)
	}
	return loadAll(ctx, p.fetch, p.listIcons), nil
}

func (p *DirProvider) fetch(_ context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(p.Root, filepath.FromSlash(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (p *DirProvider) listIcons(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(p.Root, filepath.FromSlash(IconDir)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".webp") {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// Missing returns the expected mapping files that are not present in the folder.
func (p *DirProvider) Missing(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(p.Root); err != nil {
		return nil, fmt.Errorf("failed to open mapping dir: %w", err)
	}

	var missing []string
	for _, f := range DefaultFiles {
		if _, found, _ := p.fetch(ctx, f.Name); !found {
			missing = append(missing, f.Name)
		}
	}

	for _, m := range IconManifests {
		if _, found, _ := p.fetch(ctx, m); found {
			return missing, nil
		}
	}
	icons, err := p.listIcons(ctx)
	if err != nil {
		return nil, err
	}
	if len(icons) == 0 {
		missing = append(missing, IconDir+"/")
	}
	return missing, nil
}
