package mapping

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// DefaultFiles are the auxiliary dictionaries looked up by a provider, relative to its root.
var DefaultFiles = []struct {
	Source Source
	Name   string
}{
	{SourceCharacters, "characters.json"},
	{SourceWeapons, "weapons.json"},
	{SourceEchoes, "echoes.json"},
	{SourceSonataNames, "sonataName.json"},
	{SourceItems, "items.json"},
	{SourceEchoStats, "echoStats.json"},
}

// IconManifests are tried in order; the first one found is used.
var IconManifests = []string{
	"Images/CharacterIcons/manifest.json",
	"CharacterIconsManifest.json",
}

// IconDir is listed for portrait files when no manifest exists.
const IconDir = "Images/CharacterIcons"

// Provider loads the auxiliary mapping payloads from somewhere.
type Provider interface {
	// Name describes the provider for logs.
	Name() string
	// Load reads every available payload. It fails only when the provider itself is unreachable.
	Load(ctx context.Context) (*Loaded, error)
}

// Loaded is the outcome of a provider load.
type Loaded struct {
	Raw RawSet
	// Failed maps a file name to the reason it could not be used. Missing files are not failures.
	Failed map[string]string
}

// fetchFunc returns the bytes of name; found is false when the file does not exist.
type fetchFunc func(ctx context.Context, name string) (data []byte, found bool, err error)

// listFunc returns the portrait filenames available under IconDir.
type listFunc func(ctx context.Context) ([]string, error)

// loadAll fetches the default files concurrently, then resolves the icon manifest.
func loadAll(ctx context.Context, fetch fetchFunc, list listFunc) *Loaded {
	out := &Loaded{Raw: RawSet{}, Failed: map[string]string{}}
	var mu sync.Mutex

	record := func(src Source, name string, data []byte) {
		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			mu.Lock()
			out.Failed[name] = fmt.Sprintf("invalid json: %v", err)
			mu.Unlock()
			return
		}
		mu.Lock()
		out.Raw[src] = payload
		mu.Unlock()
	}

	var g errgroup.Group
	for _, f := range DefaultFiles {
		g.Go(func() error {
			data, found, err := fetch(ctx, f.Name)
			if err != nil {
				mu.Lock()
				out.Failed[f.Name] = err.Error()
				mu.Unlock()
				return nil
			}
			if found {
				record(f.Source, f.Name, data)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, name := range IconManifests {
		data, found, err := fetch(ctx, name)
		if err != nil || !found {
			continue
		}
		record(SourceCharacterIcons, name, data)
		if _, ok := out.Raw[SourceCharacterIcons]; ok {
			return out
		}
	}

	if list != nil {
		files, err := list(ctx)
		if err != nil {
			out.Failed[IconDir] = err.Error()
		} else if len(files) > 0 {
			names := make([]any, 0, len(files))
			for _, f := range files {
				names = append(names, basename(f))
			}
			out.Raw[SourceCharacterIcons] = map[string]any{"files": names}
		}
	}
	return out
}
