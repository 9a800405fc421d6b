// Package registry keeps named images in memory.
//
// Names are case-insensitive. The registry owns its images: Add stores a
// private copy and Retrieve hands out an independent one, so callers can never
// reach a stored image through a reference they hold.
package registry

import (
	"fmt"
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// Registry is a name-keyed image store. It is safe for concurrent use.
type Registry struct {
	items *gocache.Cache
}

// New returns an empty registry. Entries never expire.
func New() *Registry {
	return &Registry{items: gocache.New(gocache.NoExpiration, 0)}
}

// key lowercases name. Surrounding spaces are significant.
func key(name string) (string, error) {
	k := strings.ToLower(name)
	if k == "" {
		return "", fmt.Errorf("%w: image name must not be empty", imaging.ErrInvalidArgument)
	}
	return k, nil
}

// Add stores a copy of img under name. Unless force is set, an existing entry
// with the same name is an error and the registry is left unchanged.
func (r *Registry) Add(name string, img *imaging.Image, force bool) error {
	k, err := key(name)
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("%w: image must not be nil", imaging.ErrInvalidArgument)
	}

	stored := img.Copy()
	if force {
		r.items.Set(k, stored, gocache.NoExpiration)
		return nil
	}
	if err := r.items.Add(k, stored, gocache.NoExpiration); err != nil {
		return fmt.Errorf("%w: image %q already exists", imaging.ErrInvalidArgument, k)
	}
	return nil
}

// Remove deletes name. Removing an absent name is a no-op.
func (r *Registry) Remove(name string) {
	k, err := key(name)
	if err != nil {
		return
	}
	r.items.Delete(k)
}

// Retrieve returns a copy of the image stored under name.
func (r *Registry) Retrieve(name string) (*imaging.Image, error) {
	k, err := key(name)
	if err != nil {
		return nil, err
	}
	v, ok := r.items.Get(k)
	if !ok {
		return nil, fmt.Errorf("%w: image %q not loaded", imaging.ErrInvalidArgument, k)
	}
	return v.(*imaging.Image).Copy(), nil
}

// Exists reports whether name is present.
func (r *Registry) Exists(name string) bool {
	k, err := key(name)
	if err != nil {
		return false
	}
	_, ok := r.items.Get(k)
	return ok
}

// Names returns the stored names, lowercased and sorted.
func (r *Registry) Names() []string {
	items := r.items.Items()
	names := make([]string, 0, len(items))
	for k := range items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (r *Registry) Len() int {
	return r.items.ItemCount()
}
