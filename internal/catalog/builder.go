package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Observer receives progress while a catalog is built.
type Observer interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// Builder materializes a Catalog by probing the source's naming convention.
type Builder struct {
	Source      Source
	MappingFile string
	ImagesDir   string
	MaxImages   int
	Filter      IDFilter
	Observer    Observer
	Log         zerolog.Logger
}

// NewBuilder returns a Builder with the default naming convention.
func NewBuilder(src Source) *Builder {
	return &Builder{
		Source:      src,
		MappingFile: DefaultMappingFile,
		ImagesDir:   DefaultImagesDir,
		MaxImages:   DefaultMaxImages,
		Log:         zerolog.Nop(),
	}
}

// Build loads the mapping and probes every id in sorted order. Probes run
// one at a time across the whole build. A mapping load failure is returned
// as a *LoadError before any probe is issued.
func (b *Builder) Build(ctx context.Context) (*Catalog, error) {
	data, err := b.Source.ReadMapping(ctx, b.MappingFile)
	if err != nil {
		return nil, err
	}
	mapping, err := ParseMapping(data)
	if err != nil {
		return nil, &LoadError{Path: b.MappingFile, Err: err}
	}

	var ids []string
	for _, id := range mapping.IDs() {
		if !ValidID(id) {
			b.Log.Debug().Str("id", id).Msg("id is not a single path segment, skipping")
			continue
		}
		if b.Filter.Allows(id) {
			ids = append(ids, id)
		}
	}

	if b.Observer != nil {
		b.Observer.Start(len(ids))
		defer b.Observer.Finish()
	}

	items := make([]Item, 0, len(ids))
	for i, id := range ids {
		images, err := b.probe(ctx, id)
		if err == nil {
			// A probe cut short by cancellation reads as "missing".
			err = ctx.Err()
		}
		if err != nil {
			return nil, err
		}
		if b.Observer != nil {
			b.Observer.Update(i+1, id)
		}
		if len(images) == 0 {
			b.Log.Debug().Str("id", id).Msg("no numbered images, skipping")
			continue
		}
		items = append(items, Item{
			ID:        id,
			Thumbnail: ThumbnailPath(b.ImagesDir, id),
			Images:    images,
			Originals: mapping[id],
		})
	}

	b.Log.Info().Int("items", len(items)).Int("ids", len(ids)).Msg("catalog built")

	return &Catalog{
		BuildID: uuid.NewString(),
		BuiltAt: time.Now().UTC(),
		Source:  b.Source.String(),
		Items:   items,
	}, nil
}

// probe checks 1..MaxImages and stops at the first missing index.
func (b *Builder) probe(ctx context.Context, id string) ([]string, error) {
	max := b.MaxImages
	if max <= 0 {
		max = DefaultMaxImages
	}
	var images []string
	for n := 1; n <= max; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := ImagePath(b.ImagesDir, id, n)
		if !b.Source.Exists(ctx, path) {
			break
		}
		images = append(images, path)
	}
	return images, nil
}
