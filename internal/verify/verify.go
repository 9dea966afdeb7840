// Package verify checks that the images a catalog points at are present
// and decode as WebP.
package verify

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/image/webp"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// maxHeaderBytes bounds how much of each file is read to decode its header.
const maxHeaderBytes = 64 << 10

// Kind classifies a Problem.
type Kind string

const (
	KindMissing Kind = "missing"
	KindCorrupt Kind = "corrupt"
)

// Problem is one file that failed verification.
type Problem struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
	Err  string `json:"error"`
}

// Report is the outcome of a verification run.
type Report struct {
	Checked  int       `json:"checked"`
	Problems []Problem `json:"problems"`
}

// OK reports whether every file decoded.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

// Verifier reads thumbnails and numbered images from a source.
type Verifier struct {
	Source   catalog.Source
	Observer catalog.Observer
	Log      zerolog.Logger
}

// New creates a Verifier for src.
func New(src catalog.Source) *Verifier {
	return &Verifier{Source: src, Log: zerolog.Nop()}
}

// Verify decodes the header of every thumbnail and image in cat, one file
// at a time. Files that fail are collected in the report; only
// cancellation aborts the run.
func (v *Verifier) Verify(ctx context.Context, cat *catalog.Catalog) (*Report, error) {
	report := &Report{}

	if v.Observer != nil {
		v.Observer.Start(cat.Len())
		defer v.Observer.Finish()
	}

	for i, it := range cat.Items {
		paths := append([]string{it.Thumbnail}, it.Images...)
		for _, p := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report.Checked++
			if prob := v.check(ctx, it.ID, p); prob != nil {
				v.Log.Debug().Str("id", it.ID).Str("path", p).Str("kind", string(prob.Kind)).Msg(prob.Err)
				report.Problems = append(report.Problems, *prob)
			}
		}
		if v.Observer != nil {
			v.Observer.Update(i+1, it.ID)
		}
	}

	v.Log.Info().Int("checked", report.Checked).Int("problems", len(report.Problems)).Msg("verification finished")
	return report, nil
}

func (v *Verifier) check(ctx context.Context, id, path string) *Problem {
	rc, err := v.Source.Open(ctx, path)
	if err != nil {
		return &Problem{ID: id, Path: path, Kind: KindMissing, Err: err.Error()}
	}
	defer rc.Close()

	cfg, err := webp.DecodeConfig(io.LimitReader(rc, maxHeaderBytes))
	if err != nil {
		return &Problem{ID: id, Path: path, Kind: KindCorrupt, Err: fmt.Sprintf("decoding webp: %v", err)}
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return &Problem{ID: id, Path: path, Kind: KindCorrupt, Err: "empty image"}
	}
	return nil
}
