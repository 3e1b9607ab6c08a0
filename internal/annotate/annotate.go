// Package annotate runs the filter-directed annotation pass over a token
// sequence.
package annotate

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"jimaku/internal/filter"
	"jimaku/internal/token"
)

// Phonetizer renders a surface form phonetically. An empty result with a nil
// error means no rendering is available.
type Phonetizer interface {
	Phonetize(ctx context.Context, surface string) (string, error)
}

// Dictionary returns translation candidates for a dictionary form and token
// category, ordered by relevance.
type Dictionary interface {
	Lookup(ctx context.Context, form string, cat token.Category) ([]token.Candidate, error)
}

// Annotator decorates tokens with phonetic renderings and translation
// candidates as directed by the filter configuration. A nil collaborator
// downgrades the corresponding annotation to absent.
type Annotator struct {
	Workers int // fan-out width of AnnotateAll; defaults to the CPU count

	cfg  filter.Config
	phon Phonetizer
	dict Dictionary
	log  *slog.Logger
}

// New returns an Annotator. phon and dict may be nil.
func New(cfg filter.Config, phon Phonetizer, dict Dictionary, log *slog.Logger) *Annotator {
	if log == nil {
		log = slog.Default()
	}
	return &Annotator{cfg: cfg, phon: phon, dict: dict, log: log}
}

// Annotate annotates a single token. Collaborator failures are logged and
// leave the affected annotation absent; they never fail the token itself.
func (a *Annotator) Annotate(ctx context.Context, tok token.Token) token.Annotated {
	ann := token.Annotated{Token: tok, Action: a.cfg.Classify(tok)}
	switch ann.Action {
	case token.ActionPhoneticOnly:
		ann.Phonetic = a.phonetize(ctx, tok)
	case token.ActionSuggest:
		ann.Phonetic = a.phonetize(ctx, tok)
		ann.Candidates = a.lookup(ctx, tok)
	}
	return ann
}

// AnnotateAll annotates the sequence in order. Tokens are independent, so the
// pass fans out across a bounded worker group; results keep their positions.
// The only error is cancellation of ctx.
func (a *Annotator) AnnotateAll(ctx context.Context, toks []token.Token) ([]token.Annotated, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	out := make([]token.Annotated, len(toks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())
	for i, tok := range toks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = a.Annotate(gctx, tok)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	return out, nil
}

func (a *Annotator) workers() int {
	if a.Workers > 0 {
		return a.Workers
	}
	return runtime.NumCPU()
}

func (a *Annotator) phonetize(ctx context.Context, tok token.Token) string {
	if a.phon == nil {
		return ""
	}
	p, err := a.phon.Phonetize(ctx, tok.Surface)
	if err != nil {
		a.log.Warn("phonetizer failed, leaving token unannotated",
			"token", tok.Surface, "position", tok.Position, "error", err)
		return ""
	}
	return p
}

func (a *Annotator) lookup(ctx context.Context, tok token.Token) []token.Candidate {
	if a.dict == nil {
		return nil
	}
	cands, err := a.dict.Lookup(ctx, tok.DictForm(), tok.Category)
	if err != nil {
		a.log.Warn("dictionary lookup failed, leaving token without candidates",
			"token", tok.Surface, "form", tok.DictForm(), "error", err)
		return nil
	}
	if len(cands) == 0 {
		a.log.Debug("no candidates", "token", tok.Surface, "form", tok.DictForm(), "category", tok.Category)
	}
	return cands
}
