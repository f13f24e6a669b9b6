// Package encoder implements the Public Encoder Facade: the single
// end-to-end entry point that orchestrates C1-C7 (spec.md §4.8). It is the
// only package callers such as the out-of-scope "PromptShield" HTTP
// wrapper import.
package encoder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ptil-org/ptil/pkg/analyzer"
	"github.com/ptil-org/ptil/pkg/assembler"
	"github.com/ptil-org/ptil/pkg/csc"
	"github.com/ptil-org/ptil/pkg/meta"
	"github.com/ptil-org/ptil/pkg/ops"
	"github.com/ptil-org/ptil/pkg/roles"
	"github.com/ptil-org/ptil/pkg/rootmap"
	"github.com/ptil-org/ptil/pkg/serializer"
)

// Encoder is pure and stateless after New returns (spec.md §5): every table
// it wraps -- the language marker tables, the predicate dictionary, the
// hedge/evidential index -- is read-only from this point on, so one
// Encoder may be shared across concurrent callers without external
// synchronization.
type Encoder struct {
	lang     string
	analyzer *analyzer.Analyzer
	rootMap  *rootmap.Mapper
	meta     *meta.Detector
	diag     *slog.Logger
}

// WithDiagnosticLogger attaches an optional diagnostic channel (spec.md §7):
// a logger that records InternalDegradation events -- a sentence with no
// tokens, a clause with no resolvable predicate -- without surfacing them as
// errors. Construct the logger with logging.NewDiagnosticLogger for a
// size-rotated on-disk record, or pass any other *slog.Logger. Encoders
// built without this option diagnose silently, as before.
func WithDiagnosticLogger(logger *slog.Logger) func(*Encoder) {
	return func(e *Encoder) {
		e.diag = logger
	}
}

// New constructs an Encoder for lang (one of the languages documented in
// pkg/analyzer: en, es, fr, de, it). Every failure here is a construction-
// time ErrParserUnavailable (spec.md §7): once New returns successfully,
// Encode never fails on a recoverable per-sentence fault.
func New(lang string, opts ...func(*Encoder)) (*Encoder, error) {
	a, err := analyzer.New(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParserUnavailable, err)
	}

	rm, err := rootmap.New(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParserUnavailable, err)
	}

	md, err := meta.New(lang, a.HedgeWords(), a.EvidentialWords())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParserUnavailable, err)
	}

	e := &Encoder{lang: lang, analyzer: a, rootMap: rm, meta: md}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Lang reports the language this Encoder was constructed for.
func (e *Encoder) Lang() string {
	return e.lang
}

// Encode runs the full C1-C6 pipeline over text and returns one CSC per
// predicate found, in textual order (spec.md §4.8). Empty text yields an
// empty, non-nil-error list (spec.md §8, scenario 6) rather than
// ErrInvalidInput: only a caller-supplied invalid format name is surfaced
// as an error from this package.
func (e *Encoder) Encode(text string) ([]csc.CSC, error) {
	var out []csc.CSC

	for _, sentence := range splitSentences(text) {
		cscs, err := e.encodeSentence(sentence)
		if err != nil {
			return nil, err
		}
		out = append(out, cscs...)
	}

	return out, nil
}

func (e *Encoder) encodeSentence(sentence string) ([]csc.CSC, error) {
	analysis, err := e.analyzer.Analyze(sentence)
	if err != nil {
		// analyzer.Analyze never errors today, but a future parser backend
		// might surface a per-call fault; treat it as InternalDegradation
		// (spec.md §7) rather than propagating.
		e.logDegradation("analyzer returned an error, skipping sentence", "sentence", sentence, "error", err)
		return nil, nil
	}
	if len(analysis.Tokens) == 0 {
		e.logDegradation("sentence produced no tokens, skipping", "sentence", sentence)
		return nil, nil
	}

	sentenceMeta := e.meta.Detect(analysis)

	out := make([]csc.CSC, 0, len(analysis.Clauses))
	for _, clause := range analysis.Clauses {
		if clause.PredicateIdx < 0 {
			e.logDegradation("clause has no resolvable predicate, skipping", "sentence", sentence, "clauseStart", clause.Start, "clauseEnd", clause.End)
			continue
		}
		out = append(out, e.encodeClause(analysis, clause, sentenceMeta))
	}

	return out, nil
}

// encodeClause resolves one clause's ROOT (C2), then fans C3 (OPS) and C4
// (ROLES) out concurrently -- both consume only the analysis and the
// already-resolved root, never each other's output, matching spec.md §2's
// "C2, C3, C4, C5 in parallel logical order" -- and hands the result to C6.
// Grounded on the teacher's errgroup usage in pkg/rag/strategy/vector_store.go
// (g, _ := errgroup.WithContext(ctx); g.Go(...); g.Wait()).
func (e *Encoder) encodeClause(analysis analyzer.Analysis, clause analyzer.Clause, sentenceMeta csc.Meta) csc.CSC {
	predicate := clause.PredicateIdx
	lemma := ""
	if predicate < len(analysis.Lemmas) {
		lemma = analysis.Lemmas[predicate]
	}
	pos := analyzer.POS("")
	if predicate < len(analysis.POSTags) {
		pos = analysis.POSTags[predicate]
	}

	root := e.rootMap.MapRoot(lemma, pos, hasDirectObject(analysis, predicate))
	if root == csc.RootFallback && predicate < len(analysis.Tokens) {
		// the stemmed lemma can miss a dictionary entry keyed by the
		// surface form; retry with the lowercased token
		if surface := strings.ToLower(analysis.Tokens[predicate]); surface != lemma {
			root = e.rootMap.MapRoot(surface, pos, hasDirectObject(analysis, predicate))
		}
	}

	var opsSeq []csc.Operator
	var roleMap map[csc.Role]csc.Entity

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		opsSeq = ops.Extract(analysis, clause)
		return nil
	})
	g.Go(func() error {
		roleMap = roles.Bind(analysis, predicate, root)
		return nil
	})
	_ = g.Wait() // both goroutines are pure and never return an error

	m := sentenceMeta
	return assembler.Assemble(root, opsSeq, roleMap, &m)
}

// logDegradation records an InternalDegradation event (spec.md §7) on the
// optional diagnostic channel. It never influences the returned CSC list or
// serialization; an Encoder built without WithDiagnosticLogger simply drops
// the event.
func (e *Encoder) logDegradation(msg string, args ...any) {
	if e.diag == nil {
		return
	}
	e.diag.Debug(msg, args...)
}

func hasDirectObject(analysis analyzer.Analysis, predicate int) bool {
	for _, arc := range analysis.DependentsOf(predicate) {
		if arc.Relation == analyzer.RelDObj {
			return true
		}
	}
	return false
}

// EncodeAndSerialize runs Encode and renders every resulting CSC under
// format, joining multiple predicates' serializations with a single space
// (spec.md §4.8, §6).
func (e *Encoder) EncodeAndSerialize(text string, format serializer.Format) (string, error) {
	cscs, err := e.Encode(text)
	if err != nil {
		return "", err
	}
	if len(cscs) == 0 {
		return "", nil
	}

	parts := make([]string, len(cscs))
	for i, c := range cscs {
		s, err := serializer.Serialize(c, format)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		parts[i] = s
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out, nil
}

// EncodeForTraining renders text into one of the three training layouts
// config.FormatType selects (spec.md §4.8, §6). The CSC half of every
// layout is always the verbose serialization: the training corpus format
// is meant to be read by both a human reviewer and a tokenizer, and
// verbose is the only format that keeps field names legible.
func (e *Encoder) EncodeForTraining(text string, cfg TrainingConfig) (string, error) {
	serialized, err := e.EncodeAndSerialize(text, serializer.FormatVerbose)
	if err != nil {
		return "", err
	}
	return renderTraining(serialized, text, cfg)
}
