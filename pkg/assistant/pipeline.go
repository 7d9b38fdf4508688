package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/swasthya-saarthi/companion/pkg/lexicon"
	"github.com/swasthya-saarthi/companion/pkg/speech"
	"github.com/swasthya-saarthi/companion/pkg/triage"
)

// Result is the outcome of processing one finalized transcript.
type Result struct {
	Transcript string
	Normalized string
	Symptoms   []triage.Symptom
	Matches    []triage.Condition
	Reply      string
}

// Pipeline runs a finalized transcript through normalization, symptom
// detection, condition matching, and reply composition. Process is pure
// and reentrant; Submit adds the debounce window speech capture needs so
// a transcript superseded by a newer one is never processed.
type Pipeline struct {
	lex      *lexicon.Lexicon
	catalog  *triage.Catalog
	composer *Composer
	synth    speech.Synthesizer
	debounce time.Duration

	mu      sync.Mutex
	pending *time.Timer
}

func NewPipeline(lex *lexicon.Lexicon, catalog *triage.Catalog, synth speech.Synthesizer, debounce time.Duration) *Pipeline {
	if synth == nil {
		synth = speech.NopSynthesizer{}
	}
	return &Pipeline{
		lex:      lex,
		catalog:  catalog,
		composer: NewComposer(catalog),
		synth:    synth,
		debounce: debounce,
	}
}

// Process interprets one transcript synchronously.
func (p *Pipeline) Process(transcript string) Result {
	normalized := p.lex.Normalize(transcript)
	detected := p.catalog.Detect(normalized)

	ids := make([]string, len(detected))
	for i, s := range detected {
		ids[i] = s.ID
	}

	return Result{
		Transcript: transcript,
		Normalized: normalized,
		Symptoms:   detected,
		Matches:    p.catalog.Match(ids),
		Reply:      p.composer.Compose(detected),
	}
}

// Submit schedules the transcript for processing after the debounce
// window. A transcript submitted while another is pending supersedes it;
// the superseded transcript is dropped without being processed. The
// reply is spoken through the synthesizer and delivered to onResult.
func (p *Pipeline) Submit(ctx context.Context, transcript string, language string, onResult func(Result)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending != nil {
		p.pending.Stop()
	}

	p.pending = time.AfterFunc(p.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		result := p.Process(transcript)
		p.synth.Speak(ctx, result.Reply, language)
		if onResult != nil {
			onResult(result)
		}
	})
}

// Cancel drops any pending transcript.
func (p *Pipeline) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}
