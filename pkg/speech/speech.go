// Package speech defines the voice collaborator contracts. Capture and
// synthesis are provided by the surrounding platform; the assessment
// pipeline only ever sees finalized transcripts and hands back text to
// speak.
package speech

import "context"

// Options carries the callbacks a Recognizer fires over the lifetime of
// a capture session. OnResult may fire repeatedly with incremental
// transcripts; the final invocation before OnEnd carries the full text.
type Options struct {
	Language string
	OnStart  func()
	OnResult func(transcript string)
	OnEnd    func()
	OnError  func(err error)
}

// Recognizer captures spoken input and reports transcripts through the
// session callbacks.
type Recognizer interface {
	Start() error
	Stop()
	SetLanguage(tag string)
}

// Synthesizer speaks text aloud. Speak is fire-and-forget: callers do
// not await a result and failures are the synthesizer's to report.
type Synthesizer interface {
	Speak(ctx context.Context, text string, language string)
}

// NopSynthesizer discards speech output.
type NopSynthesizer struct{}

func (NopSynthesizer) Speak(ctx context.Context, text string, language string) {}

// Language pairs a BCP 47 tag with a display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages returns the capture/synthesis languages the companion
// supports.
func Languages() []Language {
	return []Language{
		{Code: "en-US", Name: "English"},
		{Code: "hi-IN", Name: "Hindi"},
		{Code: "bn-IN", Name: "Bengali"},
		{Code: "te-IN", Name: "Telugu"},
		{Code: "ta-IN", Name: "Tamil"},
		{Code: "mr-IN", Name: "Marathi"},
		{Code: "gu-IN", Name: "Gujarati"},
		{Code: "kn-IN", Name: "Kannada"},
		{Code: "pa-IN", Name: "Punjabi"},
		{Code: "ml-IN", Name: "Malayalam"},
		{Code: "or-IN", Name: "Odia"},
		{Code: "as-IN", Name: "Assamese"},
		{Code: "ur-IN", Name: "Urdu"},
	}
}

// Supported reports whether the tag is in the supported language set.
func Supported(tag string) bool {
	for _, l := range Languages() {
		if l.Code == tag {
			return true
		}
	}
	return false
}
