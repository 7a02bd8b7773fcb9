package recognizer

import (
	"encoding/json"
	"fmt"

	vosk "github.com/alphacep/vosk-api/go"
)

// Vosk runs a local Kaldi model through the vosk-api bindings.
type Vosk struct {
	model *vosk.VoskModel
	rec   *vosk.VoskRecognizer
}

// NewVosk loads the model at modelPath and builds a recognizer for the
// given sample rate. Model loading is the expensive step; failures here
// are fatal for startup and not retried.
func NewVosk(modelPath string, sampleRate int) (*Vosk, error) {
	vosk.SetLogLevel(-1)

	model, err := vosk.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading vosk model %q: %w", modelPath, err)
	}
	rec, err := vosk.NewRecognizer(model, float64(sampleRate))
	if err != nil {
		model.Free()
		return nil, fmt.Errorf("creating vosk recognizer: %w", err)
	}
	return &Vosk{model: model, rec: rec}, nil
}

func (v *Vosk) AcceptWaveform(chunk []byte) bool {
	return v.rec.AcceptWaveform(chunk) != 0
}

func (v *Vosk) Result() (Result, error) {
	return decodeResult(v.rec.Result())
}

func (v *Vosk) PartialResult() (Partial, error) {
	var p Partial
	if err := json.Unmarshal(v.rec.PartialResult(), &p); err != nil {
		return Partial{}, fmt.Errorf("decoding partial result: %w", err)
	}
	return p, nil
}

func (v *Vosk) Close() {
	v.rec.Free()
	v.model.Free()
}

// decodeResult parses the engine's JSON result object. A missing text
// field decodes as the empty string, matching the boundary contract.
func decodeResult(raw []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return Result{}, fmt.Errorf("decoding recognizer result: %w", err)
	}
	return r, nil
}
