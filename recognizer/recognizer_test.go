package recognizer

import "testing"

func TestDecodeResult(t *testing.T) {
	r, err := decodeResult([]byte(`{"text": "turn left now"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Text != "turn left now" {
		t.Fatalf("text = %q", r.Text)
	}
}

func TestDecodeResultEmptyText(t *testing.T) {
	r, err := decodeResult([]byte(`{"text": ""}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Text != "" {
		t.Fatalf("text = %q, want empty", r.Text)
	}
}

func TestDecodeResultMissingField(t *testing.T) {
	r, err := decodeResult([]byte(`{}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Text != "" {
		t.Fatalf("text = %q, want empty", r.Text)
	}
}

func TestDecodeResultMalformed(t *testing.T) {
	if _, err := decodeResult([]byte(`{"text":`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFakeFinalizesOnSchedule(t *testing.T) {
	f := NewFake(3, "go left", "stop")
	chunk := make([]byte, 64)

	var finals []string
	for i := 0; i < 10; i++ {
		if f.AcceptWaveform(chunk) {
			r, err := f.Result()
			if err != nil {
				t.Fatalf("result: %v", err)
			}
			finals = append(finals, r.Text)
		}
	}

	if len(finals) != 2 || finals[0] != "go left" || finals[1] != "stop" {
		t.Fatalf("finals = %v", finals)
	}
	if !f.Exhausted() {
		t.Fatal("fake should be exhausted after the script")
	}
}

func TestFakePartialBeforeBoundary(t *testing.T) {
	f := NewFake(2, "attack")
	chunk := make([]byte, 64)

	if f.AcceptWaveform(chunk) {
		t.Fatal("first chunk should not finalize")
	}
	p, err := f.PartialResult()
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	if p.Partial != "attack" {
		t.Fatalf("partial = %q", p.Partial)
	}

	if !f.AcceptWaveform(chunk) {
		t.Fatal("second chunk should finalize")
	}
	p, _ = f.PartialResult()
	if p.Partial != "" {
		t.Fatalf("partial after boundary = %q, want empty", p.Partial)
	}
}

func TestFakeSilentWhenExhausted(t *testing.T) {
	f := NewFake(1, "stop")
	chunk := make([]byte, 64)
	if !f.AcceptWaveform(chunk) {
		t.Fatal("scripted utterance should finalize")
	}
	f.Result()
	for i := 0; i < 5; i++ {
		if f.AcceptWaveform(chunk) {
			t.Fatal("exhausted fake should not finalize")
		}
	}
}
