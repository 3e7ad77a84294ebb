package tutor

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGen struct {
	text   string
	err    error
	prompt string
	block  bool
}

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestExplain_MissingKey(t *testing.T) {
	tu := New(nil, quiet(), 0)
	assert.False(t, tu.Available())
	assert.Equal(t, FallbackMissingKey, tu.Explain(context.Background(), Request{}))
}

func TestExplain_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGen
		want string
	}{
		{"error", &fakeGen{err: errors.New("dial tcp: refused")}, FallbackUnavailable},
		{"empty", &fakeGen{text: ""}, FallbackEmpty},
		{"whitespace", &fakeGen{text: " \n\t"}, FallbackEmpty},
		{"answer", &fakeGen{text: "  The flux is changing.\n"}, "The flux is changing."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := New(tt.gen, quiet(), 0)
			assert.Equal(t, tt.want, tu.Explain(context.Background(), Request{Turns: 5}))
		})
	}
}

func TestExplain_Timeout(t *testing.T) {
	tu := New(&fakeGen{block: true}, quiet(), 10*time.Millisecond)
	assert.Equal(t, FallbackUnavailable, tu.Explain(context.Background(), Request{}))
}

func TestExplain_SendsReadings(t *testing.T) {
	gen := &fakeGen{text: "ok"}
	New(gen, quiet(), 0).Explain(context.Background(), Request{EMF: -12.346, Flux: 60.65, Velocity: 150, Turns: 7})

	assert.Contains(t, gen.prompt, "Induced EMF: -12.35 Volts")
	assert.Contains(t, gen.prompt, "Magnetic Flux: 60.65 Weber")
	assert.Contains(t, gen.prompt, "Magnet Velocity: 150.00 units/s")
	assert.Contains(t, gen.prompt, "Number of Coil Turns: 7")
}

func TestFromKey_Empty(t *testing.T) {
	tu, err := FromKey(context.Background(), "", "gemini-2.5-flash", quiet(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, FallbackMissingKey, tu.Explain(context.Background(), Request{}))
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorIs(t, err, ErrMissingKey)
}
