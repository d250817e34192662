package service

import (
	"context"
	"errors"
	"testing"

	"cookia/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func TestTranslateToEnglish(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"already english", "chicken", "chicken"},
		{"trim and lower", "  Chicken\n", "chicken"},
		{"unicode", " ÑAME ", "ñame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCompleter{reply: tt.reply}
			svc := NewService(stub)

			got, err := svc.TranslateToEnglish(context.Background(), "pollo")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, stub.prompts, 1)
			assert.Contains(t, stub.prompts[0], "pollo")
		})
	}
}

func TestTranslateToSpanish(t *testing.T) {
	stub := &stubCompleter{reply: "\n  Pollo al curry \n"}
	svc := NewService(stub)

	got, err := svc.TranslateToSpanish(context.Background(), "Chicken curry")

	require.NoError(t, err)
	assert.Equal(t, "Pollo al curry", got)
	assert.Contains(t, stub.prompts[0], "Chicken curry")
}

func TestTranslateListToSpanish(t *testing.T) {
	stub := &stubCompleter{reply: "Pollo\r\n  Sal \n\n   \nPimienta\n"}
	svc := NewService(stub)

	got, err := svc.TranslateListToSpanish(context.Background(), []string{"Chicken", "Salt", "Pepper"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Pollo", "Sal", "Pimienta"}, got)
	assert.Contains(t, stub.prompts[0], "Chicken\nSalt\nPepper")
}

func TestTranslateListToSpanishShortReply(t *testing.T) {
	stub := &stubCompleter{reply: "Pollo"}
	svc := NewService(stub)

	got, err := svc.TranslateListToSpanish(context.Background(), []string{"Chicken", "Salt"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Pollo"}, got)
}

func TestClassifyDifficultyReturnsLiteralText(t *testing.T) {
	stub := &stubCompleter{reply: " Muy difícil \n"}
	svc := NewService(stub)

	got, err := svc.ClassifyDifficulty(context.Background(), "Hornear 3 horas")

	require.NoError(t, err)
	assert.Equal(t, "Muy difícil", got)
	assert.Contains(t, stub.prompts[0], "Hornear 3 horas")
}

func TestGenerateRecommendation(t *testing.T) {
	stub := &stubCompleter{reply: "Ideal para tu objetivo.\n"}
	svc := NewService(stub)

	got, err := svc.GenerateRecommendation(context.Background(), "Pollo al curry", "bajar de peso")

	require.NoError(t, err)
	assert.Equal(t, "Ideal para tu objetivo.", got)
	assert.Contains(t, stub.prompts[0], `"Pollo al curry"`)
	assert.Contains(t, stub.prompts[0], `"bajar de peso"`)
}

func TestGenerateSubstitutions(t *testing.T) {
	stub := &stubCompleter{reply: "- Pollo por pavo\r\n- Sal por hierbas\n\n -\n  Crema por yogur  \n"}
	svc := NewService(stub)

	got, err := svc.GenerateSubstitutions(context.Background(), []string{"Pollo", "Sal", "Crema"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Pollo por pavo", "Sal por hierbas", "Crema por yogur"}, got)
	assert.Contains(t, stub.prompts[0], "Pollo, Sal, Crema")
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	upstream := common.NewUpstreamError("groq", 500, "boom")
	stub := &stubCompleter{err: upstream}
	svc := NewService(stub)
	ctx := context.Background()

	_, err := svc.TranslateToEnglish(ctx, "pollo")
	assert.True(t, errors.Is(err, upstream))

	_, err = svc.TranslateListToSpanish(ctx, []string{"a"})
	assert.True(t, errors.Is(err, upstream))

	_, err = svc.GenerateSubstitutions(ctx, []string{"a"})
	assert.Equal(t, common.KindUpstream, common.KindOf(err))
}
