package service

import (
	"context"
	"fmt"
	"strings"

	"cookia/internal/core/ai/provider"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service AI 服務：以提示模板包裝單一補全呼叫
type Service struct {
	completer provider.Completer
}

// NewService 創建 AI 服務
func NewService(completer provider.Completer) *Service {
	return &Service{completer: completer}
}

// TranslateToEnglish 將單一食材翻成英文，回傳去空白的小寫單字
func (s *Service) TranslateToEnglish(ctx context.Context, word string) (string, error) {
	prompt := fmt.Sprintf(`Traduce este ingrediente al inglés.
Responde únicamente con la palabra traducida, sin explicaciones.

%s`, word)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return Lower(strings.TrimSpace(text)), nil
}

// TranslateToSpanish 將任意文字翻成西班牙文
func (s *Service) TranslateToSpanish(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Traduce el siguiente texto al español.
Devuelve solamente la traducción: sin notas, sin comillas y sin frases introductorias.

Texto:
%s`, text)

	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// TranslateListToSpanish 一次翻譯整個列表，每行一項；不保證行數與輸入相同
func (s *Service) TranslateListToSpanish(ctx context.Context, items []string) ([]string, error) {
	prompt := fmt.Sprintf(`Traduce al español cada elemento de la lista.
Devuelve solo la lista traducida, un elemento por línea y en el mismo orden.
No agregues explicaciones ni notas.

Lista:
%s`, strings.Join(items, "\n"))

	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return splitLines(out, strings.TrimSpace), nil
}

// ClassifyDifficulty 依步驟判斷難度（Fácil / Media / Difícil），不驗證回傳值
func (s *Service) ClassifyDifficulty(ctx context.Context, instructions string) (string, error) {
	prompt := fmt.Sprintf(`Lee las siguientes instrucciones de cocina y clasifica su dificultad como:

Fácil
Media
Difícil

Responde con una sola palabra en español.

Instrucciones:
%s`, instructions)

	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// GenerateRecommendation 依食譜名稱與使用者目標產生建議
func (s *Service) GenerateRecommendation(ctx context.Context, recipeName, goal string) (string, error) {
	prompt := fmt.Sprintf(`La receta es "%s".
El objetivo del usuario es "%s".

Escribe una recomendación breve, clara y útil para ese objetivo.
Responde solo en español neutro, en un máximo de 3 líneas.`, recipeName, goal)

	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// GenerateSubstitutions 建議食材替代品，每行一項
func (s *Service) GenerateSubstitutions(ctx context.Context, ingredients []string) ([]string, error) {
	prompt := fmt.Sprintf(`Sugiere sustituciones para estos ingredientes:
%s

Reglas:
- Como máximo 5 sustituciones
- Una sustitución por línea
- Español neutro
- Sin explicaciones largas`, strings.Join(ingredients, ", "))

	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return splitLines(out, trimBullet), nil
}

// Lower Unicode 小寫轉換（西班牙文字元）
func Lower(s string) string {
	return cases.Lower(language.Spanish).String(s)
}

func trimBullet(line string) string {
	return strings.Trim(line, "- \r")
}

// splitLines 依換行切割，逐行 trim 後丟棄空行
func splitLines(text string, trim func(string) string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = trim(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
