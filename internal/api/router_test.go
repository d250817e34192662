package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"cookia/internal/infrastructure/config"
	"cookia/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lookupBody = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven to 350F.",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
	"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
	"strIngredient2":"water","strMeasure2":"1/2 cup",
	"strIngredient3":"","strMeasure3":""
}]}`

type stubs struct {
	mealdb      *httptest.Server
	groq        *httptest.Server
	groqCalls   int32
	searchMeals string
}

// cannedReply 依提示內容回傳固定翻譯
func cannedReply(prompt string) string {
	switch {
	case strings.Contains(prompt, "al inglés"):
		return " Chicken\n"
	case strings.Contains(prompt, "Lista:"):
		return "salsa de soja\nagua"
	case strings.Contains(prompt, "clasifica"):
		return "Fácil"
	case strings.Contains(prompt, "recomendación"):
		return "Ideal para bajar de peso."
	case strings.Contains(prompt, "sustituciones"):
		return "- Salsa de soja por tamari\n- Agua por caldo"
	case strings.Contains(prompt, "Teriyaki Chicken Casserole"):
		return "Cazuela de pollo teriyaki"
	case strings.Contains(prompt, "Preheat oven to 350F."):
		return "Precalentar el horno a 350F."
	}
	return "?"
}

func newStubs(t *testing.T) *stubs {
	s := &stubs{searchMeals: `{"meals":[{"strMeal":"Teriyaki Chicken Casserole","idMeal":"52772"}]}`}

	s.mealdb = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/filter.php":
			assert.Equal(t, "chicken", r.URL.Query().Get("i"))
			w.Write([]byte(s.searchMeals))
		case "/lookup.php":
			assert.Equal(t, "52772", r.URL.Query().Get("i"))
			w.Write([]byte(lookupBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	s.groq = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.groqCalls, 1)
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		reply, _ := json.Marshal(map[string]interface{}{
			"choices": []interface{}{
				map[string]interface{}{"message": map[string]string{"role": "assistant", "content": cannedReply(req.Messages[0].Content)}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(reply)
	}))

	t.Cleanup(func() {
		s.mealdb.Close()
		s.groq.Close()
	})
	return s
}

func (s *stubs) config(apiKey string, parallel bool) *config.Config {
	return &config.Config{
		App:    config.AppConfig{Env: "test", Debug: true, Version: "test"},
		Server: config.ServerConfig{Port: 8080, MaxBodyBytes: 1 << 20},
		Groq: config.GroqConfig{
			APIKey:      apiKey,
			BaseURL:     s.groq.URL,
			Model:       "llama-3.1-8b-instant",
			Temperature: 0.4,
			MaxTokens:   150,
		},
		MealDB: config.MealDBConfig{BaseURL: s.mealdb.URL},
		Recipe: config.RecipeConfig{ParallelEnrichment: parallel},
		CORS:   config.CORSConfig{AllowOrigins: []string{"*"}},
	}
}

func post(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recipe/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateRecipeEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, parallel := range []bool{false, true} {
		s := newStubs(t)
		router, err := SetupRouter(s.config("test-key", parallel))
		require.NoError(t, err)

		w := post(t, router, `{"ingredients":["chicken"],"goal":"lose weight"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		var result common.RecipeResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.Equal(t, "Cazuela de pollo teriyaki", result.Name)
		assert.Equal(t, "Chicken", result.Category)
		assert.Equal(t, "Japanese", result.Area)
		assert.Equal(t, "Precalentar el horno a 350F.", result.Instructions)
		assert.Equal(t, "https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg", result.ImageURL)
		assert.Equal(t, "Fácil", result.Difficulty)
		assert.Equal(t, "Ideal para bajar de peso.", result.Recommendation)
		assert.Equal(t, []string{"Salsa de soja por tamari", "Agua por caldo"}, result.Substitutions)
		assert.Equal(t, []common.Ingredient{
			{Name: "salsa de soja", Measure: "3/4 cup"},
			{Name: "agua", Measure: "1/2 cup"},
		}, result.Ingredients)
		assert.EqualValues(t, 7, atomic.LoadInt32(&s.groqCalls))
	}
}

func TestGenerateRecipeNoRecipes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newStubs(t)
	s.searchMeals = `{"meals":null}`
	router, err := SetupRouter(s.config("test-key", false))
	require.NoError(t, err)

	w := post(t, router, `{"ingredients":["chicken"],"goal":"lose weight"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"no recipes found","code":"NOT_FOUND"}`, w.Body.String())
	assert.EqualValues(t, 1, atomic.LoadInt32(&s.groqCalls), "only the ingredient translation reaches the completion service")
}

func TestGenerateRecipeEmptyIngredients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newStubs(t)
	router, err := SetupRouter(s.config("test-key", false))
	require.NoError(t, err)

	w := post(t, router, `{"ingredients":[],"goal":"lose weight"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.MsgEmptyIngredients)
	assert.Zero(t, atomic.LoadInt32(&s.groqCalls))
}

func TestGenerateRecipeMissingAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newStubs(t)
	router, err := SetupRouter(s.config("", false))
	require.NoError(t, err, "a missing key must not fail startup")

	w := post(t, router, `{"ingredients":["pollo"],"goal":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIGURATION_ERROR")
	assert.Zero(t, atomic.LoadInt32(&s.groqCalls))
}

func TestHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newStubs(t)
	router, err := SetupRouter(s.config("test-key", false))
	require.NoError(t, err)

	for _, path := range []string{"/health", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
