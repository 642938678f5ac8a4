package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful-app/plateful-cli/internal/model"
)

type nutritionPayload struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

func (n nutritionPayload) toModel() model.Nutrition {
	// Missing fields decode to zero, which is the documented default.
	return model.Nutrition{
		Calories: n.Calories,
		ProteinG: n.Protein,
		CarbsG:   n.Carbs,
		FatG:     n.Fat,
		FiberG:   n.Fiber,
	}
}

type ingredientPayload struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

type recipePayload struct {
	Title        string              `json:"title"`
	Ingredients  []ingredientPayload `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Servings     float64             `json:"servings"`
	PrepMinutes  int                 `json:"prep_minutes"`
	CookMinutes  int                 `json:"cook_minutes"`
	Nutrition    nutritionPayload    `json:"nutrition"`
}

func (p recipePayload) toRecipe(source model.RecipeSource, imageURL string) (model.Recipe, error) {
	if strings.TrimSpace(p.Title) == "" {
		return model.Recipe{}, fmt.Errorf("generated recipe has no title")
	}
	servings := p.Servings
	if servings <= 0 {
		servings = 1
	}
	ingredients := make([]model.Ingredient, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredients = append(ingredients, model.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Category: ing.Category,
		})
	}
	return model.Recipe{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(p.Title),
		ImageURL:     imageURL,
		Ingredients:  ingredients,
		Instructions: p.Instructions,
		Servings:     servings,
		PrepMinutes:  p.PrepMinutes,
		CookMinutes:  p.CookMinutes,
		PerServing:   p.Nutrition.toModel(),
		Source:       source,
		CreatedAt:    time.Now().UnixMilli(),
	}, nil
}

const recipeSchemaHint = `Reply with a single JSON object:
{"title": string, "ingredients": [{"name": string, "amount": string, "category": string}],
 "instructions": [string], "servings": number, "prep_minutes": number, "cook_minutes": number,
 "nutrition": {"calories": number, "protein": number, "carbs": number, "fat": number, "fiber": number}}
Nutrition is per serving.`

func avoidanceClause(profile *model.UserProfile) string {
	if profile == nil || len(profile.AvoidedIngredients) == 0 {
		return ""
	}
	return fmt.Sprintf(" Never use these ingredients: %s.", strings.Join(profile.AvoidedIngredients, ", "))
}

func generateRecipe(ctx context.Context, c *Client, prompt string, source model.RecipeSource, imageURL string) (model.Recipe, error) {
	content, err := c.Chat(ctx, []Message{{Role: "user", Content: prompt}}, 1200, nil)
	if err != nil {
		return model.Recipe{}, err
	}
	raw, err := ExtractJSON(content)
	if err != nil {
		return model.Recipe{}, err
	}
	var payload recipePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return model.Recipe{}, fmt.Errorf("decode recipe payload: %w", err)
	}
	return payload.toRecipe(source, imageURL)
}

// ScanRecipeImage extracts a structured recipe from a photographed
// dish or recipe card.
func ScanRecipeImage(ctx context.Context, c *Client, imageURL string, profile *model.UserProfile) (model.Recipe, error) {
	prompt := fmt.Sprintf(
		"You are a nutritionist. Identify the dish in the image at %s and reconstruct its recipe with estimated nutrition.%s\n%s",
		imageURL, avoidanceClause(profile), recipeSchemaHint)
	return generateRecipe(ctx, c, prompt, model.SourceScan, imageURL)
}

// ImportRecipeFromURL parses a recipe web page into a structured
// recipe.
func ImportRecipeFromURL(ctx context.Context, c *Client, pageURL string, profile *model.UserProfile) (model.Recipe, error) {
	prompt := fmt.Sprintf(
		"Extract the recipe published at %s, including per-serving nutrition estimates.%s\n%s",
		pageURL, avoidanceClause(profile), recipeSchemaHint)
	return generateRecipe(ctx, c, prompt, model.SourceURLImport, "")
}

// RecipeFromDescription invents a recipe matching a free-text request.
func RecipeFromDescription(ctx context.Context, c *Client, description string, profile *model.UserProfile) (model.Recipe, error) {
	prompt := fmt.Sprintf(
		"Create a recipe for: %s.%s\n%s",
		description, avoidanceClause(profile), recipeSchemaHint)
	return generateRecipe(ctx, c, prompt, model.SourceDescription, "")
}

type mealPayload struct {
	Title        string              `json:"title"`
	Servings     float64             `json:"servings"`
	Nutrition    nutritionPayload    `json:"nutrition"`
	Ingredients  []ingredientPayload `json:"ingredients"`
	Instructions []string            `json:"instructions"`
}

// ParseMealText turns a free-text meal description ("two slices of
// pepperoni pizza and a coke") into a ready-to-store meal log with
// absolute nutrition and ingredient/instruction snapshots.
func ParseMealText(ctx context.Context, c *Client, text string, date string, now time.Time) (model.MealLog, error) {
	prompt := fmt.Sprintf(`Estimate the nutrition of this meal: %s.
Reply with a single JSON object:
{"title": string, "servings": number,
 "nutrition": {"calories": number, "protein": number, "carbs": number, "fat": number, "fiber": number},
 "ingredients": [{"name": string, "amount": string, "category": string}], "instructions": [string]}
Nutrition is the absolute total for the whole described meal.`, text)

	content, err := c.Chat(ctx, []Message{{Role: "user", Content: prompt}}, 800, nil)
	if err != nil {
		return model.MealLog{}, err
	}
	raw, err := ExtractJSON(content)
	if err != nil {
		return model.MealLog{}, err
	}
	var payload mealPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return model.MealLog{}, fmt.Errorf("decode meal payload: %w", err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return model.MealLog{}, fmt.Errorf("generated meal has no title")
	}
	servings := payload.Servings
	if servings <= 0 {
		servings = 1
	}
	ingredients := make([]model.Ingredient, 0, len(payload.Ingredients))
	for _, ing := range payload.Ingredients {
		ingredients = append(ingredients, model.Ingredient{Name: ing.Name, Amount: ing.Amount, Category: ing.Category})
	}
	return model.MealLog{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(payload.Title),
		Servings:     servings,
		Nutrition:    payload.Nutrition.toModel(),
		Date:         date,
		Timestamp:    now.UnixMilli(),
		Ingredients:  ingredients,
		Instructions: payload.Instructions,
	}, nil
}

// CoachAdviceMaxAge gates how often the advice generator re-invokes
// the endpoint; callers serve the cached text inside this window.
const CoachAdviceMaxAge = 12 * time.Hour

// CoachFallback is shown when the generator fails for any reason.
const CoachFallback = "Keep logging your meals. Consistency beats perfection. Aim to stay near your calorie goal and get protein with every meal."

// CoachAdvice asks for a short, personalized coaching blurb. The reply
// is plain text, not JSON.
func CoachAdvice(ctx context.Context, c *Client, profile *model.UserProfile, goals *model.DailyGoals, todayCalories int) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are a supportive nutrition coach. In 3 sentences or fewer, give specific advice for today.\n")
	if profile != nil {
		fmt.Fprintf(&sb, "Profile: %.0f lbs, goal %.0f lbs (%s), activity %s.\n",
			profile.WeightLbs, profile.GoalWeightLbs, profile.GoalType, profile.ActivityLevel)
	}
	if goals != nil {
		fmt.Fprintf(&sb, "Daily goal: %d kcal (%dP/%dC/%dF). Eaten so far today: %d kcal.\n",
			goals.Calories, goals.ProteinG, goals.CarbsG, goals.FatG, todayCalories)
	}
	temp := 0.7
	content, err := c.Chat(ctx, []Message{{Role: "user", Content: sb.String()}}, 220, &temp)
	if err != nil {
		return "", err
	}
	advice := strings.TrimSpace(content)
	if advice == "" {
		return "", fmt.Errorf("empty coach response")
	}
	return advice, nil
}
