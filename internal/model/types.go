package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityAthlete    ActivityLevel = "athlete"
)

type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

type UserProfile struct {
	WeightLbs          float64       `json:"weight_lbs"`
	HeightIn           float64       `json:"height_in"`
	Age                int           `json:"age"`
	Gender             Gender        `json:"gender"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	GoalWeightLbs      float64       `json:"goal_weight_lbs"`
	GoalType           GoalType      `json:"goal_type"`
	BodyFatPct         *float64      `json:"body_fat_pct,omitempty"`
	AvoidedIngredients []string      `json:"avoided_ingredients,omitempty"`
}

type DailyGoals struct {
	Calories int  `json:"calories"`
	ProteinG int  `json:"protein_g"`
	CarbsG   int  `json:"carbs_g"`
	FatG     int  `json:"fat_g"`
	IsCustom bool `json:"is_custom"`
}

type Ingredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

type Nutrition struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
}

type RecipeSource string

const (
	SourceManual      RecipeSource = "manual"
	SourceScan        RecipeSource = "scan"
	SourceURLImport   RecipeSource = "url"
	SourceDescription RecipeSource = "description"
	SourceMealPlan    RecipeSource = "meal_plan"
)

type Recipe struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	ImageURL     string       `json:"image_url,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Servings     float64      `json:"servings"`
	PrepMinutes  int          `json:"prep_minutes"`
	CookMinutes  int          `json:"cook_minutes"`
	// FolderID may reference a deleted folder; folder deletion clears
	// it rather than cascading.
	FolderID    string       `json:"folder_id"`
	PerServing  Nutrition    `json:"per_serving"`
	Rating      float64      `json:"rating,omitempty"`
	IsSuggested bool         `json:"is_suggested,omitempty"`
	Source      RecipeSource `json:"source"`
	CreatedAt   int64        `json:"created_at"`
}

type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	ParentID string `json:"parent_id,omitempty"`
}

// MealLog stores absolute, already-scaled nutrition for the logged
// servings, plus a title snapshot so deleting the recipe later does not
// rewrite history.
type MealLog struct {
	ID           string       `json:"id"`
	RecipeID     string       `json:"recipe_id"`
	Title        string       `json:"title"`
	Servings     float64      `json:"servings"`
	Nutrition    Nutrition    `json:"nutrition"`
	Date         string       `json:"date"`
	Timestamp    int64        `json:"timestamp"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Instructions []string     `json:"instructions,omitempty"`
}

type WeightEntry struct {
	ID        string  `json:"id"`
	WeightLbs float64 `json:"weight_lbs"`
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"`
}

type ExerciseType string

const (
	ExerciseStrength ExerciseType = "strength"
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseWalking  ExerciseType = "walking"
)

type ExerciseLog struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ExerciseType `json:"type"`
	Reps        *int         `json:"reps,omitempty"`
	Sets        *int         `json:"sets,omitempty"`
	DurationMin *int         `json:"duration_min,omitempty"`
	Date        string       `json:"date"`
	Timestamp   int64        `json:"timestamp"`
}

type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

type PlanItemKind string

const (
	PlanItemRecipe     PlanItemKind = "recipe"
	PlanItemCustomMeal PlanItemKind = "custom_meal"
)

// PlanItem is a tagged union: exactly one of Recipe or CustomMeal is
// set, selected by Kind.
type PlanItem struct {
	Kind       PlanItemKind     `json:"kind"`
	Recipe     *Recipe          `json:"recipe,omitempty"`
	CustomMeal *SavedCustomMeal `json:"custom_meal,omitempty"`
}

func (p PlanItem) Title() string {
	switch p.Kind {
	case PlanItemRecipe:
		if p.Recipe != nil {
			return p.Recipe.Title
		}
	case PlanItemCustomMeal:
		if p.CustomMeal != nil {
			return p.CustomMeal.Name
		}
	}
	return ""
}

func (p PlanItem) Nutrition() Nutrition {
	switch p.Kind {
	case PlanItemRecipe:
		if p.Recipe != nil {
			return p.Recipe.PerServing
		}
	case PlanItemCustomMeal:
		if p.CustomMeal != nil {
			return p.CustomMeal.Nutrition
		}
	}
	return Nutrition{}
}

type MealPlan struct {
	ID     string                `json:"id"`
	Date   string                `json:"date"`
	Slots  map[MealSlot]PlanItem `json:"slots"`
	Totals Nutrition             `json:"totals"`
}

type SavedCustomMeal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Nutrition Nutrition `json:"nutrition"`
	CreatedAt int64     `json:"created_at"`
}

type CustomIngredient struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	DefaultServingG float64 `json:"default_serving_g"`
}

type CustomRestaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CustomRestaurantMeal struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Nutrition    Nutrition `json:"nutrition"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt int64  `json:"created_at"`
}
