package utils

import (
    "encoding/json"
    "log"
    "os"
    "strings"

    "backend/models"
)

// UnknownFood is the placeholder name used when no usable annotation exists.
// It doubles as the "skip nutrition lookup" sentinel.
const UnknownFood = "Unknown Food"

// Vocabulary holds the keyword lists behind the relevance filter. The
// defaults are embedded; point FOOD_VOCAB_FILE at a JSON file with the same
// shape to swap them without a code change.
type Vocabulary struct {
    FoodWords         []string `json:"food_words"`
    GenericCategories []string `json:"generic_categories"`
}

func DefaultVocabulary() *Vocabulary {
    return &Vocabulary{
        FoodWords: []string{
            "pizza", "burger", "hamburger", "cheeseburger", "sandwich", "hot dog",
            "pasta", "spaghetti", "noodle", "ramen", "pho", "rice", "fried rice",
            "salad", "soup", "stew", "curry", "sushi", "taco", "burrito",
            "quesadilla", "bread", "toast", "bagel", "croissant", "cake",
            "cookie", "pie", "brownie", "pancake", "waffle", "omelet", "egg",
            "chicken", "beef", "pork", "lamb", "fish", "salmon", "tuna",
            "shrimp", "steak", "bacon", "sausage", "fries", "dumpling",
            "spring roll", "kebab", "falafel", "hummus", "biryani", "dosa",
            "idli", "samosa", "naan", "roti", "paneer", "dal", "paella",
            "risotto", "lasagna", "apple", "banana", "orange", "mango",
            "grape", "strawberry", "blueberry", "watermelon", "pineapple",
            "avocado", "tomato", "potato", "carrot", "broccoli", "spinach",
            "corn", "mushroom", "cheese", "yogurt", "ice cream", "chocolate",
            "donut", "doughnut", "muffin", "cereal", "oatmeal", "granola",
            "smoothie", "juice", "coffee", "tea",
            // umbrella words stay food-related so generic labels still rank
            // above non-food ones
            "food", "dish", "meal", "cuisine", "fruit", "vegetable", "snack",
            "dessert", "breakfast", "lunch", "dinner", "produce",
        },
        GenericCategories: []string{
            "food", "dish", "meal", "cuisine", "fruit", "vegetable", "snack",
            "dessert", "breakfast", "lunch", "dinner", "ingredient", "produce",
            "fast food", "baked goods", "comfort food", "junk food",
            "staple food", "finger food", "natural foods", "recipe",
            "tableware",
        },
    }
}

// LoadVocabulary returns the configured vocabulary, falling back to the
// embedded defaults when FOOD_VOCAB_FILE is unset or unreadable.
func LoadVocabulary() *Vocabulary {
    path := os.Getenv("FOOD_VOCAB_FILE")
    if path == "" {
        return DefaultVocabulary()
    }
    b, err := os.ReadFile(path)
    if err != nil {
        log.Printf("vocab file %s unreadable, using defaults: %v", path, err)
        return DefaultVocabulary()
    }
    var v Vocabulary
    if err := json.Unmarshal(b, &v); err != nil {
        log.Printf("vocab file %s invalid, using defaults: %v", path, err)
        return DefaultVocabulary()
    }
    return &v
}

// IsFoodRelated reports whether text contains any food word,
// case-insensitively.
func (v *Vocabulary) IsFoodRelated(text string) bool {
    t := strings.ToLower(text)
    for _, w := range v.FoodWords {
        if strings.Contains(t, w) {
            return true
        }
    }
    return false
}

// IsGenericCategory reports whether text equals one of the umbrella category
// words. Equality, not containment: "fruit salad" is specific, "fruit" is not.
func (v *Vocabulary) IsGenericCategory(text string) bool {
    t := strings.ToLower(strings.TrimSpace(text))
    for _, c := range v.GenericCategories {
        if t == c {
            return true
        }
    }
    return false
}

// SelectFood picks the display name / nutrition query from annotations that
// are already sorted by descending score. Priority order: first specific food
// label, then first food label of any kind, then the top-scoring annotation,
// then the UnknownFood sentinel. A non-food top label is used on purpose: the
// nutrition lookup decides whether it means anything.
func (v *Vocabulary) SelectFood(anns []models.Annotation) string {
    for _, a := range anns {
        if v.IsFoodRelated(a.Text) && !v.IsGenericCategory(a.Text) {
            return a.Text
        }
    }
    for _, a := range anns {
        if v.IsFoodRelated(a.Text) {
            return a.Text
        }
    }
    if len(anns) > 0 {
        return anns[0].Text
    }
    return UnknownFood
}
