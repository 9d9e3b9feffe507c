package utils

import (
    "fmt"
    "strings"

    "backend/models"
)

// Daily reference values for the per-serving share checks (adult CDRR for
// sodium; 2000 kcal day for the sugar conversion).
const (
    sodiumDailyLimitMg = 2300.0
    referenceKcalDay   = 2000.0
)

// AssessNutrition flags dietary-guideline concerns for a single analyzed
// food. Only emits findings when the inputs are present — no "missing data"
// notes.
func AssessNutrition(foodName string, nd *models.NutritionalData) []string {
    warnings := []string{}
    if nd == nil {
        return warnings
    }

    kcal := nd.Calories

    // Sodium — share of the daily limit, plus density relative to calories.
    if nd.Sodium != nil && *nd.Sodium > 0 {
        share := *nd.Sodium / sodiumDailyLimitMg
        if share >= 0.40 {
            warnings = append(warnings,
                fmt.Sprintf("Very high sodium for one serving (~%.0f%% of the daily limit).", share*100))
        } else if share >= 0.20 {
            warnings = append(warnings,
                fmt.Sprintf("High sodium for one serving (~%.0f%% of the daily limit).", share*100))
        }
        if kcal > 0 && (*nd.Sodium/kcal)*100 >= 400 {
            warnings = append(warnings,
                "High sodium density relative to calories — consider lower-sodium alternatives.")
        }
    }

    // Sugars — flag when they make up ≥10% of the item's calories.
    if nd.Sugar != nil && *nd.Sugar > 0 && kcal > 0 {
        pct := (*nd.Sugar * 4.0) / kcal
        if pct >= 0.10 {
            warnings = append(warnings,
                fmt.Sprintf("High sugars for this item (%.0f%% of its calories).", pct*100))
        }
    }

    // Fiber nudge for carbohydrate foods.
    if nd.Fiber != nil && kcal > 0 && nd.Carbs >= 15 {
        if (*nd.Fiber/kcal)*100 < 1.0 {
            warnings = append(warnings,
                "Low dietary fiber for a carbohydrate food — consider whole grains, fruits, or vegetables.")
        }
    }

    // Name heuristics carried over from the safety rules.
    lower := strings.ToLower(foodName)
    if isLikelyRefinedGrain(lower) {
        warnings = append(warnings,
            "Refined-grain item — consider swapping for whole-grain options.")
    }
    if looksHighSatSource(lower) {
        warnings = append(warnings,
            "Likely high in saturated fat — consider leaner cuts or plant oils.")
    }

    return warnings
}

func containsAny(s string, subs ...string) bool {
    for _, sub := range subs {
        if strings.Contains(s, sub) {
            return true
        }
    }
    return false
}

func isLikelyRefinedGrain(name string) bool {
    return containsAny(name, "white bread", "white rice", "refined flour",
        "all-purpose flour", "maida", "cake", "pastry", "cracker", "biscuit")
}

func looksHighSatSource(name string) bool {
    return containsAny(name,
        "butter", "ghee", "cream", "bacon", "sausage", "shortening",
        "palm oil", "palm kernel", "coconut oil", "lard")
}
