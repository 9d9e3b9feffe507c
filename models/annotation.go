package models

// AnnotationKind tells which detection mode produced an annotation.
type AnnotationKind string

const (
    KindLabel  AnnotationKind = "label"
    KindObject AnnotationKind = "object"
)

// Annotation is a single detection from the vision classifier with a
// confidence score in [0,1]. Annotations live for one analysis pass only.
type Annotation struct {
    Kind  AnnotationKind `json:"kind"`
    Text  string         `json:"text"`
    Score float64        `json:"score"`
}

// NutritionalData holds the fixed set of nutrient fields we extract per food.
// Required fields stay 0 when the source never reported them; the optional
// ones stay nil so the response can omit them.
type NutritionalData struct {
    Calories float64  `json:"calories"`
    Protein  float64  `json:"protein"`
    Carbs    float64  `json:"carbs"`
    Fat      float64  `json:"fat"`
    Fiber    *float64 `json:"fiber,omitempty"`
    Sugar    *float64 `json:"sugar,omitempty"`
    Sodium   *float64 `json:"sodium,omitempty"`
}

// FoodAnalysisResult is what one analysis pass returns to the client.
// IsFoodItem is true iff a nutrition lookup was attempted for the image,
// regardless of whether that lookup succeeded.
type FoodAnalysisResult struct {
    Name            string           `json:"name"`
    Description     string           `json:"description"`
    NutritionalData *NutritionalData `json:"nutritional_data,omitempty"`
    IsFoodItem      bool             `json:"is_food_item"`
}
