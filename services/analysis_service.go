package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"backend/models"
	"backend/utils"
)

// AnalysisService runs the photo → labels → food name → nutrition pipeline.
type AnalysisService struct {
	classifier ImageClassifier
	nutrition  NutritionLookup
	vocab      *utils.Vocabulary
}

func NewAnalysisService(classifier ImageClassifier, nutrition NutritionLookup, vocab *utils.Vocabulary) *AnalysisService {
	return &AnalysisService{classifier: classifier, nutrition: nutrition, vocab: vocab}
}

// AnalyzeImage classifies the image, selects a food name, and looks up its
// nutrition. A classifier failure is terminal — no partial result. A
// nutrition failure is absorbed: the analysis still completes, just without
// nutrient data, and IsFoodItem stays true because a lookup was attempted.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, imageBase64 string) (*models.FoodAnalysisResult, error) {
	anns, err := s.classifier.Classify(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("image classification failed: %w", err)
	}

	name := s.vocab.SelectFood(anns)
	result := &models.FoodAnalysisResult{
		Name:        name,
		Description: DescribeAnnotations(anns),
	}

	if name == utils.UnknownFood {
		return result, nil
	}

	result.IsFoodItem = true
	nd, err := s.nutrition.Lookup(ctx, name)
	if err != nil {
		log.Printf("nutrition lookup for %q failed: %v", name, err)
		return result, nil
	}
	result.NutritionalData = nd
	return result, nil
}

// DescribeAnnotations renders every annotation with its confidence as a
// diagnostic string, in the same sorted order the classifier returned.
func DescribeAnnotations(anns []models.Annotation) string {
	parts := make([]string, 0, len(anns))
	for _, a := range anns {
		parts = append(parts, fmt.Sprintf("%s (%.2f%%) [%s]", a.Text, a.Score*100, a.Kind))
	}
	return strings.Join(parts, ", ")
}
