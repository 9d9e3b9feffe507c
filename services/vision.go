package services

import (
	"context"
	"os"
	"sort"
	"strings"

	"backend/models"
)

// ImageClassifier is the pipeline's view of a label-detection provider.
// Implementations take a (possibly data-URI wrapped) base64 image and return
// annotations sorted by descending score. One attempt per call, no retries.
type ImageClassifier interface {
	Classify(ctx context.Context, imageBase64 string) ([]models.Annotation, error)
}

// NewImageClassifier picks a provider from VISION_PROVIDER. Google Vision is
// the default; "rekognition" selects the AWS backend.
func NewImageClassifier() (ImageClassifier, error) {
	switch os.Getenv("VISION_PROVIDER") {
	case "rekognition":
		return NewRekognitionService()
	default:
		return NewGoogleVisionService(), nil
	}
}

// stripDataURI drops a "data:image/...;base64," header if present. Clients
// send either form.
func stripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}

// sortAnnotations orders by descending score. The providers give no ordering
// guarantee across detection modes, so we always sort the merged set.
func sortAnnotations(anns []models.Annotation) {
	sort.SliceStable(anns, func(i, j int) bool {
		return anns[i].Score > anns[j].Score
	})
}
