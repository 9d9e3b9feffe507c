package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/models"
	"backend/utils"
)

const visionEndpoint = "https://vision.googleapis.com/v1/images:annotate"

// maxDetections caps each detection mode, so a merged result holds at most
// twice this many annotations.
const maxDetections = 10

// GoogleVisionService calls the Vision REST API with an API key. BaseURL is
// overridable for tests.
type GoogleVisionService struct {
	BaseURL string
	client  *http.Client
}

func NewGoogleVisionService() *GoogleVisionService {
	return &GoogleVisionService{
		BaseURL: visionEndpoint,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionRequestItem struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionAnnotateRequest struct {
	Requests []visionRequestItem `json:"requests"`
}

type visionAnnotateResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string  `json:"description"`
			Score       float64 `json:"score"`
		} `json:"labelAnnotations"`
		LocalizedObjectAnnotations []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"localizedObjectAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// Classify runs generic label detection plus localized object detection over
// one image and returns the merged annotations sorted by descending score.
func (s *GoogleVisionService) Classify(ctx context.Context, imageBase64 string) ([]models.Annotation, error) {
	key := os.Getenv("VISION_API_KEY")
	if key == "" {
		return nil, &utils.ConfigurationError{Key: "VISION_API_KEY"}
	}

	payload := visionAnnotateRequest{
		Requests: []visionRequestItem{{
			Image: visionImage{Content: stripDataURI(imageBase64)},
			Features: []visionFeature{
				{Type: "LABEL_DETECTION", MaxResults: maxDetections},
				{Type: "OBJECT_LOCALIZATION", MaxResults: maxDetections},
			},
		}},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"?key="+key, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &utils.AuthorizationError{Provider: "vision", Status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &utils.RemoteServiceError{Provider: "vision", Status: resp.StatusCode, Detail: string(body)}
	}

	var ar visionAnnotateResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("failed to parse vision JSON: %w", err)
	}
	if len(ar.Responses) == 0 {
		return nil, &utils.RemoteServiceError{Provider: "vision", Status: resp.StatusCode, Detail: "empty annotate response"}
	}
	r0 := ar.Responses[0]
	if r0.Error != nil {
		return nil, &utils.RemoteServiceError{Provider: "vision", Status: r0.Error.Code, Detail: r0.Error.Message}
	}

	anns := make([]models.Annotation, 0, len(r0.LabelAnnotations)+len(r0.LocalizedObjectAnnotations))
	for _, l := range r0.LabelAnnotations {
		anns = append(anns, models.Annotation{Kind: models.KindLabel, Text: l.Description, Score: l.Score})
	}
	for _, o := range r0.LocalizedObjectAnnotations {
		anns = append(anns, models.Annotation{Kind: models.KindObject, Text: o.Name, Score: o.Score})
	}
	sortAnnotations(anns)
	return anns, nil
}
