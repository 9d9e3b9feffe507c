package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
	"backend/utils"
)

func newVisionTestService(url string) *GoogleVisionService {
	s := NewGoogleVisionService()
	s.BaseURL = url
	return s
}

func TestVisionClassifyMissingKey(t *testing.T) {
	t.Setenv("VISION_API_KEY", "")

	_, err := NewGoogleVisionService().Classify(context.Background(), "aGVsbG8=")

	var cfgErr *utils.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "VISION_API_KEY", cfgErr.Key)
}

func TestVisionClassifyMergesAndSorts(t *testing.T) {
	t.Setenv("VISION_API_KEY", "test-key")

	var gotReq visionAnnotateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{
			"responses": [{
				"labelAnnotations": [
					{"description": "fast food", "score": 0.80},
					{"description": "hot dog", "score": 0.95}
				],
				"localizedObjectAnnotations": [
					{"name": "Food", "score": 0.90}
				]
			}]
		}`))
	}))
	defer srv.Close()

	anns, err := newVisionTestService(srv.URL).Classify(context.Background(), "data:image/jpeg;base64,aGVsbG8=")
	require.NoError(t, err)

	require.Len(t, anns, 3)
	assert.Equal(t, models.Annotation{Kind: models.KindLabel, Text: "hot dog", Score: 0.95}, anns[0])
	assert.Equal(t, models.Annotation{Kind: models.KindObject, Text: "Food", Score: 0.90}, anns[1])
	assert.Equal(t, models.Annotation{Kind: models.KindLabel, Text: "fast food", Score: 0.80}, anns[2])

	// data URI header must be stripped and both detection modes requested
	require.Len(t, gotReq.Requests, 1)
	assert.Equal(t, "aGVsbG8=", gotReq.Requests[0].Image.Content)
	require.Len(t, gotReq.Requests[0].Features, 2)
	assert.Equal(t, visionFeature{Type: "LABEL_DETECTION", MaxResults: 10}, gotReq.Requests[0].Features[0])
	assert.Equal(t, visionFeature{Type: "OBJECT_LOCALIZATION", MaxResults: 10}, gotReq.Requests[0].Features[1])
}

func TestVisionClassifyEmptyDetections(t *testing.T) {
	t.Setenv("VISION_API_KEY", "test-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responses": [{}]}`))
	}))
	defer srv.Close()

	anns, err := newVisionTestService(srv.URL).Classify(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Empty(t, anns)
}

func TestVisionClassifyForbidden(t *testing.T) {
	t.Setenv("VISION_API_KEY", "bad-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newVisionTestService(srv.URL).Classify(context.Background(), "aGVsbG8=")

	var authErr *utils.AuthorizationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusForbidden, authErr.Status)
	assert.Equal(t, "vision", authErr.Provider)
}

func TestVisionClassifyResponseLevelError(t *testing.T) {
	t.Setenv("VISION_API_KEY", "test-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responses": [{"error": {"code": 3, "message": "Bad image data"}}]}`))
	}))
	defer srv.Close()

	_, err := newVisionTestService(srv.URL).Classify(context.Background(), "aGVsbG8=")

	var svcErr *utils.RemoteServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Contains(t, svcErr.Detail, "Bad image data")
}

func TestStripDataURI(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", stripDataURI("data:image/jpeg;base64,aGVsbG8="))
	assert.Equal(t, "aGVsbG8=", stripDataURI("aGVsbG8="))
	assert.Equal(t, "aGVsbG8=", stripDataURI("data:image/png;base64,aGVsbG8="))
}
