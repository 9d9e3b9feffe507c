package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"backend/models"
	"backend/utils"
)

// RekognitionService is the AWS-backed classifier. DetectLabels serves both
// detection modes: plain labels map to kind=label, labels carrying bounding
// box instances additionally map to kind=object.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, &utils.ConfigurationError{Key: "AWS_REGION"}
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionService) Classify(ctx context.Context, imageBase64 string) ([]models.Annotation, error) {
	data, err := base64.StdEncoding.DecodeString(stripDataURI(imageBase64))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(maxDetections),
		MinConfidence: aws.Float32(50),
	})
	if err != nil {
		return nil, &utils.RemoteServiceError{Provider: "rekognition", Detail: err.Error()}
	}

	var anns []models.Annotation
	for _, l := range out.Labels {
		if l.Name == nil || l.Confidence == nil {
			continue
		}
		// Rekognition confidences are percentages; normalize to [0,1].
		anns = append(anns, models.Annotation{
			Kind:  models.KindLabel,
			Text:  *l.Name,
			Score: float64(*l.Confidence) / 100,
		})
		for _, inst := range l.Instances {
			if inst.Confidence == nil {
				continue
			}
			anns = append(anns, models.Annotation{
				Kind:  models.KindObject,
				Text:  *l.Name,
				Score: float64(*inst.Confidence) / 100,
			})
		}
	}
	sortAnnotations(anns)
	return anns, nil
}
