package vision

import (
	"context"
	"fmt"
	"strings"
	"time"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// VertexImagenConfig describes how to connect to Imagen.
type VertexImagenConfig struct {
	ProjectID          string
	Location           string
	Model              string
	ServiceAccountJSON string
	Timeout            time.Duration
}

// VertexImagen implements Generator via the Vertex AI prediction API.
type VertexImagen struct {
	cfg VertexImagenConfig
}

// NewVertexImagen wires a VertexImagen generator.
func NewVertexImagen(cfg VertexImagenConfig) *VertexImagen {
	cfg.ProjectID = strings.TrimSpace(cfg.ProjectID)
	cfg.Location = strings.TrimSpace(cfg.Location)
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &VertexImagen{cfg: cfg}
}

// Generate runs an Imagen sampling request and returns inline handles.
func (v *VertexImagen) Generate(ctx context.Context, req ImageRequest) ([]ImageHandle, error) {
	if v == nil || v.cfg.ProjectID == "" || v.cfg.Location == "" || v.cfg.Model == "" {
		return nil, fmt.Errorf("imagen: missing project/location/model")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("imagen: prompt is required")
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}

	childCtx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	instance, err := structpb.NewValue(map[string]any{
		"prompt": req.Prompt,
	})
	if err != nil {
		return nil, err
	}

	params, err := structpb.NewValue(map[string]any{
		"sampleCount": count,
		"aspectRatio": aspectRatio(req.Width, req.Height),
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", v.cfg.ProjectID, v.cfg.Location, v.cfg.Model)
	options := []option.ClientOption{option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", v.cfg.Location))}
	if v.cfg.ServiceAccountJSON != "" {
		options = append(options, option.WithCredentialsJSON([]byte(v.cfg.ServiceAccountJSON)))
	}

	client, err := aiplatform.NewPredictionClient(childCtx, options...)
	if err != nil {
		return nil, fmt.Errorf("imagen: prediction client: %w", err)
	}
	defer client.Close()

	resp, err := client.Predict(childCtx, &aiplatformpb.PredictRequest{
		Endpoint:   endpoint,
		Instances:  []*structpb.Value{instance},
		Parameters: params,
	})
	if err != nil {
		return nil, fmt.Errorf("imagen: predict: %w", err)
	}
	if len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("imagen: empty prediction response")
	}

	handles := make([]ImageHandle, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		fields := prediction.GetStructValue().GetFields()
		field := fields["bytesBase64Encoded"]
		if field == nil {
			// Some model versions answer with a data URL or a GCS-served
			// URL instead of raw bytes.
			if alt := fields["image"]; alt != nil && alt.GetStringValue() != "" {
				handles = append(handles, DecodeHandle(alt.GetStringValue()))
			}
			continue
		}
		if m := fields["mimeType"]; m != nil && m.GetStringValue() != "" {
			handles = append(handles, InlineHandle(field.GetStringValue(), m.GetStringValue()))
			continue
		}
		handles = append(handles, DecodeHandle(field.GetStringValue()))
	}
	if len(handles) == 0 {
		return nil, fmt.Errorf("imagen: predictions missing image bytes")
	}
	return handles, nil
}
