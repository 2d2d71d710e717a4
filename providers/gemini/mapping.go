package gemini

import (
	"encoding/base64"

	"github.com/petal-labs/reel/core"
)

// mapVideoRequest converts a core request to the predictLongRunning body.
func mapVideoRequest(req *core.VideoGenerateRequest) *veoPredictRequest {
	instance := veoInstance{Prompt: req.Prompt}

	for _, ref := range req.ReferenceImages {
		role := ref.Role
		if role == "" {
			role = core.ReferenceRoleAsset
		}
		instance.ReferenceImages = append(instance.ReferenceImages, veoReferenceImage{
			Image: veoImage{
				BytesBase64Encoded: base64.StdEncoding.EncodeToString(ref.Data),
				MimeType:           ref.MIMEType,
			},
			ReferenceType: string(role),
		})
	}

	out := &veoPredictRequest{Instances: []veoInstance{instance}}

	if req.Params != nil {
		params := veoParameters{
			AspectRatio:    req.Params.AspectRatio,
			NegativePrompt: req.Params.NegativePrompt,
			SampleCount:    req.Params.SampleCount,
		}
		if params != (veoParameters{}) {
			out.Parameters = &params
		}
	}

	return out
}

// mapOperation converts an operation resource to the core handle.
func mapOperation(op *geminiOperation, model core.ModelID) *core.VideoOperation {
	out := &core.VideoOperation{
		Name:  op.Name,
		Model: model,
		Done:  op.Done,
	}

	if op.Error != nil {
		out.Error = &core.OperationError{
			Code:    op.Error.Code,
			Message: op.Error.Message,
		}
	}

	if op.Response != nil && op.Response.GenerateVideoResponse != nil {
		for _, sample := range op.Response.GenerateVideoResponse.GeneratedSamples {
			if sample.Video == nil || sample.Video.URI == "" {
				continue
			}
			out.Videos = append(out.Videos, core.GeneratedVideo{
				URI:      sample.Video.URI,
				MIMEType: sample.Video.MimeType,
			})
		}
	}

	return out
}
