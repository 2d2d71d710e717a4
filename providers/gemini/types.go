package gemini

// Wire types for the predictLongRunning endpoint and the operations surface.
// Field names follow the REST API's lowerCamelCase JSON convention.

// veoPredictRequest is the body for models/{model}:predictLongRunning.
type veoPredictRequest struct {
	Instances  []veoInstance  `json:"instances"`
	Parameters *veoParameters `json:"parameters,omitempty"`
}

// veoInstance carries the prompt and its steering images.
type veoInstance struct {
	Prompt          string              `json:"prompt"`
	ReferenceImages []veoReferenceImage `json:"referenceImages,omitempty"`
}

// veoReferenceImage pairs an inline image with its reference role.
type veoReferenceImage struct {
	Image         veoImage `json:"image"`
	ReferenceType string   `json:"referenceType,omitempty"`
}

// veoImage is an inline base64-encoded image.
type veoImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded,omitempty"`
	MimeType           string `json:"mimeType,omitempty"`
}

// veoParameters holds optional generation parameters. All fields are
// omitted when unset so the service applies its own defaults.
type veoParameters struct {
	AspectRatio    string `json:"aspectRatio,omitempty"`
	NegativePrompt string `json:"negativePrompt,omitempty"`
	SampleCount    int    `json:"sampleCount,omitempty"`
}

// geminiOperation is the long-running operation resource returned by both
// the submit call and the poll endpoint.
type geminiOperation struct {
	Name     string                   `json:"name"`
	Done     bool                     `json:"done"`
	Error    *geminiOperationError    `json:"error,omitempty"`
	Response *geminiOperationResponse `json:"response,omitempty"`
}

// geminiOperationError is the google.rpc.Status payload of a failed operation.
type geminiOperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// geminiOperationResponse wraps the typed result of a done operation.
type geminiOperationResponse struct {
	GenerateVideoResponse *generateVideoResponse `json:"generateVideoResponse,omitempty"`
}

// generateVideoResponse holds the generated samples and any responsible-AI
// filtering applied to them.
type generateVideoResponse struct {
	GeneratedSamples        []generatedSample `json:"generatedSamples,omitempty"`
	RAIMediaFilteredCount   int               `json:"raiMediaFilteredCount,omitempty"`
	RAIMediaFilteredReasons []string          `json:"raiMediaFilteredReasons,omitempty"`
}

// generatedSample wraps one generated video handle.
type generatedSample struct {
	Video *veoVideo `json:"video,omitempty"`
}

// veoVideo is the remote handle; URI points at the download endpoint.
type veoVideo struct {
	URI      string `json:"uri,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// geminiErrorResponse is the standard API error envelope.
type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
