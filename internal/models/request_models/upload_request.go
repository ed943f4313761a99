package request_models

// Image carries the payload as base64, optionally with a data-URI prefix.
type UploadImageRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}
