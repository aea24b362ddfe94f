package dream

import "github.com/heartmarshall/dreamr-backend/internal/domain"

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	Dream *domain.Dream
	// ShouldGenerateImage tells the client whether to offer illustration.
	ShouldGenerateImage bool
}

// ImageResult is the outcome of an image generation request.
type ImageResult struct {
	Dream *domain.Dream
	// Skipped is set when the entry is not eligible; ImageFile then holds
	// whatever the entry already references.
	Skipped   bool
	ImageFile *string
	ImageURL  string
}
