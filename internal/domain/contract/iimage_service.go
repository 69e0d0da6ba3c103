package contract

import "context"

// UploadedImage is the hosted image reference returned by the image host.
type UploadedImage struct {
	PublicID string
	URL      string
}

type IImageService interface {
	// Upload stores a base64 or remote image under the given folder.
	Upload(ctx context.Context, data, folder string) (*UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
}
