package external_services

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/learnaray/learnaray/internal/domain/contract"
)

// ImageService hosts avatars and course thumbnails on Cloudinary.
type ImageService struct {
	cld *cloudinary.Cloudinary
}

func NewImageService(cloudName, apiKey, apiSecret string) (*ImageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &ImageService{cld: cld}, nil
}

var _ contract.IImageService = (*ImageService)(nil)

func (s *ImageService) Upload(ctx context.Context, data, folder string) (*contract.UploadedImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, data, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return &contract.UploadedImage{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
	}, nil
}

func (s *ImageService) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to destroy image: %w", err)
	}
	return nil
}
