package upload

import (
	"context"
	"errors"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
)

// ErrUnknownFolder indicates a folder outside the allowed set.
var ErrUnknownFolder = errors.New("unknown upload folder")

// allowedFolders is the closed set of upload destinations.
var allowedFolders = map[string]bool{
	"profile-images": true,
}

// extensionPattern keeps only simple alphanumeric extensions.
var extensionPattern = regexp.MustCompile(`^\.[a-zA-Z0-9]{1,8}$`)

// SignRequest asks for an upload slot.
type SignRequest struct {
	FileName    string `json:"fileName"`
	Folder      string `json:"folder"`
	ContentType string `json:"contentType"`
}

// SignResponse carries the presigned upload URL and where the object
// becomes publicly readable after upload.
type SignResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// Service issues upload slots.
type Service struct {
	signer Signer
	cfg    appConfig.UploadConfig
	logger *zap.SugaredLogger
}

// NewService creates a new upload service instance.
func NewService(signer Signer, cfg appConfig.UploadConfig, logger *zap.SugaredLogger) *Service {
	return &Service{
		signer: signer,
		cfg:    cfg,
		logger: logger,
	}
}

// Sign allocates a collision-resistant object key in the requested
// folder and presigns its upload.
func (s *Service) Sign(ctx context.Context, req *SignRequest) (*SignResponse, error) {
	if !allowedFolders[req.Folder] {
		return nil, ErrUnknownFolder
	}

	key := req.Folder + "/" + uuid.NewString() + sanitizeExtension(req.FileName)
	uploadURL, err := s.signer.SignPut(ctx, key, req.ContentType, s.cfg.URLExpiry)
	if err != nil {
		return nil, err
	}

	return &SignResponse{
		UploadURL: uploadURL,
		PublicURL: strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key,
		Key:       key,
	}, nil
}

// sanitizeExtension keeps the original file extension only when it is a
// short alphanumeric one.
func sanitizeExtension(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if !extensionPattern.MatchString(ext) {
		return ""
	}
	return ext
}
