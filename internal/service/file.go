package service

import (
	"context"

	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/models"
)

const epUploadFile = "/api/files/upload"

type fileService struct {
	gw gateway.Caller
}

// NewFileService constructs the file-upload façade.
func NewFileService(gw gateway.Caller) FileService {
	return &fileService{gw: gw}
}

// Upload sends the file as a multipart body; the Gateway's JSON content
// type is replaced with the multipart one for this call only.
func (s *fileService) Upload(ctx context.Context, upload models.FileUpload) (*models.UploadedFile, error) {
	if upload.FieldName == "" {
		upload.FieldName = "file"
	}

	fields := map[string]string{}
	if upload.Folder != "" {
		fields["folder"] = upload.Folder
	}

	resp, err := s.gw.Post(ctx, epUploadFile, nil, gateway.WithMultipart(fields, upload))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[models.UploadedFile](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
