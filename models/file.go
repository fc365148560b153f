package models

// FileUpload is a file handed to the upload endpoint as a multipart body.
// Content is held in memory; the mobile client only ever uploads small
// images (avatars, proof-of-delivery photos).
type FileUpload struct {
	FieldName string
	FileName  string
	Content   []byte
	Folder    string
}

// UploadedFile is the stored-file descriptor the server returns.
type UploadedFile struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
	Format   string `json:"format,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
}
