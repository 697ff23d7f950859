package models

// ImageFile is a user-selected image held in memory until submission.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the file size in bytes.
func (f ImageFile) Size() int64 { return int64(len(f.Data)) }
