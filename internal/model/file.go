package model

// File stores an uploaded blob (currently only resumes) together with its
// extension so the download handler can pick a content type.
type File struct {
	ID        int `gorm:"primaryKey" json:"id"`
	Content   []byte `json:"-"`
	Extension string `json:"extension"`
}
