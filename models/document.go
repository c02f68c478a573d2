package models

import "time"

// DocumentType is the fixed enumeration of declared document types.
type DocumentType string

const (
	DocResume     DocumentType = "resume"
	DocPhoto      DocumentType = "photo"
	DocEducation  DocumentType = "education"
	DocExperience DocumentType = "experience"
	DocPassport   DocumentType = "passport"
	DocOther      DocumentType = "other"
)

// Document status labels.
const (
	DocStatusUploaded = "uploaded"
	DocStatusPending  = "pending"
	DocStatusVerified = "verified"
)

// AllDocumentTypes lists every accepted declared type.
var AllDocumentTypes = []DocumentType{
	DocResume, DocPhoto, DocEducation, DocExperience, DocPassport, DocOther,
}

// ValidDocumentType reports whether t is one of the declared types.
func ValidDocumentType(t DocumentType) bool {
	for _, dt := range AllDocumentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// UploadedDocument references a file attached for a declared document type,
// either freshly uploaded or copied from the user's standing profile.
type UploadedDocument struct {
	ID   string       `bson:"id" json:"id"`
	Type DocumentType `bson:"type" json:"type"`
	Name string       `bson:"name" json:"name"`
	// URL is the storage public ID; download URLs are derived from it.
	URL    string `bson:"url" json:"url"`
	Status string `bson:"status" json:"status"`
	// FromProfile distinguishes a document copied from the profile from a
	// fresh upload. Removal only deletes the backing blob for fresh uploads.
	FromProfile bool      `bson:"fromProfile" json:"fromProfile"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
