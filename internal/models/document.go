package models

import "time"

// DocumentOwner says which entity a document hangs off. A document is
// always owned by exactly one client or one task, never both.
type DocumentOwner string

const (
	OwnerClient DocumentOwner = "client"
	OwnerTask   DocumentOwner = "task"
)

func IsValidDocumentOwner(o DocumentOwner) bool {
	return o == OwnerClient || o == OwnerTask
}

type DocumentType string

const (
	DocContract      DocumentType = "contract"
	DocProjectNotes  DocumentType = "project-notes"
	DocProposal      DocumentType = "proposal"
	DocInvoice       DocumentType = "invoice"
	DocDocumentation DocumentType = "documentation"
	DocOther         DocumentType = "other"
)

func IsValidDocumentType(t DocumentType) bool {
	switch t {
	case DocContract, DocProjectNotes, DocProposal, DocInvoice, DocDocumentation, DocOther:
		return true
	}
	return false
}

// Document stores either plain text or, for imported files, a data-URL
// in Content. The type tag is immutable after creation.
type Document struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	OwnerType  DocumentOwner `json:"owner_type"`
	OwnerID    string        `json:"owner_id"`
	Title      string        `json:"title"`
	Type       DocumentType  `json:"type"`
	Content    string        `json:"content"`
	IsImported bool          `json:"is_imported"`
	FileName   string        `json:"file_name,omitempty"`
	FileType   string        `json:"file_type,omitempty"`
	FileSize   int64         `json:"file_size,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
