package models

import "time"

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name,omitempty"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	OwnerID     int64     `json:"owner_id"`
	PapersCount int       `json:"papers_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Paper struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Authors         []string   `json:"authors"`
	Abstract        string     `json:"abstract,omitempty"`
	Source          string     `json:"source,omitempty"`
	SourceURL       string     `json:"source_url,omitempty"`
	PDFURL          string     `json:"pdf_url,omitempty"`
	DOI             string     `json:"doi,omitempty"`
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	CitationCount   int        `json:"citation_count"`
	Tags            []string   `json:"tags"`
	FilePath        string     `json:"file_path,omitempty"`
	ExtractedText   string     `json:"extracted_text,omitempty"`
	FileSize        int64      `json:"file_size,omitempty"`
	OwnerID         int64      `json:"owner_id"`
	IsPublic        bool       `json:"is_public"`
	Analyzed        bool       `json:"analyzed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Document struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	DocumentType string    `json:"document_type"`
	ParentID     *int64    `json:"parent_id,omitempty"`
	IsStarred    bool      `json:"is_starred"`
	OwnerID      int64     `json:"owner_id"`
	WorkspaceID  *int64    `json:"workspace_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis is created only by the background analysis job; it is immutable
// after creation except for deletion by its owner.
type Analysis struct {
	ID        int64          `json:"id"`
	Type      string         `json:"analysis_type"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"analysis_metadata"`
	UserID    int64          `json:"user_id"`
	PaperID   *int64         `json:"paper_id"`
	CreatedAt time.Time      `json:"created_at"`
}

const (
	AnalysisTypeSummary          = "summary"
	AnalysisTypeInsights         = "insights"
	AnalysisTypeLiteratureReview = "literature_review"
)
