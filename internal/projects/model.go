package projects

import "time"

type Media struct {
	URL  string `bson:"url" json:"url"`
	Type string `bson:"type" json:"type"`
}

type Project struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	LiveURL      string    `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	RepoURL      string    `bson:"repoUrl,omitempty" json:"repoUrl,omitempty"`
	Media        []Media   `bson:"media" json:"media"`
	DisplayOrder int       `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type MediaInput struct {
	URL  string `json:"url" validate:"required"`
	Type string `json:"type" validate:"omitempty,oneof=image video"`
}

type CreateRequest struct {
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	Technologies []string     `json:"technologies"`
	LiveURL      string       `json:"liveUrl"`
	RepoURL      string       `json:"repoUrl"`
	Media        []MediaInput `json:"media" validate:"dive"`
}

// UpdateRequest carries only the fields present in the payload; nil fields
// leave the stored value untouched.
type UpdateRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Technologies *[]string     `json:"technologies"`
	LiveURL      *string       `json:"liveUrl"`
	RepoURL      *string       `json:"repoUrl"`
	Media        *[]MediaInput `json:"media" validate:"omitempty,dive"`
	DisplayOrder *int          `json:"displayOrder" validate:"omitempty,gte=0"`
}

type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1,dive,required"`
}

type Page struct {
	Projects []Project `json:"projects"`
	Page     int64     `json:"page"`
	Pages    int64     `json:"pages"`
}
