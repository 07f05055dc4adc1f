package leadership

import "time"

type Leadership struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Role           string    `bson:"role" json:"role"`
	Organization   string    `bson:"organization" json:"organization"`
	Description    string    `bson:"description" json:"description"`
	CertificateURL string    `bson:"certificateUrl,omitempty" json:"certificateUrl,omitempty"`
	DisplayOrder   int       `bson:"displayOrder" json:"displayOrder"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Role           string `json:"role" validate:"required"`
	Organization   string `json:"organization" validate:"required"`
	Description    string `json:"description" validate:"required"`
	CertificateURL string `json:"certificateUrl"`
}

type UpdateRequest struct {
	Role           *string `json:"role"`
	Organization   *string `json:"organization"`
	Description    *string `json:"description"`
	CertificateURL *string `json:"certificateUrl"`
	DisplayOrder   *int    `json:"displayOrder" validate:"omitempty,gte=0"`
}

type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1,dive,required"`
}
