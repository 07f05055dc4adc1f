package experiences

import "time"

type Experience struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Title          string    `bson:"title" json:"title"`
	Company        string    `bson:"company" json:"company"`
	Location       string    `bson:"location" json:"location"`
	StartDate      string    `bson:"startDate" json:"startDate"`
	EndDate        string    `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description    []string  `bson:"description" json:"description"`
	CertificateURL string    `bson:"certificateUrl,omitempty" json:"certificateUrl,omitempty"`
	DisplayOrder   int       `bson:"displayOrder" json:"displayOrder"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Description arrives from the client as one newline-delimited string and is
// stored as a list of lines.
type CreateRequest struct {
	Title          string `json:"title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Location       string `json:"location" validate:"required"`
	StartDate      string `json:"startDate" validate:"required,date"`
	EndDate        string `json:"endDate" validate:"omitempty,date"`
	Description    string `json:"description" validate:"required"`
	CertificateURL string `json:"certificateUrl"`
}

type UpdateRequest struct {
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	StartDate      *string `json:"startDate" validate:"omitempty,date"`
	EndDate        *string `json:"endDate" validate:"omitempty,date"`
	Description    *string `json:"description"`
	CertificateURL *string `json:"certificateUrl"`
	DisplayOrder   *int    `json:"displayOrder" validate:"omitempty,gte=0"`
}

type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1,dive,required"`
}
