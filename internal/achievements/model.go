package achievements

import "time"

type Achievement struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Date         string    `bson:"date" json:"date"`
	ImageURL     string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	DisplayOrder int       `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,date"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Date         *string `json:"date" validate:"omitempty,date"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,gte=0"`
}

type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1,dive,required"`
}
