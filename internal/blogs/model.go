package blogs

import "time"

type Blog struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Content      string    `bson:"content" json:"content"`
	ImageURL     string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Slug         string    `bson:"slug" json:"slug"`
	DisplayOrder int       `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

type UpdateRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,gte=0"`
}

type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1,dive,required"`
}
