package model

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"title" validate:"required"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"default:0" json:"price" validate:"gte=0"`
	Stock       int            `gorm:"default:0" json:"stock" validate:"gte=0"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// ProductImage is owned by its Product; rows are replaced wholesale when
// an update supplies a new image set.
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
}

func (img *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	return
}

// Slugify derives a URL-safe slug from a title: lowercased, spaces become
// underscores, apostrophes dropped. Other punctuation is kept as-is.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}

// PlainProduct is the external representation: images collapsed from
// records to an ordered sequence of URL strings.
type PlainProduct struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images"`
}

// ToPlain converts Product to its plain form
func (p *Product) ToPlain() PlainProduct {
	urls := make([]string, len(p.Images))
	for i, img := range p.Images {
		urls[i] = img.URL
	}
	return PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      urls,
	}
}
