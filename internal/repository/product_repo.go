package repository

import (
	"strings"

	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(limit, offset int) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByTerm(term string) (*model.Product, error)
	Save(tx *gorm.DB, product *model.Product) error
	ReplaceImages(tx *gorm.DB, productID uuid.UUID, urls []string) error
	Delete(product *model.Product) error
	DeleteAll() error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll returns a page ordered by created_at, i.e. stable insertion order.
func (r *productRepo) FindAll(limit, offset int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Images").
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Images").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByTerm matches title case-insensitively or slug exactly.
func (r *productRepo) FindByTerm(term string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Images").
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Save accepts a *gorm.DB (tx) so it can run inside a transaction.
func (r *productRepo) Save(tx *gorm.DB, product *model.Product) error {
	return tx.Omit("Images").Save(product).Error
}

// ReplaceImages deletes every image row for the product and inserts one row
// per URL, in that order. Must run inside the caller's transaction.
func (r *productRepo) ReplaceImages(tx *gorm.DB, productID uuid.UUID, urls []string) error {
	if err := tx.Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error; err != nil {
		return err
	}
	if len(urls) == 0 {
		return nil
	}
	images := make([]model.ProductImage, len(urls))
	for i, url := range urls {
		images[i] = model.ProductImage{URL: url, ProductID: productID}
	}
	return tx.Create(&images).Error
}

// Delete removes the product permanently so the image rows cascade and the
// title/slug can be reused.
func (r *productRepo) Delete(product *model.Product) error {
	return r.db.Unscoped().Delete(product).Error
}

// DeleteAll wipes the catalog. Used by the seeder before loading demo data.
func (r *productRepo) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.Product{}).Error
}
