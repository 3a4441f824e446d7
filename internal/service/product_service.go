package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/pkg/validator"
)

// TxManager scopes a function to one database transaction. *gorm.DB
// satisfies it directly.
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// EventPublisher pushes catalog change events to connected clients.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type ProductService interface {
	Create(req *CreateProductRequest) (*model.PlainProduct, error)
	FindAll(limit, offset int) ([]model.PlainProduct, error)
	FindOne(term string) (*model.Product, error)
	FindOnePlain(term string) (*model.PlainProduct, error)
	Update(id uuid.UUID, req *UpdateProductRequest) (*model.PlainProduct, error)
	Remove(id uuid.UUID) error
	RemoveAll() error
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images"`
}

// UpdateProductRequest is a partial patch. Images is tri-state: nil leaves
// the image set untouched, non-nil replaces it wholesale (an empty slice
// clears every image).
type UpdateProductRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Stock       *int      `json:"stock"`
	Images      *[]string `json:"images"`
}

type productService struct {
	productRepo repository.ProductRepository
	db          TxManager
	events      EventPublisher
	logger      zerolog.Logger
}

func NewProductService(productRepo repository.ProductRepository, db TxManager, events EventPublisher, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		db:          db,
		events:      events,
		logger:      logger,
	}
}

// Create persists a product together with one image row per URL. When no
// slug is supplied it is derived from the title. The returned plain form
// carries the raw URL list as given, not a re-fetch.
func (s *productService) Create(req *CreateProductRequest) (*model.PlainProduct, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	if req.Slug == "" {
		req.Slug = model.Slugify(req.Title)
	}

	images := make([]model.ProductImage, len(req.Images))
	for i, url := range req.Images {
		images[i] = model.ProductImage{URL: url}
	}

	product := &model.Product{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      images,
	}

	if err := s.productRepo.Create(product); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrDuplicateEntry, apperr.DuplicateDetail(err))
		}
		s.logger.Error().Err(err).Str("title", req.Title).Msg("failed to create product")
		return nil, apperr.ErrInternal
	}

	// Plain form built from the in-memory record; no re-fetch.
	plain := product.ToPlain()

	s.events.Publish("product_created", plain)

	return &plain, nil
}

// FindAll returns a page in insertion order with images flattened to URLs.
// An empty page is a valid result, not an error.
func (s *productService) FindAll(limit, offset int) ([]model.PlainProduct, error) {
	products, err := s.productRepo.FindAll(limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, apperr.ErrInternal
	}

	plain := make([]model.PlainProduct, len(products))
	for i := range products {
		plain[i] = products[i].ToPlain()
	}
	return plain, nil
}

// FindOne resolves a term to a product: a syntactically valid UUID looks up
// by id, anything else matches the title case-insensitively or the slug
// exactly.
func (s *productService) FindOne(term string) (*model.Product, error) {
	var (
		product *model.Product
		err     error
	)

	if id, parseErr := uuid.Parse(term); parseErr == nil {
		product, err = s.productRepo.FindByID(id)
	} else {
		product, err = s.productRepo.FindByTerm(term)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		s.logger.Error().Err(err).Str("term", term).Msg("failed to find product")
		return nil, apperr.ErrInternal
	}
	return product, nil
}

func (s *productService) FindOnePlain(term string) (*model.PlainProduct, error) {
	product, err := s.FindOne(term)
	if err != nil {
		return nil, err
	}
	plain := product.ToPlain()
	return &plain, nil
}

// Update merges the patch onto the stored product and, when an image list is
// supplied, replaces the image set inside one transaction: delete old rows,
// insert new ones, save the product. All three succeed or none do, and every
// failure surfaces.
func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest) (*model.PlainProduct, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		s.logger.Error().Err(err).Str("id", id.String()).Msg("failed to load product for update")
		return nil, apperr.ErrInternal
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Images != nil {
			if err := s.productRepo.ReplaceImages(tx, id, *req.Images); err != nil {
				return err
			}
		}
		return s.productRepo.Save(tx, product)
	})
	if err != nil {
		if apperr.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrDuplicateEntry, apperr.DuplicateDetail(err))
		}
		s.logger.Error().Err(err).Str("id", id.String()).Msg("failed to update product")
		return nil, apperr.ErrInternal
	}

	plain, err := s.FindOnePlain(id.String())
	if err != nil {
		return nil, err
	}

	s.events.Publish("product_updated", plain)

	return plain, nil
}

// Remove fetches the product first so a missing id fails with not-found
// rather than a silent no-op delete.
func (s *productService) Remove(id uuid.UUID) error {
	product, err := s.FindOne(id.String())
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(product); err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete product")
		return apperr.ErrInternal
	}

	s.events.Publish("product_deleted", map[string]string{"id": id.String()})

	return nil
}

// RemoveAll wipes the catalog unconditionally. Idempotent; an empty store
// is a success.
func (s *productService) RemoveAll() error {
	if err := s.productRepo.DeleteAll(); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete all products")
		return apperr.ErrInternal
	}
	return nil
}
