package service

import (
	"errors"

	"github.com/google/uuid"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
)

var (
	ErrNotFarmer = errors.New("only farmers can manage products")
	ErrNotOwner  = errors.New("product belongs to another farmer")
)

// ProductService covers the farmer-side product management page: farmers
// create, update and delete their own catalog entries.
type ProductService struct {
	catalog *repository.Catalog
}

func NewProductService(catalog *repository.Catalog) *ProductService {
	return &ProductService{catalog: catalog}
}

// ProductInput carries the fields of the add/edit product form.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Unit        string
	Category    string
	Images      []string
	Quantity    int
	HarvestDate string
	Organic     bool
}

// Create adds a new product owned by the given farmer. New listings start
// unrated and in stock whenever quantity is positive.
func (s *ProductService) Create(owner model.User, in ProductInput) (model.Product, error) {
	if owner.Role != model.RoleFarmer {
		return model.Product{}, ErrNotFarmer
	}

	p := model.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		Category:    in.Category,
		FarmerID:    owner.ID,
		FarmerName:  owner.Name,
		Images:      in.Images,
		InStock:     in.Quantity > 0,
		Quantity:    in.Quantity,
		HarvestDate: in.HarvestDate,
		Location:    owner.Location,
		Organic:     in.Organic,
	}
	s.catalog.Create(p)
	return p, nil
}

// Update overwrites the listing's form fields. Identity, farmer and rating
// data stay as they are.
func (s *ProductService) Update(owner model.User, id string, in ProductInput) (model.Product, error) {
	existing, err := s.catalog.Get(id)
	if err != nil {
		return model.Product{}, err
	}
	if existing.FarmerID != owner.ID {
		return model.Product{}, ErrNotOwner
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.Unit = in.Unit
	existing.Category = in.Category
	if len(in.Images) > 0 {
		existing.Images = in.Images
	}
	existing.Quantity = in.Quantity
	existing.InStock = in.Quantity > 0
	existing.HarvestDate = in.HarvestDate
	existing.Organic = in.Organic

	if err := s.catalog.Update(existing); err != nil {
		return model.Product{}, err
	}
	return existing, nil
}

func (s *ProductService) Delete(owner model.User, id string) error {
	existing, err := s.catalog.Get(id)
	if err != nil {
		return err
	}
	if existing.FarmerID != owner.ID {
		return ErrNotOwner
	}
	return s.catalog.Delete(id)
}
