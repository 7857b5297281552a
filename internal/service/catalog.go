package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/status"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, description string, price float64) (*models.Product, status.Status) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if strings.TrimSpace(description) == "" {
		return nil, status.Errorf("Description is required.")
	}
	if price < 0 {
		return nil, status.Errorf("Price cannot be negative.")
	}

	product := models.Product{Description: description, Price: price}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		l.Error("create_product_error", "error", err)
		return nil, status.Errorf("Failed to create product: %s", description)
	}

	s.publish(ctx, "product_created", &product)
	l.Info("create_product_success", "product_id", product.ID)
	return &product, status.Successf("Product created successfully: %s", product.Description)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, description string, price float64) (*models.Product, status.Status) {
	l := logging.FromContext(ctx).With("svc", "catalog.update", "product_id", id)

	if strings.TrimSpace(description) == "" {
		return nil, status.Errorf("Description is required.")
	}
	if price < 0 {
		return nil, status.Errorf("Price cannot be negative.")
	}

	product, err := s.Repo.UpdateProduct(ctx, id, description, price)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			l.Warn("update_product_failed", "reason", "product not found")
			return nil, status.Warningf("Product with ID: %d not found.", id)
		}
		l.Error("update_product_error", "error", err)
		return nil, status.Errorf("Failed to update product with ID: %d.", id)
	}

	s.publish(ctx, "product_updated", product)
	l.Info("update_product_success")
	return product, status.Successf("Product %d updated successfully.", product.ID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) status.Status {
	l := logging.FromContext(ctx).With("svc", "catalog.delete", "product_id", id)

	err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			l.Warn("delete_product_failed", "reason", "product not found")
			return status.Warningf("Product with ID: %d not found.", id)
		}
		l.Error("delete_product_error", "error", err)
		return status.Errorf("Failed to delete product with ID: %d.", id)
	}

	s.publish(ctx, "product_deleted", &models.Product{ID: id})
	l.Info("delete_product_success")
	return status.Successf("Product %d deleted successfully.", id)
}

func (s *CatalogService) SetProductImage(ctx context.Context, id uint, fileName, contentType string, data []byte) status.Status {
	l := logging.FromContext(ctx).With("svc", "catalog.set_image", "product_id", id)

	if len(data) == 0 {
		return status.Errorf("No image selected. Please choose an image.")
	}

	err := s.Repo.SetProductImage(ctx, id, fileName, contentType, data)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			l.Warn("set_image_failed", "reason", "product not found")
			return status.Errorf("Product with ID: %d not found.", id)
		}
		l.Error("set_image_error", "error", err)
		return status.Errorf("Failed to upload image.")
	}

	l.Info("set_image_success", "file", fileName)
	return status.Successf("Image uploaded successfully!")
}

func (s *CatalogService) GetProductImage(ctx context.Context, id uint) (*models.ProductImage, error) {
	return s.Repo.GetProductImage(ctx, id)
}

// publish is best-effort: consumers follow the catalog, they do not gate it.
func (s *CatalogService) publish(ctx context.Context, eventType string, product *models.Product) {
	if s.Producer == nil {
		return
	}
	event := events.ProductEvent{
		Type:        eventType,
		ProductID:   product.ID,
		Description: product.Description,
		Price:       product.Price,
	}
	if err := s.Producer.PublishEvent(ctx, strconv.FormatUint(uint64(product.ID), 10), event); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "type", eventType, "error", err)
	}
}
