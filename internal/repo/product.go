package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, description string, price float64) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		product.Description = description
		product.Price = price
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product and any image row referencing it in one
// transaction, so a blob can never outlive its product.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// SetProductImage replaces any existing image for the product with the new
// upload. Delete and insert share one transaction: a failed insert rolls
// the delete back, so the product is never left imageless halfway.
func (r *GormRepo) SetProductImage(ctx context.Context, id uint, fileName, contentType string, data []byte) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		image := models.ProductImage{
			ProductID:   &product.ID,
			FileName:    fileName,
			ContentType: contentType,
			ImageData:   data,
		}
		return tx.Create(&image).Error
	})
}

// GetProductImage returns the image for a product, or ErrImageNotFound.
// Ordering by image id makes the result deterministic should the
// at-most-one invariant ever be violated out of band.
func (r *GormRepo) GetProductImage(ctx context.Context, id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", id).
		Order("id ASC").
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}
