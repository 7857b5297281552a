package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/httpserver/assets"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/internal/status"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	products, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, transport.NewProductViews(products))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, transport.NewProductView(product))
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := withActor(c, logging.FromContext(ctx).With("handler", "product.create"))

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "validation", "error", err)
		return c.JSON(http.StatusBadRequest, transport.NewStatusResponse(status.Errorf("%s", err)))
	}

	product, st := h.Svc.CreateProduct(ctx, req.Description, req.Price)
	if !st.OK() {
		return c.JSON(statusCode(st), transport.NewStatusResponse(st))
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"product": transport.NewProductView(product),
		"status":  transport.NewStatusResponse(st),
	})
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := withActor(c, logging.FromContext(ctx).With("handler", "product.update"))

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "validation", "error", err)
		return c.JSON(http.StatusBadRequest, transport.NewStatusResponse(status.Errorf("%s", err)))
	}

	product, st := h.Svc.UpdateProduct(ctx, id, req.Description, req.Price)
	if !st.OK() {
		return c.JSON(statusCode(st), transport.NewStatusResponse(st))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"product": transport.NewProductView(product),
		"status":  transport.NewStatusResponse(st),
	})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := withActor(c, logging.FromContext(ctx).With("handler", "product.delete"))

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	st := h.Svc.DeleteProduct(ctx, id)
	return c.JSON(statusCode(st), transport.NewStatusResponse(st))
}

func (h *ProductHTTP) UploadProductImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := withActor(c, logging.FromContext(ctx).With("handler", "product.upload_image"))

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("upload_image_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		st := status.Errorf("No image selected. Please choose an image.")
		return c.JSON(http.StatusBadRequest, transport.NewStatusResponse(st))
	}

	f, err := fh.Open()
	if err != nil {
		l.Error("upload_image_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		l.Error("upload_image_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read upload")
	}

	contentType := fh.Header.Get("Content-Type")
	st := h.Svc.SetProductImage(ctx, id, fh.Filename, contentType, data)
	return c.JSON(statusCode(st), transport.NewStatusResponse(st))
}

// GetProductImage serves the stored image, or the embedded placeholder when
// the repository reports absent. The placeholder substitution lives here,
// at the presentation boundary, not in the repository.
func (h *ProductHTTP) GetProductImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_image")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_image_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	image, err := h.Svc.GetProductImage(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrImageNotFound) {
			return c.Blob(http.StatusOK, assets.PlaceholderContentType, assets.PlaceholderPNG)
		}
		l.Error("get_image_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get image")
	}

	return c.Blob(http.StatusOK, image.ContentType, image.ImageData)
}

func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// statusCode maps an outcome kind to the HTTP code carrying it. Warnings
// are not-found style misses, errors are conflicts or bad input.
func statusCode(st status.Status) int {
	switch st.Kind {
	case status.KindSuccess:
		return http.StatusOK
	case status.KindWarning:
		return http.StatusNotFound
	default:
		return http.StatusConflict
	}
}
