package handler

// Read-only catalog endpoints. The dataset is static and in-process, so
// these handlers never touch the database; they only decorate entries
// with the derived final price. Sitting behind the Redis response cache
// they are effectively free.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopluxe/backend/internal/catalog"
)

// GetCategories returns the category map for the storefront landing page.
func GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Categories())
}

// GetProducts lists all products of one category, each carrying its
// computed final price. Unknown categories yield 404.
func GetProducts(c echo.Context) error {
	products, err := catalog.ProductsByCategory(c.Param("category"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by id, searching all categories.
func GetProduct(c echo.Context) error {
	p, err := catalog.ProductByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}
	return c.JSON(http.StatusOK, p)
}
