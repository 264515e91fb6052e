package product

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"product-service/internal/models"
	"product-service/internal/response"
)

const resource = "product"

// ProductRequest is the create/update payload. All three fields are
// required; zero values count as missing.
type ProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"required"`
	UnitMeasureID uint    `json:"unit_measure_id" validate:"required"`
}

var validate = validator.New()

// RegisterRoutes wires the product endpoints onto the app.
func RegisterRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/products", ListProductsHandler(db))
	app.Get("/product/:id", GetProductHandler(db))
	app.Post("/product", CreateProductHandler(db))
	app.Put("/product/:id", UpdateProductHandler(db))
	app.Delete("/product/:id", DeleteProductHandler(db))
}

// GET /products?offset=&limit=&search=
// An empty page is a normal success; total_records always counts every
// match, not just the page.
func ListProductsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 10)
		search := c.Query("search")

		var totalRecords int64
		if err := db.Model(&models.Product{}).
			Where("name LIKE ?", "%"+search+"%").
			Count(&totalRecords).Error; err != nil {
			return internalError(c, err)
		}

		var products []models.Product
		if err := db.
			Where("name LIKE ?", "%"+search+"%").
			Offset(offset).Limit(limit).
			Find(&products).Error; err != nil {
			return internalError(c, err)
		}

		views, err := toViews(db, products)
		if err != nil {
			return internalError(c, err)
		}

		return c.JSON(response.Paginated(response.RecordFound("products"), views, totalRecords))
	}
}

// GET /product/:id
func GetProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		p, found, err := findProduct(db, id)
		if err != nil {
			return internalError(c, err)
		}
		if !found {
			return notFound(c, id)
		}

		view, err := toView(db, p)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(response.New(response.RecordFound(resource), view, fiber.StatusOK, nil))
	}
}

// POST /product
// Reports code 200 on success, not 201. A uniqueness or foreign key
// rejection from the database surfaces as the generic 500 envelope.
func CreateProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return invalidPayload(c, err)
		}
		if err := validate.Struct(&body); err != nil {
			return invalidPayload(c, err)
		}

		p := models.Product{
			Name:          body.Name,
			Price:         body.Price,
			UnitMeasureID: body.UnitMeasureID,
		}
		if err := db.Create(&p).Error; err != nil {
			return internalError(c, err)
		}

		view, err := toView(db, p)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(response.New(response.RecordCreated(resource), view, fiber.StatusOK, nil))
	}
}

// PUT /product/:id
// Full overwrite of name/price/unit_measure_id in a single write.
func UpdateProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		p, found, err := findProduct(db, id)
		if err != nil {
			return internalError(c, err)
		}
		if !found {
			return notFound(c, id)
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return invalidPayload(c, err)
		}
		if err := validate.Struct(&body); err != nil {
			return invalidPayload(c, err)
		}

		p.Name = body.Name
		p.Price = body.Price
		p.UnitMeasureID = body.UnitMeasureID
		if err := db.Save(&p).Error; err != nil {
			return internalError(c, err)
		}

		view, err := toView(db, p)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(response.New(response.RecordUpdated(resource, id), view, fiber.StatusOK, nil))
	}
}

// DELETE /product/:id
// Physical delete. Repeating a delete hits the not-found branch.
func DeleteProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		p, found, err := findProduct(db, id)
		if err != nil {
			return internalError(c, err)
		}
		if !found {
			return notFound(c, id)
		}

		if err := db.Delete(&models.Product{}, "id = ?", p.ID).Error; err != nil {
			return internalError(c, err)
		}
		return c.JSON(response.New(response.RecordDeleted(resource, id), nil, fiber.StatusOK, nil))
	}
}

// findProduct treats unparseable ids the same as missing rows, so any id
// value yields the uniform not-found answer instead of a server error.
func findProduct(db *gorm.DB, id string) (models.Product, bool, error) {
	var p models.Product

	n, err := strconv.Atoi(id)
	if err != nil {
		return p, false, nil
	}

	err = db.First(&p, "id = ?", n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}

func notFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(response.New(response.RecordNotFound(resource, id), nil, fiber.StatusBadRequest, nil))
}

func invalidPayload(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(response.New(response.InvalidPayload(resource), nil, fiber.StatusBadRequest, err.Error()))
}

func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).
		JSON(response.New(response.MsgInternalError, nil, fiber.StatusInternalServerError, nil))
}
