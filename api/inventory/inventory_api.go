package inventory

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	inventoryRepo "supplysense/model/repository/inventory"
	"supplysense/service/importer"
)

func init() {
	api.RegisterModule(RegisterInventoryRoutes)
}

type importRequest struct {
	Items     []map[string]interface{} `json:"items"`
	BatchSize int                      `json:"batch_size"`
}

func RegisterInventoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo, err := inventoryRepo.NewInventoryRepository(db)
	if err != nil {
		panic("inventory api: " + err.Error())
	}
	pool := inventoryRepo.NewSupplyPoolRepository(db)
	reference := inventoryRepo.NewReferenceRepository(db)

	g := apiGroup.Group("/inventory", auth.RequireResource(auth.ResourceInventory))

	// GET /api/inventory
	g.GET("", func(c echo.Context) error {
		rows, err := repo.List(c.Request().Context())
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, rows)
	})

	// GET /api/inventory/pool?item=
	g.GET("/pool", func(c echo.Context) error {
		ctx := c.Request().Context()
		if item := c.QueryParam("item"); item != "" {
			rows, err := pool.ListByItem(ctx, item)
			if err != nil {
				return api.ErrorJSON(c, err)
			}
			return c.JSON(http.StatusOK, rows)
		}
		rows, err := pool.List(ctx)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, rows)
	})

	// GET /api/inventory/suppliers?item=
	g.GET("/suppliers", func(c echo.Context) error {
		rows, err := reference.Suppliers(c.Request().Context(), c.QueryParam("item"))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, rows)
	})

	// POST /api/inventory/import – bulk upsert on (item, warehouse)
	g.POST("/import", importHandler(db, importer.TableInventory))

	// POST /api/import/:table – bulk append to any importable table
	apiGroup.POST("/import/:table", func(c echo.Context) error {
		return importHandler(db, c.Param("table"))(c)
	}, auth.RequireResource(auth.ResourceInventory))
}

func importHandler(db *gorm.DB, table string) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		var body importRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		res, err := importer.ImportRecords(c.Request().Context(), db, body.Items, importer.ImportOptions{
			Table:     table,
			BatchSize: body.BatchSize,
		})
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return api.ErrorJSON(c, err, importer.ErrUnknownTable)
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"table":               res.Table,
			"imported":            res.Imported,
			"skipped":             res.Skipped,
			"warnings":            res.Warnings,
			"request_duration_ms": duration,
		})
	}
}
