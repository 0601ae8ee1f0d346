package fulfilment

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	fulfilmentService "supplysense/service/fulfilment"
)

func init() {
	api.RegisterModule(RegisterFulfilmentRoutes)
}

type purchaseRequest struct {
	Item string `json:"item"`
	Qty  int64  `json:"qty"`
}

func RegisterFulfilmentRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc, err := fulfilmentService.NewService(db)
	if err != nil {
		panic("fulfilment api: " + err.Error())
	}
	g := apiGroup.Group("/fulfilment", auth.RequireResource(auth.ResourceFulfilment))

	// GET /api/fulfilment/plan?item=&qty= – allocation across own stock and the supply pool
	g.GET("/plan", func(c echo.Context) error {
		qty, err := strconv.ParseInt(c.QueryParam("qty"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "qty must be an integer"})
		}
		plan, err := svc.Plan(c.Request().Context(), c.QueryParam("item"), qty)
		if err != nil {
			return api.ErrorJSON(c, err, fulfilmentService.ErrUnknownItem)
		}
		return c.JSON(http.StatusOK, plan)
	})

	// POST /api/fulfilment/purchase – move pool stock into owned inventory
	g.POST("/purchase", func(c echo.Context) error {
		var body purchaseRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		plan, err := svc.Purchase(c.Request().Context(), body.Item, body.Qty)
		if err != nil {
			return api.ErrorJSON(c, err, fulfilmentService.ErrUnknownItem, fulfilmentService.ErrInvalidQuantity)
		}
		return c.JSON(http.StatusOK, plan)
	})
}
