package routes

import (
	"trackventory/app"
	"trackventory/controllers"

	"github.com/gin-gonic/gin"
)

// resource is the uniform CRUD surface every entity controller exposes.
type resource interface {
	Index(c *gin.Context)
	Store(c *gin.Context)
	Show(c *gin.Context)
	Update(c *gin.Context)
	Destroy(c *gin.Context)
}

func mount(g *gin.RouterGroup, path string, ct resource) {
	grp := g.Group(path)
	grp.GET("", ct.Index)
	grp.POST("", ct.Store)
	grp.GET("/:id", ct.Show)
	grp.PUT("/:id", ct.Update)
	grp.DELETE("/:id", ct.Destroy)
}

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.NewSrv(a)
	auth := controllers.NewAuthController(s)

	api := r.Group("/api")
	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)

	protected := api.Group("", app.AuthRequired(a))
	protected.POST("/logout", auth.Logout)

	mount(protected, "/roles", controllers.NewRoleController(s))
	mount(protected, "/categories", controllers.NewCategoryController(s))
	mount(protected, "/items", controllers.NewItemController(s))
	mount(protected, "/borrow-statuses", controllers.NewBorrowStatusController(s))
	mount(protected, "/request-statuses", controllers.NewRequestStatusController(s))
	mount(protected, "/item-borroweds", controllers.NewItemBorrowedController(s))
	mount(protected, "/purchase-invoices", controllers.NewPurchaseInvoiceController(s))
	mount(protected, "/purchase-requests", controllers.NewPurchaseRequestController(s))
}
