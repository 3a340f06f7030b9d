package routes

import (
	"github.com/CoderDeepakJoura/BankingSolution-sub003/controllers"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/middlewares"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", middlewares.RequireAuth(), controllers.Logout)
			auth.POST("/logout-all", middlewares.RequireAuth(), controllers.LogoutAll)
		}

		// Everything below needs a live session.
		protected := api.Group("/", middlewares.RequireAuth())

		// Voucher posting
		protected.POST("/SavingDW", controllers.PostSavingDW)
		protected.PUT("/SavingDW/:id", controllers.UpdateSavingDW)
		protected.POST("/SavingDW/:id/verify", controllers.VerifySavingDW)
		protected.POST("/SavingDW/interest", controllers.PostInterest)
		protected.GET("/vouchers", controllers.GetVouchers)
		protected.GET("/vouchers/:id", controllers.GetVoucher)

		// Branch administration
		admin := protected.Group("/", middlewares.RequireAdmin())
		{
			admin.POST("/branches", controllers.CreateBranch)
			admin.PUT("/branches/:id", controllers.UpdateBranch)
			admin.DELETE("/branches/:id", controllers.DeleteBranch)
			admin.POST("/voucher-number-series", controllers.CreateVoucherNumberSeries)
			admin.PUT("/voucher-number-series/:id", controllers.UpdateVoucherNumberSeries)
			admin.DELETE("/voucher-number-series/:id", controllers.DeleteVoucherNumberSeries)
			admin.POST("/users", controllers.CreateUser)
			admin.GET("/users", controllers.GetUsers)
			admin.GET("/users/:id", controllers.GetUser)
			admin.POST("/cache/clear", controllers.ClearCache)
		}
		protected.GET("/branches", controllers.GetBranches)
		protected.GET("/branches/:id", controllers.GetBranch)
		protected.GET("/voucher-number-series", controllers.GetVoucherNumberSeriesAll)
		protected.GET("/voucher-number-series/:id", controllers.GetVoucherNumberSeries)

		zones := protected.Group("/zones")
		{
			zones.GET("", controllers.GetZones)
			zones.GET("/:id", controllers.GetZone)
			zones.POST("", controllers.CreateZone)
			zones.PUT("/:id", controllers.UpdateZone)
			zones.DELETE("/:id", controllers.DeleteZone)
		}

		tehsils := protected.Group("/tehsils")
		{
			tehsils.GET("", controllers.GetTehsils)
			tehsils.GET("/:id", controllers.GetTehsil)
			tehsils.POST("", controllers.CreateTehsil)
			tehsils.PUT("/:id", controllers.UpdateTehsil)
			tehsils.DELETE("/:id", controllers.DeleteTehsil)
		}

		villages := protected.Group("/villages")
		{
			villages.GET("", controllers.GetVillages)
			villages.GET("/:id", controllers.GetVillage)
			villages.POST("", controllers.CreateVillage)
			villages.PUT("/:id", controllers.UpdateVillage)
			villages.DELETE("/:id", controllers.DeleteVillage)
		}

		castes := protected.Group("/castes")
		{
			castes.GET("", controllers.GetCastes)
			castes.GET("/:id", controllers.GetCaste)
			castes.POST("", controllers.CreateCaste)
			castes.PUT("/:id", controllers.UpdateCaste)
			castes.DELETE("/:id", controllers.DeleteCaste)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", controllers.GetCategories)
			categories.GET("/:id", controllers.GetCategory)
			categories.POST("", controllers.CreateCategory)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		heads := protected.Group("/account-heads")
		{
			heads.GET("", controllers.GetAccountHeads)
			heads.GET("/:id", controllers.GetAccountHead)
			heads.POST("", controllers.CreateAccountHead)
			heads.PUT("/:id", controllers.UpdateAccountHead)
			heads.DELETE("/:id", controllers.DeleteAccountHead)
		}

		products := protected.Group("/saving-products")
		{
			products.GET("", controllers.GetSavingProducts)
			products.GET("/:id", controllers.GetSavingProduct)
			products.POST("", controllers.CreateSavingProduct)
			products.PUT("/:id", controllers.UpdateSavingProduct)
			products.PUT("/:id/toggle", controllers.ToggleSavingProductActive)
			products.DELETE("/:id", controllers.DeleteSavingProduct)
		}

		members := protected.Group("/members")
		{
			members.GET("", controllers.GetMembers)
			members.GET("/:id", controllers.GetMember)
			members.POST("", controllers.CreateMember)
			members.PUT("/:id", controllers.UpdateMember)
			members.DELETE("/:id", controllers.DeleteMember)
		}

		accounts := protected.Group("/saving-accounts")
		{
			accounts.GET("", controllers.GetSavingAccounts)
			accounts.GET("/:id", controllers.GetSavingAccount)
			accounts.POST("", controllers.OpenSavingAccount)
			accounts.PUT("/:id/close", controllers.CloseSavingAccount)
			accounts.DELETE("/:id", controllers.DeleteSavingAccount)
		}

		protected.GET("/reports/daybook", controllers.GetDayBook)
	}
}
