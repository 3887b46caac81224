package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"sdh_inventory/app"
	"sdh_inventory/controllers"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	assetCtl := controllers.NewAssetController(s)
	settingsCtl := controllers.NewSettingsController(s)
	backupCtl := controllers.NewBackupController(s)
	exportCtl := controllers.NewExportController(s)
	activityCtl := controllers.NewActivityController(s)
	userCtl := controllers.GetUserController(s.Repo, s.AppSess)

	authMW := app.AuthRequired(s.AppSess, s.Repo)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// Auth (public login, protected rest)
	// ------------------------------
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authCtl.Login)
	}
	authed := auth.Group("", authMW, seenMW)
	{
		authed.POST("/logout", authCtl.Logout)
		authed.GET("/whoami", authCtl.WhoAmI)
	}

	// ------------------------------
	// Assets: everyone logged in can browse, only admins mutate
	// ------------------------------
	assets := r.Group("/api/assets", authMW, seenMW)
	{
		assets.GET("", assetCtl.ListAssets) // ?q=&category=&page=&size=
		assets.GET("/:id", assetCtl.GetAsset)
	}
	assetsAdmin := r.Group("/api/assets", authMW, adminMW)
	{
		assetsAdmin.POST("", assetCtl.CreateAsset)
		assetsAdmin.PUT("/:id", assetCtl.UpdateAsset)
		assetsAdmin.DELETE("/:id", assetCtl.SoftDeleteAsset)
		assetsAdmin.POST("/:id/restore", assetCtl.RestoreAsset)
		assetsAdmin.DELETE("/:id/purge", assetCtl.PurgeAsset)
	}

	// ------------------------------
	// Derived views
	// ------------------------------
	views := r.Group("/api", authMW, seenMW)
	{
		views.GET("/notifications", assetCtl.ListNotifications)
		views.GET("/stats", assetCtl.Stats)
		views.GET("/export/csv", exportCtl.CSV)
		views.GET("/export/pdf", exportCtl.PDF)
	}

	// ------------------------------
	// Settings lists: browsing needs login, editing needs admin
	// ------------------------------
	settings := r.Group("/api/settings", authMW, seenMW)
	{
		settings.GET("/:type", settingsCtl.ListValues) // ?all=1 includes inactive
	}
	settingsAdmin := r.Group("/api/settings", authMW, adminMW)
	{
		settingsAdmin.POST("/:type", settingsCtl.AddValue)
		settingsAdmin.DELETE("/:type", settingsCtl.RemoveValue)
	}

	// ------------------------------
	// Backup, activity feed, user management (admin only)
	// ------------------------------
	admin := r.Group("/api", authMW, adminMW)
	{
		admin.GET("/trash", assetCtl.ListTrash)

		admin.GET("/backup", backupCtl.Export)
		admin.POST("/backup/restore", backupCtl.Restore)
		admin.GET("/activity", activityCtl.ListActivity)

		admin.GET("/users", userCtl.ListUsers) // ?q=&page=&size=
		admin.POST("/users", userCtl.CreateUser)
		admin.DELETE("/users/:id", userCtl.DeleteUser)
	}
}
