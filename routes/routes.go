package routes

import (
    "backend/controllers"
    "backend/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Analysis pipeline
    food := r.Group("/food")
    food.Use(middlewares.AuthMiddleware())
    {
        food.POST("/analyze", controllers.AnalyzeFood)
    }

    // Saved meal records
    records := r.Group("/records")
    records.Use(middlewares.AuthMiddleware())
    {
        records.POST("", controllers.SaveRecord)
        records.GET("", controllers.ListRecords)
        records.GET("/summary", controllers.RecordSummary)
    }

    r.POST("/images", middlewares.AuthMiddleware(), controllers.UploadImage)

    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
    }

    return r
}
