package routes

import (
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/configs"
	"github.com/Bhagwat-Patil/JobWebsite/controllers"
	"github.com/Bhagwat-Patil/JobWebsite/middlewares"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"github.com/Bhagwat-Patil/JobWebsite/services"
	"github.com/Bhagwat-Patil/JobWebsite/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.ModerationHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	superAdminRepo := repository.NewSuperAdminRepository(db)
	userRepo := repository.NewUserRepository(db)
	pendingRepo := repository.NewPendingPostRepository(db)
	jobRepo := repository.NewJobRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	formRepo := repository.NewFormRepository(db)
	planRepo := repository.NewPlanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	placementRepo := repository.NewPlacementRepository(db)
	interviewRepo := repository.NewMockInterviewRepository(db)

	// Services
	notifier := services.NewNotifier(cfg)
	adminSvc := services.NewAdminService(adminRepo, notifier, cfg.SuperAdminEmail)
	superAdminSvc := services.NewSuperAdminService(superAdminRepo)
	userSvc := services.NewUserService(userRepo, notifier)
	moderationSvc := services.NewModerationService(adminRepo, pendingRepo, jobRepo, internshipRepo, notifier)
	moderationSvc.SetFeed(hub)
	jobSvc := services.NewJobService(jobRepo, adminRepo)
	internshipSvc := services.NewInternshipService(internshipRepo, adminRepo)
	formSvc := services.NewFormService(formRepo, jobRepo, internshipRepo)
	planSvc := services.NewPlanService(planRepo)
	paymentSvc := services.NewPaymentService(userRepo, planRepo, paymentRepo, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Controllers
	adminCtrl := controllers.NewAdminController(adminSvc, moderationSvc, formSvc, cfg)
	superAdminCtrl := controllers.NewSuperAdminController(superAdminSvc, moderationSvc, cfg)
	userCtrl := controllers.NewUserController(userSvc, cfg)
	jobCtrl := controllers.NewJobController(jobSvc)
	internshipCtrl := controllers.NewInternshipController(internshipSvc)
	formCtrl := controllers.NewFormController(formSvc)
	planCtrl := controllers.NewPlanController(planSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	placementCtrl := controllers.NewPlacementController(placementRepo, interviewRepo)

	// login กันเดา password ด้วย rate limit (ถ้าไม่มี redis จะ fail-open)
	limiter := middlewares.NewRedisLimiter(cfg.RedisAddr)
	loginLimit := middlewares.LoginRateLimit(limiter, 10, time.Minute)

	// Public
	r.GET("/jobs", jobCtrl.List)
	r.GET("/jobs/:id", jobCtrl.Detail)
	r.GET("/internships", internshipCtrl.List)
	r.GET("/internships/:id", internshipCtrl.Detail)
	r.GET("/plans", planCtrl.List)
	r.GET("/plans/:id", planCtrl.Detail)
	r.GET("/placements", placementCtrl.ListPlacements)
	r.GET("/mock-interviews", placementCtrl.ListMockInterviews)

	// User (public)
	u := r.Group("/user")
	{
		u.POST("/register", userCtrl.Register)
		u.POST("/login", loginLimit, userCtrl.Login)
		u.POST("/forgot-password", userCtrl.ForgotPassword)
		u.POST("/reset-password", userCtrl.ResetPassword)
	}

	// User (protected)
	uAuth := u.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, middlewares.RoleUser))
	{
		uAuth.GET("/me", userCtrl.Me)
		uAuth.PATCH("/me", userCtrl.Update)
		uAuth.DELETE("/me", userCtrl.Delete)
		uAuth.POST("/forms", formCtrl.Submit)
		uAuth.POST("/payments/order", paymentCtrl.CreateOrder)
		uAuth.POST("/payments/verify", paymentCtrl.Verify)
		uAuth.GET("/payments", paymentCtrl.MyPayments)
	}

	// Admin (public)
	a := r.Group("/admin")
	{
		a.POST("/register", adminCtrl.Register)
		a.POST("/login", loginLimit, adminCtrl.Login)
	}

	// Admin (protected) — ทุก endpoint หลัง login ยังโดน gate approved/enabled ใน service อีกชั้น
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, middlewares.RoleAdmin))
	{
		aAuth.GET("/me", adminCtrl.Me)
		aAuth.PATCH("/me", adminCtrl.Update)
		aAuth.DELETE("/me", adminCtrl.Delete)

		// ยื่น draft เข้าคิว moderation
		aAuth.POST("/jobs", adminCtrl.SubmitJob)
		aAuth.POST("/internships", adminCtrl.SubmitInternship)

		// จัดการโพสต์ที่อนุมัติแล้วของตัวเอง
		aAuth.GET("/jobs", jobCtrl.ListMine)
		aAuth.PUT("/jobs/:id", jobCtrl.Update)
		aAuth.PATCH("/jobs/:id/status", jobCtrl.UpdateStatus)
		aAuth.DELETE("/jobs/:id", jobCtrl.Delete)
		aAuth.GET("/internships", internshipCtrl.ListMine)
		aAuth.PUT("/internships/:id", internshipCtrl.Update)
		aAuth.PATCH("/internships/:id/status", internshipCtrl.UpdateStatus)
		aAuth.DELETE("/internships/:id", internshipCtrl.Delete)

		// ใบสมัครที่ส่งเข้าโพสต์ของตัวเอง
		aAuth.GET("/forms", adminCtrl.ListForms)
		aAuth.GET("/forms/:id", adminCtrl.GetForm)
		aAuth.GET("/forms/:id/cv", formCtrl.DownloadCV)
		aAuth.GET("/jobs/:id/forms", formCtrl.ListByJob)
		aAuth.GET("/internships/:id/forms", formCtrl.ListByInternship)
	}

	// Super admin (public)
	sa := r.Group("/superadmin")
	{
		sa.POST("/register", superAdminCtrl.Register)
		sa.POST("/login", loginLimit, superAdminCtrl.Login)
	}

	// Super admin (protected)
	saAuth := sa.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, middlewares.RoleSuperAdmin))
	{
		saAuth.PATCH("/me", superAdminCtrl.Update)
		saAuth.DELETE("/me", superAdminCtrl.Delete)

		// moderation
		saAuth.GET("/admins", superAdminCtrl.ListAdmins)
		saAuth.PATCH("/admins/:id/approve", superAdminCtrl.ApproveAdmin)
		saAuth.PATCH("/admins/:id/disable", superAdminCtrl.DisableAdmin)
		saAuth.GET("/pending-posts", superAdminCtrl.ListPendingPosts)
		saAuth.PATCH("/pending-posts/:id", superAdminCtrl.DecidePost)

		// plans
		saAuth.POST("/plans", planCtrl.Create)
		saAuth.PATCH("/plans/:id", planCtrl.Update)
		saAuth.DELETE("/plans/:id", planCtrl.Delete)

		// payment reports
		saAuth.GET("/payments", paymentCtrl.ListAll)
		saAuth.GET("/payments/status/:status", paymentCtrl.ListByStatus)
		saAuth.GET("/plans/:id/payments", paymentCtrl.ListByPlan)
		saAuth.GET("/plans/:id/users", paymentCtrl.UsersInPlan)

		// placement / mock interview links
		saAuth.POST("/placements", placementCtrl.CreatePlacement)
		saAuth.PATCH("/placements/:id", placementCtrl.UpdatePlacement)
		saAuth.DELETE("/placements/:id", placementCtrl.DeletePlacement)
		saAuth.POST("/mock-interviews", placementCtrl.CreateMockInterview)
		saAuth.PATCH("/mock-interviews/:id", placementCtrl.UpdateMockInterview)
		saAuth.DELETE("/mock-interviews/:id", placementCtrl.DeleteMockInterview)
	}

	// feed เหตุการณ์ moderation แบบ realtime (super admin dashboard)
	r.GET("/ws/moderation", middlewares.WSAuthMiddleware(cfg.JWTSecret, middlewares.RoleSuperAdmin), hub.ServeWS)
}
