package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	SignIn(c *ginext.Context)
	SignOut(c *ginext.Context)
	Me(c *ginext.Context)
	MyRegistrations(c *ginext.Context)
	MyEnquiries(c *ginext.Context)

	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	Eligibility(c *ginext.Context)
	Register(c *ginext.Context)
	SubmitEnquiry(c *ginext.Context)
	DeleteEnquiry(c *ginext.Context)
	ReplyEnquiry(c *ginext.Context)
	SubmitFeedback(c *ginext.Context)

	VerifyPayment(c *ginext.Context)
	VIPCheckout(c *ginext.Context)

	CreatorEvents(c *ginext.Context)
	CreatorStats(c *ginext.Context)
	EventRegistrations(c *ginext.Context)
	CreatorEnquiries(c *ginext.Context)
	CreatorFeedback(c *ginext.Context)

	UploadPoster(c *ginext.Context)
	UploadPhoto(c *ginext.Context)
}

// Guards are the per-route middlewares: Auth requires a session, OptionalAuth
// attaches one when present, Creator restricts to the creator role and
// SignInLimit throttles credential endpoints.
type Guards struct {
	Auth         ginext.HandlerFunc
	OptionalAuth ginext.HandlerFunc
	Creator      ginext.HandlerFunc
	SignInLimit  ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", g.SignInLimit, h.SignUp)
		api.POST("/auth/signin", g.SignInLimit, h.SignIn)
		api.POST("/auth/signout", g.Auth, h.SignOut)

		// Events
		api.GET("/events", g.OptionalAuth, h.ListEvents)
		api.GET("/events/:id", g.OptionalAuth, h.GetEvent)
		api.GET("/events/:id/eligibility", g.OptionalAuth, h.Eligibility)
		api.POST("/events", g.Auth, g.Creator, h.CreateEvent)
		api.PUT("/events/:id", g.Auth, g.Creator, h.UpdateEvent)
		api.DELETE("/events/:id", g.Auth, g.Creator, h.DeleteEvent)

		// Registration and payments
		api.POST("/events/:id/register", g.Auth, h.Register)
		api.POST("/payments/verify", g.Auth, h.VerifyPayment)
		api.POST("/vip/checkout", g.Auth, h.VIPCheckout)

		// Enquiries and feedback
		api.POST("/events/:id/enquiries", g.Auth, h.SubmitEnquiry)
		api.DELETE("/events/:id/enquiries", g.Auth, h.DeleteEnquiry)
		api.PUT("/events/:id/enquiries/:index/reply", g.Auth, g.Creator, h.ReplyEnquiry)
		api.POST("/events/:id/feedback", g.Auth, h.SubmitFeedback)

		me := api.Group("/me", g.Auth)
		{
			me.GET("", h.Me)
			me.GET("/registrations", h.MyRegistrations)
			me.GET("/enquiries", h.MyEnquiries)
		}

		creator := api.Group("/creator", g.Auth, g.Creator)
		{
			creator.GET("/events", h.CreatorEvents)
			creator.GET("/stats", h.CreatorStats)
			creator.GET("/events/:id/registrations", h.EventRegistrations)
			creator.GET("/enquiries", h.CreatorEnquiries)
			creator.GET("/feedback", h.CreatorFeedback)
		}

		api.POST("/uploads/poster", g.Auth, g.Creator, h.UploadPoster)
		// профиль загружает фото до регистрации, поэтому без сессии
		api.POST("/uploads/photo", g.SignInLimit, h.UploadPhoto)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
