package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func ok(c *ginext.Context) { c.Status(http.StatusOK) }

func (stubHandler) SignUp(c *ginext.Context)             { ok(c) }
func (stubHandler) SignIn(c *ginext.Context)             { ok(c) }
func (stubHandler) SignOut(c *ginext.Context)            { ok(c) }
func (stubHandler) Me(c *ginext.Context)                 { ok(c) }
func (stubHandler) MyRegistrations(c *ginext.Context)    { ok(c) }
func (stubHandler) MyEnquiries(c *ginext.Context)        { ok(c) }
func (stubHandler) ListEvents(c *ginext.Context)         { ok(c) }
func (stubHandler) GetEvent(c *ginext.Context)           { ok(c) }
func (stubHandler) CreateEvent(c *ginext.Context)        { ok(c) }
func (stubHandler) UpdateEvent(c *ginext.Context)        { ok(c) }
func (stubHandler) DeleteEvent(c *ginext.Context)        { ok(c) }
func (stubHandler) Eligibility(c *ginext.Context)        { ok(c) }
func (stubHandler) Register(c *ginext.Context)           { ok(c) }
func (stubHandler) SubmitEnquiry(c *ginext.Context)      { ok(c) }
func (stubHandler) DeleteEnquiry(c *ginext.Context)      { ok(c) }
func (stubHandler) ReplyEnquiry(c *ginext.Context)       { ok(c) }
func (stubHandler) SubmitFeedback(c *ginext.Context)     { ok(c) }
func (stubHandler) VerifyPayment(c *ginext.Context)      { ok(c) }
func (stubHandler) VIPCheckout(c *ginext.Context)        { ok(c) }
func (stubHandler) CreatorEvents(c *ginext.Context)      { ok(c) }
func (stubHandler) CreatorStats(c *ginext.Context)       { ok(c) }
func (stubHandler) EventRegistrations(c *ginext.Context) { ok(c) }
func (stubHandler) CreatorEnquiries(c *ginext.Context)   { ok(c) }
func (stubHandler) CreatorFeedback(c *ginext.Context)    { ok(c) }
func (stubHandler) UploadPoster(c *ginext.Context)       { ok(c) }
func (stubHandler) UploadPhoto(c *ginext.Context)        { ok(c) }

func deny(status int) ginext.HandlerFunc {
	return func(c *ginext.Context) { c.AbortWithStatus(status) }
}

func pass(c *ginext.Context) { c.Next() }

func serve(r http.Handler, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestInitRouter_Guards(t *testing.T) {
	r := InitRouter("test", stubHandler{}, Guards{
		Auth:         deny(http.StatusUnauthorized),
		OptionalAuth: pass,
		Creator:      pass,
		SignInLimit:  pass,
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/events"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/auth/signin"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/events"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/me"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/creator/feedback"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/events/x/register"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/creator/stats"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/uploads/photo"))
}

func TestInitRouter_CreatorOnly(t *testing.T) {
	r := InitRouter("test", stubHandler{}, Guards{
		Auth:         pass,
		OptionalAuth: pass,
		Creator:      deny(http.StatusForbidden),
		SignInLimit:  pass,
	})

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/api/events"))
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPut, "/api/events/x/enquiries/0/reply"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/events/x/enquiries"))
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/api/creator/stats"))
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/api/uploads/poster"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/uploads/photo"))
}

func TestInitRouter_PhotoUploadThrottled(t *testing.T) {
	r := InitRouter("test", stubHandler{}, Guards{
		Auth:         deny(http.StatusUnauthorized),
		OptionalAuth: pass,
		Creator:      deny(http.StatusForbidden),
		SignInLimit:  deny(http.StatusTooManyRequests),
	})

	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/uploads/photo"))
}

func TestInitRouter_HealthAndMetrics(t *testing.T) {
	r := InitRouter("test", stubHandler{}, Guards{Auth: pass, OptionalAuth: pass, Creator: pass, SignInLimit: pass})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics"))
}
