// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountfeature "github.com/sevasetu/sevahub/internal/app/features/account"
	contactfeature "github.com/sevasetu/sevahub/internal/app/features/contact"
	donationsfeature "github.com/sevasetu/sevahub/internal/app/features/donations"
	galleryfeature "github.com/sevasetu/sevahub/internal/app/features/gallery"
	healthfeature "github.com/sevasetu/sevahub/internal/app/features/health"
	newsletterfeature "github.com/sevasetu/sevahub/internal/app/features/newsletter"
	paymentfeature "github.com/sevasetu/sevahub/internal/app/features/payment"
	settingsfeature "github.com/sevasetu/sevahub/internal/app/features/settings"
	usersfeature "github.com/sevasetu/sevahub/internal/app/features/users"
	volunteersfeature "github.com/sevasetu/sevahub/internal/app/features/volunteers"
	worksfeature "github.com/sevasetu/sevahub/internal/app/features/works"

	contactstore "github.com/sevasetu/sevahub/internal/app/store/contacts"
	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	gallerystore "github.com/sevasetu/sevahub/internal/app/store/gallery"
	newsletterstore "github.com/sevasetu/sevahub/internal/app/store/newsletters"
	settingsstore "github.com/sevasetu/sevahub/internal/app/store/settings"
	subscriberstore "github.com/sevasetu/sevahub/internal/app/store/subscribers"
	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	volunteerstore "github.com/sevasetu/sevahub/internal/app/store/volunteers"
	workstore "github.com/sevasetu/sevahub/internal/app/store/works"

	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/sevasetu/sevahub/internal/app/system/gateway"
	"github.com/sevasetu/sevahub/internal/app/system/imagehost"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. SevaHub builds the shared service
// clients (payment gateway, image host, mailer), wires the per-collection
// stores into feature handlers, and mounts every feature under its base
// path. The whole API is JSON; bearer-token auth is loaded globally so any
// handler can ask for the current user.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// Auth manager: validates bearer tokens, enforces roles.
	authMgr := auth.NewManager(appCfg.JWTSecret, logger)

	// Shared service clients.
	gw := gateway.New(appCfg.RazorpayKeyID, appCfg.RazorpayKeySecret, logger)

	images, err := imagehost.New(appCfg.CloudinaryCloudName, appCfg.CloudinaryAPIKey, appCfg.CloudinaryAPISecret, logger)
	if err != nil {
		logger.Error("image host init failed", zap.Error(err))
		return nil, err
	}

	mail := mailer.New(
		appCfg.MailSMTPHost, appCfg.MailSMTPPort,
		appCfg.MailSMTPUser, appCfg.MailSMTPPass,
		appCfg.MailFrom, appCfg.MailFromName,
		logger,
	)

	// Stores.
	donations := donationstore.New(db)
	users := userstore.New(db)
	subscribers := subscriberstore.New(db)
	history := newsletterstore.New(db)
	contacts := contactstore.New(db)
	volunteers := volunteerstore.New(db)
	works := workstore.New(db)
	galleryItems := gallerystore.New(db)
	siteSettings := settingsstore.New(db)

	r := chi.NewRouter()

	// Global auth middleware: loads the bearer-token user into context.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(authMgr.LoadUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Accounts and sign-in
	accountHandler := accountfeature.NewHandler(users, donations, authMgr, logger)
	r.Mount("/auth", accountfeature.Routes(accountHandler, authMgr))

	// Payment flow
	paymentHandler := paymentfeature.NewHandler(gw, appCfg.RazorpayKeyID, appCfg.RazorpayKeySecret,
		donations, mail, appCfg.SiteName, logger)
	r.Mount("/payment", paymentfeature.Routes(paymentHandler))

	// Donation records
	donationsHandler := donationsfeature.NewHandler(donations, images, logger)
	r.Mount("/donations", donationsfeature.Routes(donationsHandler, authMgr))

	// Newsletter
	newsletterHandler := newsletterfeature.NewHandler(subscribers, history, mail, appCfg.SiteName, logger)
	r.Mount("/newsletter", newsletterfeature.Routes(newsletterHandler, authMgr))

	// Contact form
	contactHandler := contactfeature.NewHandler(contacts, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler, authMgr))

	// Volunteer applications
	volunteersHandler := volunteersfeature.NewHandler(volunteers, logger)
	r.Mount("/volunteers", volunteersfeature.Routes(volunteersHandler, authMgr))

	// Works (projects and write-ups)
	worksHandler := worksfeature.NewHandler(works, logger)
	r.Mount("/works", worksfeature.Routes(worksHandler, authMgr))

	// Gallery
	galleryHandler := galleryfeature.NewHandler(galleryItems, images, logger)
	r.Mount("/gallery", galleryfeature.Routes(galleryHandler, authMgr))

	// Site settings
	settingsHandler := settingsfeature.NewHandler(siteSettings, logger)
	r.Mount("/settings", settingsfeature.Routes(settingsHandler, authMgr))

	// User management (admin)
	usersHandler := usersfeature.NewHandler(users, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, authMgr))

	return r, nil
}
