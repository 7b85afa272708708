// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging, CORS). AppConfig is everything specific to this application:
// database connection strings, payment gateway keys, image host
// credentials, SMTP settings and site identity.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Bearer-token auth
	JWTSecret string // Secret key for signing bearer tokens (must be strong in production)

	// Payment gateway (Razorpay)
	RazorpayKeyID     string // Public key id, embedded in the checkout
	RazorpayKeySecret string // Shared secret; signs orders and verifies callbacks

	// Image host (Cloudinary)
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@sevahub.org)
	MailFromName string // From display name

	// Site identity
	SiteName string // Used in receipts and newsletter headers
	BaseURL  string // e.g., "https://sevahub.org" or "http://localhost:3000"
}
