package catalog

import "aviniti_tools/internal/domain/entities"

// features holds the 243-entry feature price list, 22 categories, loaded from
// the official pricing spreadsheet. Prices are whole USD, timelines are
// business days.
var features = []entities.CatalogFeature{

	// 1. Authentication & User Management
	{ID: "auth-email-password", CategoryID: "auth", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "auth-social-google", CategoryID: "auth", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "auth-social-facebook", CategoryID: "auth", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "auth-social-apple", CategoryID: "auth", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "auth-social-twitter", CategoryID: "auth", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "auth-phone-otp", CategoryID: "auth", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "auth-biometric", CategoryID: "auth", Price: 450, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "auth-2fa", CategoryID: "auth", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "auth-magic-link", CategoryID: "auth", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "auth-multi-tenant", CategoryID: "auth", Price: 1200, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "auth-session-management", CategoryID: "auth", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "auth-account-deletion", CategoryID: "auth", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "auth-guest-access", CategoryID: "auth", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},

	// 2. User Profile & Settings
	{ID: "profile-basic", CategoryID: "profile", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "profile-extended-fields", CategoryID: "profile", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "profile-verification", CategoryID: "profile", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "profile-account-settings", CategoryID: "profile", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "profile-preferences", CategoryID: "profile", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "profile-dark-mode", CategoryID: "profile", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "profile-address-book", CategoryID: "profile", Price: 450, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "profile-onboarding", CategoryID: "profile", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},

	// 3. Navigation & UI Framework
	{ID: "nav-bottom-tabs", CategoryID: "navigation", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "nav-side-drawer", CategoryID: "navigation", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "nav-splash-screen", CategoryID: "navigation", Price: 200, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "nav-app-icon", CategoryID: "navigation", Price: 200, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "nav-search-filters", CategoryID: "navigation", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "nav-dashboard", CategoryID: "navigation", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "nav-pull-refresh", CategoryID: "navigation", Price: 150, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "nav-infinite-scroll", CategoryID: "navigation", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "nav-skeleton-loading", CategoryID: "navigation", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "nav-fab", CategoryID: "navigation", Price: 150, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "nav-deep-linking", CategoryID: "navigation", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},

	// 4. Content & Media
	{ID: "content-image-upload", CategoryID: "content", Price: 450, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "content-multi-image", CategoryID: "content", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "content-video-upload", CategoryID: "content", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "content-video-editing", CategoryID: "content", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "content-audio", CategoryID: "content", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "content-document-upload", CategoryID: "content", Price: 450, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "content-pdf-viewer", CategoryID: "content", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "content-rich-text", CategoryID: "content", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "content-image-gallery", CategoryID: "content", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "content-stories", CategoryID: "content", Price: 1500, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "content-qr-scanner", CategoryID: "content", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "content-qr-generator", CategoryID: "content", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "content-file-manager", CategoryID: "content", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},

	// 5. Communication & Messaging
	{ID: "comm-chat-1to1", CategoryID: "communication", Price: 1200, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "comm-group-chat", CategoryID: "communication", Price: 1500, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "comm-chat-media", CategoryID: "communication", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "comm-chat-reactions", CategoryID: "communication", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "comm-voice-call", CategoryID: "communication", Price: 2000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "comm-video-call", CategoryID: "communication", Price: 2500, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "comm-inbox", CategoryID: "communication", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "comm-contact-list", CategoryID: "communication", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "comm-chatbot", CategoryID: "communication", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "comm-email-transactional", CategoryID: "communication", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},

	// 6. Push Notifications
	{ID: "notif-basic-push", CategoryID: "notifications", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "notif-preferences", CategoryID: "notifications", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "notif-scheduled", CategoryID: "notifications", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "notif-rich", CategoryID: "notifications", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "notif-segmented", CategoryID: "notifications", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "notif-badge", CategoryID: "notifications", Price: 200, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "notif-silent", CategoryID: "notifications", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},

	// 7. Payments & Monetization
	{ID: "pay-stripe", CategoryID: "payments", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "pay-paypal", CategoryID: "payments", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "pay-apple-google", CategoryID: "payments", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "pay-iap", CategoryID: "payments", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "pay-subscriptions", CategoryID: "payments", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "pay-wallet", CategoryID: "payments", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "pay-promo-codes", CategoryID: "payments", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "pay-invoices", CategoryID: "payments", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "pay-multi-currency", CategoryID: "payments", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "pay-payouts", CategoryID: "payments", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "pay-tipping", CategoryID: "payments", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "pay-ads", CategoryID: "payments", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "pay-refunds", CategoryID: "payments", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},

	// 8. E-Commerce & Marketplace
	{ID: "ecom-product-listing", CategoryID: "ecommerce", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ecom-product-detail", CategoryID: "ecommerce", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "ecom-cart", CategoryID: "ecommerce", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "ecom-checkout", CategoryID: "ecommerce", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ecom-orders-user", CategoryID: "ecommerce", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "ecom-orders-admin", CategoryID: "ecommerce", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ecom-wishlist", CategoryID: "ecommerce", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "ecom-reviews", CategoryID: "ecommerce", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "ecom-inventory", CategoryID: "ecommerce", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ecom-shipping", CategoryID: "ecommerce", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ecom-vendor-dashboard", CategoryID: "ecommerce", Price: 1200, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "ecom-comparison", CategoryID: "ecommerce", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "ecom-barcode", CategoryID: "ecommerce", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},

	// 9. Booking & Appointments
	{ID: "booking-calendar", CategoryID: "booking", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "booking-appointment", CategoryID: "booking", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "booking-provider-scheduling", CategoryID: "booking", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "booking-modifications", CategoryID: "booking", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "booking-recurring", CategoryID: "booking", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "booking-waitlist", CategoryID: "booking", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "booking-calendar-sync", CategoryID: "booking", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "booking-reminders", CategoryID: "booking", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},

	// 10. Maps & Location
	{ID: "maps-view", CategoryID: "maps", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "maps-user-location", CategoryID: "maps", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "maps-search", CategoryID: "maps", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "maps-geofencing", CategoryID: "maps", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "maps-directions", CategoryID: "maps", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "maps-live-tracking", CategoryID: "maps", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "maps-store-locator", CategoryID: "maps", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "maps-heatmap", CategoryID: "maps", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "maps-nearby", CategoryID: "maps", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},

	// 11. Social & Community
	{ID: "social-feed", CategoryID: "social", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "social-post-creation", CategoryID: "social", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "social-likes", CategoryID: "social", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "social-comments", CategoryID: "social", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "social-share", CategoryID: "social", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "social-follow", CategoryID: "social", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "social-blocking", CategoryID: "social", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "social-hashtags", CategoryID: "social", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "social-groups", CategoryID: "social", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "social-events", CategoryID: "social", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "social-polls", CategoryID: "social", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "social-gamification", CategoryID: "social", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},

	// 12. Admin Panel / CMS
	{ID: "admin-dashboard", CategoryID: "admin", Price: 1500, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "admin-user-management", CategoryID: "admin", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "admin-content-management", CategoryID: "admin", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "admin-rbac", CategoryID: "admin", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "admin-analytics", CategoryID: "admin", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "admin-push-sender", CategoryID: "admin", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "admin-reports-export", CategoryID: "admin", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "admin-audit-log", CategoryID: "admin", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "admin-support-tickets", CategoryID: "admin", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "admin-cms-dynamic", CategoryID: "admin", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "admin-remote-config", CategoryID: "admin", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},

	// 13. Analytics & Tracking
	{ID: "analytics-firebase", CategoryID: "analytics", Price: 400, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "analytics-crash-reporting", CategoryID: "analytics", Price: 350, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "analytics-custom-events", CategoryID: "analytics", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "analytics-ab-testing", CategoryID: "analytics", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "analytics-behavior", CategoryID: "analytics", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "analytics-attribution", CategoryID: "analytics", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "analytics-performance", CategoryID: "analytics", Price: 400, TimelineDays: 2, Complexity: entities.ComplexityLow},

	// 14. Security & Compliance
	{ID: "security-ssl", CategoryID: "security", Price: 200, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "security-encryption", CategoryID: "security", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "security-gdpr", CategoryID: "security", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "security-legal-pages", CategoryID: "security", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "security-rate-limiting", CategoryID: "security", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "security-content-moderation", CategoryID: "security", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "security-e2ee", CategoryID: "security", Price: 1500, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "security-backup", CategoryID: "security", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "security-ip-blocking", CategoryID: "security", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "security-audit-trail", CategoryID: "security", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},

	// 15. Localization & Accessibility
	{ID: "l10n-multi-language", CategoryID: "localization", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "l10n-rtl", CategoryID: "localization", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "l10n-accessibility", CategoryID: "localization", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "l10n-dynamic-font", CategoryID: "localization", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "l10n-voiceover", CategoryID: "localization", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "l10n-auto-translation", CategoryID: "localization", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},

	// 16. AI & Smart Features
	{ID: "ai-chatbot", CategoryID: "ai", Price: 2400, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "ai-recommendations", CategoryID: "ai", Price: 3000, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "ai-image-recognition", CategoryID: "ai", Price: 2000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "ai-nlp", CategoryID: "ai", Price: 2400, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "ai-speech-to-text", CategoryID: "ai", Price: 1600, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ai-text-to-speech", CategoryID: "ai", Price: 1200, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "ai-content-generation", CategoryID: "ai", Price: 2000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "ai-smart-search", CategoryID: "ai", Price: 2000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "ai-facial-recognition", CategoryID: "ai", Price: 3000, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "ai-ocr", CategoryID: "ai", Price: 1600, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "ai-custom-model", CategoryID: "ai", Price: 12000, TimelineDays: 30, Complexity: entities.ComplexityHigh},
	{ID: "ai-custom-nlp", CategoryID: "ai", Price: 15000, TimelineDays: 35, Complexity: entities.ComplexityHigh},
	{ID: "ai-custom-vision", CategoryID: "ai", Price: 14000, TimelineDays: 30, Complexity: entities.ComplexityHigh},
	{ID: "ai-document-pipeline", CategoryID: "ai", Price: 10000, TimelineDays: 21, Complexity: entities.ComplexityHigh},
	{ID: "ai-predictive-analytics", CategoryID: "ai", Price: 12000, TimelineDays: 28, Complexity: entities.ComplexityHigh},
	{ID: "ai-recommendation-engine", CategoryID: "ai", Price: 10000, TimelineDays: 21, Complexity: entities.ComplexityHigh},
	{ID: "ai-conversational-agent", CategoryID: "ai", Price: 15000, TimelineDays: 35, Complexity: entities.ComplexityHigh},
	{ID: "ai-data-extraction", CategoryID: "ai", Price: 8000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "ai-sentiment-analysis", CategoryID: "ai", Price: 7000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "ai-anomaly-detection", CategoryID: "ai", Price: 10000, TimelineDays: 21, Complexity: entities.ComplexityHigh},
	{ID: "ai-image-generation", CategoryID: "ai", Price: 12000, TimelineDays: 28, Complexity: entities.ComplexityHigh},
	{ID: "ai-workflow-automation", CategoryID: "ai", Price: 18000, TimelineDays: 42, Complexity: entities.ComplexityHigh},
	{ID: "ai-pricing-optimization", CategoryID: "ai", Price: 10000, TimelineDays: 21, Complexity: entities.ComplexityHigh},
	{ID: "ai-voice-assistant", CategoryID: "ai", Price: 14000, TimelineDays: 30, Complexity: entities.ComplexityHigh},
	{ID: "ai-translation-model", CategoryID: "ai", Price: 8000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "ai-quality-control", CategoryID: "ai", Price: 15000, TimelineDays: 35, Complexity: entities.ComplexityHigh},
	{ID: "ai-knowledge-graph", CategoryID: "ai", Price: 12000, TimelineDays: 28, Complexity: entities.ComplexityHigh},
	{ID: "ai-rag-system", CategoryID: "ai", Price: 8000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "ai-model-monitoring", CategoryID: "ai", Price: 6000, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "ai-custom-api", CategoryID: "ai", Price: 5000, TimelineDays: 10, Complexity: entities.ComplexityMedium},

	// 17. Backend & Infrastructure
	{ID: "backend-rest-api", CategoryID: "backend", Price: 1500, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "backend-database", CategoryID: "backend", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "backend-cloud-hosting", CategoryID: "backend", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "backend-cdn", CategoryID: "backend", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "backend-rate-limiting", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-websocket", CategoryID: "backend", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "backend-background-jobs", CategoryID: "backend", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "backend-file-storage", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-email-service", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-sms-service", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-cicd", CategoryID: "backend", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "backend-staging", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-migrations", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-api-docs", CategoryID: "backend", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "backend-microservices", CategoryID: "backend", Price: 2000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "backend-serverless", CategoryID: "backend", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},

	// 18. Testing & QA
	{ID: "testing-unit", CategoryID: "testing", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "testing-integration", CategoryID: "testing", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "testing-ui-manual", CategoryID: "testing", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "testing-e2e", CategoryID: "testing", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "testing-performance", CategoryID: "testing", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "testing-security", CategoryID: "testing", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "testing-beta", CategoryID: "testing", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "testing-bug-tracking", CategoryID: "testing", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},

	// 19. Deployment & App Store
	{ID: "deploy-ios", CategoryID: "deployment", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "deploy-android", CategoryID: "deployment", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "deploy-aso", CategoryID: "deployment", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "deploy-ota-updates", CategoryID: "deployment", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "deploy-feature-flags", CategoryID: "deployment", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "deploy-versioning", CategoryID: "deployment", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "deploy-pwa", CategoryID: "deployment", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},

	// 20. Third-Party Integrations
	{ID: "integ-google-maps", CategoryID: "integrations", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "integ-firebase", CategoryID: "integrations", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "integ-twilio", CategoryID: "integrations", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "integ-sendgrid", CategoryID: "integrations", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "integ-algolia", CategoryID: "integrations", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "integ-stripe-connect", CategoryID: "integrations", Price: 1000, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "integ-social-sharing", CategoryID: "integrations", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "integ-calendar", CategoryID: "integrations", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "integ-crm", CategoryID: "integrations", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "integ-zapier", CategoryID: "integrations", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "integ-whatsapp", CategoryID: "integrations", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "integ-custom-api", CategoryID: "integrations", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},

	// 21. Offline & Performance
	{ID: "offline-basic", CategoryID: "offline", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "offline-sync", CategoryID: "offline", Price: 1200, TimelineDays: 7, Complexity: entities.ComplexityHigh},
	{ID: "offline-image-cache", CategoryID: "offline", Price: 300, TimelineDays: 2, Complexity: entities.ComplexityLow},
	{ID: "offline-optimization", CategoryID: "offline", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},
	{ID: "offline-background-sync", CategoryID: "offline", Price: 500, TimelineDays: 3, Complexity: entities.ComplexityMedium},

	// 22. Miscellaneous / Add-Ons
	{ID: "misc-animations", CategoryID: "misc", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "misc-haptic", CategoryID: "misc", Price: 200, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "misc-rating-prompt", CategoryID: "misc", Price: 200, TimelineDays: 1, Complexity: entities.ComplexityLow},
	{ID: "misc-referral", CategoryID: "misc", Price: 700, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "misc-loyalty", CategoryID: "misc", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "misc-multi-platform", CategoryID: "misc", Price: 600, TimelineDays: 4, Complexity: entities.ComplexityMedium},
	{ID: "misc-print", CategoryID: "misc", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "misc-ar", CategoryID: "misc", Price: 2000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "misc-bluetooth", CategoryID: "misc", Price: 1500, TimelineDays: 10, Complexity: entities.ComplexityHigh},
	{ID: "misc-nfc", CategoryID: "misc", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "misc-wearable", CategoryID: "misc", Price: 2000, TimelineDays: 14, Complexity: entities.ComplexityHigh},
	{ID: "misc-widget", CategoryID: "misc", Price: 800, TimelineDays: 5, Complexity: entities.ComplexityMedium},
	{ID: "misc-clipboard", CategoryID: "misc", Price: 400, TimelineDays: 3, Complexity: entities.ComplexityLow},
	{ID: "misc-custom-keyboard", CategoryID: "misc", Price: 1200, TimelineDays: 7, Complexity: entities.ComplexityHigh},
}
