// Package catalog exposes the static app-feature price list used by the
// pricing calculator and the AI prompt builders. The tables are fixed at
// compile time and read-only at runtime.
package catalog

import (
	"strings"

	"aviniti_tools/internal/domain/entities"
)

// categories groups the catalog for browsing; NameKey is an i18n key and Icon
// a lucide icon name resolved on the client.
var categories = []entities.FeatureCategory{
	{ID: "auth", NameKey: "categories.auth", Icon: "Shield"},
	{ID: "profile", NameKey: "categories.profile", Icon: "User"},
	{ID: "navigation", NameKey: "categories.navigation", Icon: "Layout"},
	{ID: "content", NameKey: "categories.content", Icon: "Image"},
	{ID: "communication", NameKey: "categories.communication", Icon: "MessageSquare"},
	{ID: "notifications", NameKey: "categories.notifications", Icon: "Bell"},
	{ID: "payments", NameKey: "categories.payments", Icon: "CreditCard"},
	{ID: "ecommerce", NameKey: "categories.ecommerce", Icon: "ShoppingCart"},
	{ID: "booking", NameKey: "categories.booking", Icon: "Calendar"},
	{ID: "maps", NameKey: "categories.maps", Icon: "MapPin"},
	{ID: "social", NameKey: "categories.social", Icon: "Users"},
	{ID: "admin", NameKey: "categories.admin", Icon: "Settings"},
	{ID: "analytics", NameKey: "categories.analytics", Icon: "BarChart3"},
	{ID: "security", NameKey: "categories.security", Icon: "Lock"},
	{ID: "localization", NameKey: "categories.localization", Icon: "Globe"},
	{ID: "ai", NameKey: "categories.ai", Icon: "Brain"},
	{ID: "backend", NameKey: "categories.backend", Icon: "Server"},
	{ID: "testing", NameKey: "categories.testing", Icon: "TestTube"},
	{ID: "deployment", NameKey: "categories.deployment", Icon: "Rocket"},
	{ID: "integrations", NameKey: "categories.integrations", Icon: "Plug"},
	{ID: "offline", NameKey: "categories.offline", Icon: "WifiOff"},
	{ID: "misc", NameKey: "categories.misc", Icon: "Sparkles"},
}

var featuresByID = buildIndex()

func buildIndex() map[string]*entities.CatalogFeature {
	idx := make(map[string]*entities.CatalogFeature, len(features))
	for i := range features {
		idx[features[i].ID] = &features[i]
	}
	return idx
}

// GetFeatureByID resolves a catalog feature. Returns nil for unknown ids;
// callers must treat that as an expected, non-fatal case.
func GetFeatureByID(id string) *entities.CatalogFeature {
	return featuresByID[id]
}

// Features returns the full catalog in declaration order.
func Features() []entities.CatalogFeature {
	out := make([]entities.CatalogFeature, len(features))
	copy(out, features)
	return out
}

// Categories returns the category list in declaration order.
func Categories() []entities.FeatureCategory {
	out := make([]entities.FeatureCategory, len(categories))
	copy(out, categories)
	return out
}

// FeaturesByCategory returns all features in a category, in catalog order.
func FeaturesByCategory(categoryID string) []entities.CatalogFeature {
	var out []entities.CatalogFeature
	for _, f := range features {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	return out
}

// CategoryByID resolves a category. Returns nil for unknown ids.
func CategoryByID(id string) *entities.FeatureCategory {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}

// BuildCompressedCatalog serializes the whole catalog as "featureId|categoryId"
// lines (~4KB) for inclusion in AI prompts. Token-budget concern, not business
// logic.
func BuildCompressedCatalog() string {
	var b strings.Builder
	for i, f := range features {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.ID)
		b.WriteByte('|')
		b.WriteString(f.CategoryID)
	}
	return b.String()
}
