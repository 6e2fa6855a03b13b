package middlewares

import (
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/models"
	"github.com/tablebook/tablebook/utils"
)

const tenantContextKey = "tenant_restaurant"

// SubdomainTenant resolves the restaurant a request addresses via its
// subdomain (e.g. storea.example.com) and stores it on the context.
// API routes carry an explicit restaurantId and do not depend on it;
// tenant-scoped routes read it with TenantFromContext. An unknown or
// absent subdomain is not an error here — the route decides whether a
// tenant is required.
func SubdomainTenant(db *gorm.DB) gin.HandlerFunc {
	base := os.Getenv("BASE_DOMAIN")
	if base == "" {
		base = "localhost"
	}

	return func(c *gin.Context) {
		sub := subdomainOf(c.Request.Host, base)
		if sub == "" {
			c.Next()
			return
		}

		var restaurant models.Restaurant
		err := db.Where("subdomain = ?", strings.ToLower(sub)).First(&restaurant).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.ErrorLogger.Errorf("tenant lookup for %q: %v", sub, err)
			}
			c.Next()
			return
		}

		c.Set(tenantContextKey, &restaurant)
		c.Next()
	}
}

// TenantFromContext returns the restaurant resolved for this request,
// if any.
func TenantFromContext(c *gin.Context) (*models.Restaurant, bool) {
	v, ok := c.Get(tenantContextKey)
	if !ok {
		return nil, false
	}
	restaurant, ok := v.(*models.Restaurant)
	return restaurant, ok
}

// subdomainOf extracts the single label in front of the base domain,
// ignoring any port. "storea.localhost:8080" -> "storea";
// "localhost" and "other.example.com" -> "".
func subdomainOf(host, base string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if host == base {
		return ""
	}
	sub := strings.TrimSuffix(host, "."+base)
	if sub == host || sub == "" || strings.Contains(sub, ".") {
		return ""
	}
	return sub
}
