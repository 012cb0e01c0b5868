package store

import (
	"sort"
	"strings"
	"time"

	"github.com/example/storefront/pkg/models"
)

// Derived views are pure functions over a state snapshot (and, for the
// countdown, the clock). They are recomputed on demand, never cached, so they
// cannot go stale relative to the container.

// CartCount is the total number of units across all cart lines.
func CartCount(state models.State) int {
	count := 0
	for _, item := range state.Cart {
		count += item.Quantity
	}
	return count
}

// EffectivePrice is the discount price when one is set, the list price
// otherwise.
func EffectivePrice(product models.Product) float64 {
	if product.DiscountPrice != nil {
		return *product.DiscountPrice
	}
	return product.Price
}

// CartSubtotal sums effective price times quantity over the cart.
func CartSubtotal(state models.State) float64 {
	total := 0.0
	for _, item := range state.Cart {
		total += EffectivePrice(item.Product) * float64(item.Quantity)
	}
	return total
}

// FeaturedLive returns products that are both featured and live, in catalog
// order.
func FeaturedLive(state models.State) []models.Product {
	out := make([]models.Product, 0)
	for _, product := range state.Products {
		if product.IsFeatured && product.IsLive {
			out = append(out, product)
		}
	}
	return out
}

// LiveProducts returns the storefront-visible subset of the catalog.
func LiveProducts(state models.State) []models.Product {
	out := make([]models.Product, 0)
	for _, product := range state.Products {
		if product.IsLive {
			out = append(out, product)
		}
	}
	return out
}

// FilterProducts applies the shop-page filters over live products: free-text
// match on name and tags, exact category ("" or "All" disables), and a
// maximum effective price (<= 0 disables).
func FilterProducts(state models.State, query, category string, maxPrice float64) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Product, 0)
	for _, product := range state.Products {
		if !product.IsLive {
			continue
		}
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		if category != "" && category != "All" && product.Category != category {
			continue
		}
		if maxPrice > 0 && EffectivePrice(product) > maxPrice {
			continue
		}
		out = append(out, product)
	}
	return out
}

func matchesQuery(product models.Product, query string) bool {
	if strings.Contains(strings.ToLower(product.Name), query) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// RelatedProducts returns up to limit live products sharing the category,
// excluding the product itself.
func RelatedProducts(state models.State, product models.Product, limit int) []models.Product {
	out := make([]models.Product, 0, limit)
	for _, candidate := range state.Products {
		if len(out) == limit {
			break
		}
		if candidate.IsLive && candidate.Category == product.Category && candidate.ID != product.ID {
			out = append(out, candidate)
		}
	}
	return out
}

// OrdersForUser returns the user's order history, newest first.
func OrdersForUser(state models.State, userID string) []models.Order {
	out := make([]models.Order, 0)
	for _, order := range state.Orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Categories returns distinct category values in first-seen catalog order.
func Categories(state models.State) []string {
	seen := make(map[string]bool, len(state.Products))
	out := make([]string, 0)
	for _, product := range state.Products {
		if !seen[product.Category] {
			seen[product.Category] = true
			out = append(out, product.Category)
		}
	}
	return out
}

// Countdown is the display state of a discount deadline. Once the deadline
// passes the countdown freezes at expired; the discount itself stays on the
// product record.
type Countdown struct {
	Remaining time.Duration
	Expired   bool
}

// DiscountCountdown reports the countdown for the product at the given
// instant. ok is false when the product has no discount deadline.
func DiscountCountdown(product models.Product, now time.Time) (Countdown, bool) {
	if product.DiscountEndDate == nil {
		return Countdown{}, false
	}
	remaining := product.DiscountEndDate.Sub(now)
	if remaining <= 0 {
		return Countdown{Expired: true}, true
	}
	return Countdown{Remaining: remaining}, true
}
