// Package seed provides the fixed dataset state starts from. There is no
// persistence: every process begins here and everything created at runtime is
// lost on restart.
package seed

import (
	"time"

	"github.com/example/storefront/pkg/models"
)

func ptr[T any](v T) *T { return &v }

// Initial builds the seed aggregate: six catalog products, two orders
// (newest first), two demo accounts, three hero slides and one product
// request. Discount deadlines are relative to the current clock so the
// countdown demo has something to count.
func Initial() models.State {
	now := time.Now()
	products := Products(now)

	users := []models.User{
		{
			ID:       "USR-1",
			Name:     "Rohan Ahmed",
			Email:    "rohan@example.com",
			Phone:    "01712345678",
			Address:  "Dhaka, Bangladesh",
			Password: "rohan123",
		},
		{
			ID:       "USR-2",
			Name:     "Farah Islam",
			Email:    "farah@example.com",
			Phone:    "01812345678",
			Address:  "Chittagong, Bangladesh",
			Password: "farah123",
		},
	}

	orders := []models.Order{
		{
			ID:     "ORD-12346",
			UserID: "USR-2",
			Customer: models.Customer{
				Name:    "Farah Islam",
				Email:   "farah@example.com",
				Phone:   "01812345678",
				Address: "Chittagong, Bangladesh",
			},
			Items:         []models.CartItem{{Product: products[1], Quantity: 1}},
			Total:         120.00,
			PaymentMethod: models.PaymentNagad,
			TransactionID: "NG456ABC",
			Status:        models.StatusProcessing,
			Date:          now.AddDate(0, 0, -2),
		},
		{
			ID:     "ORD-12345",
			UserID: "USR-1",
			Customer: models.Customer{
				Name:    "Rohan Ahmed",
				Email:   "rohan@example.com",
				Phone:   "01712345678",
				Address: "Dhaka, Bangladesh",
			},
			Items: []models.CartItem{
				{Product: products[0], Quantity: 1},
				{Product: products[3], Quantity: 2},
			},
			Total:         29.99 + 50*2,
			PaymentMethod: models.PaymentBkash,
			TransactionID: "BK123XYZ",
			Status:        models.StatusDelivered,
			Date:          now.AddDate(0, 0, -5),
		},
	}

	slides := []models.HeroSlide{
		{
			ID:       "SLD-1",
			ImageURL: "https://picsum.photos/seed/hero1/1600/600",
			Title:    "Premium Digital Goods",
			Subtitle: "Subscriptions, software and graphics at unbeatable prices",
			Link:     "/shop",
		},
		{
			ID:       "SLD-2",
			ImageURL: "https://picsum.photos/seed/hero2/1600/600",
			Title:    "Flash Sale",
			Subtitle: "Up to 40% off featured bundles while the clock runs",
			Link:     "/shop?tag=Sale",
		},
		{
			ID:       "SLD-3",
			ImageURL: "https://picsum.photos/seed/hero3/1600/600",
			Title:    "Gift Cards",
			Subtitle: "The perfect present for any occasion",
			Link:     "/product/PRD-4",
		},
	}

	requests := []models.ProductRequest{
		{
			ID:      "REQ-1",
			Name:    "Tanvir Hasan",
			Email:   "tanvir@example.com",
			Message: "Do you plan to stock music production plugin bundles?",
			Date:    now.AddDate(0, 0, -1),
		},
	}

	return models.State{
		Products:   products,
		Cart:       []models.CartItem{},
		Orders:     orders,
		HeroSlides: slides,
		Users:      users,
		Requests:   requests,
	}
}

// Products is the seed catalog. Exposed separately so tests can build carts
// against known records.
func Products(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:              "PRD-1",
			Name:            "Premium Graphics Bundle",
			Description:     "A massive collection of over 10,000 premium graphics resources, including vectors, icons, and templates.",
			Price:           49.99,
			DiscountPrice:   ptr(29.99),
			DiscountEndDate: ptr(now.Add(5 * 24 * time.Hour)),
			Images:          []string{"https://picsum.photos/seed/gfx1/800/600", "https://picsum.photos/seed/gfx2/800/600"},
			Category:        "Graphics Resources",
			Tags:            []string{"Graphics Tools", "VIP", "Sale"},
			IsFeatured:      true,
			IsLive:          true,
			Stock:           100,
			DigitalFile:     "bundles/premium-graphics.zip",
		},
		{
			ID:          "PRD-2",
			Name:        "Streaming Service 1-Year Subscription",
			Description: "Enjoy unlimited access to thousands of movies and TV shows with this 1-year subscription.",
			Price:       120.00,
			Images:      []string{"https://picsum.photos/seed/stream1/800/600", "https://picsum.photos/seed/stream2/800/600"},
			Category:    "Subscription",
			Tags:        []string{"Subscription", "Entertainment"},
			IsFeatured:  true,
			IsLive:      true,
			Stock:       50,
		},
		{
			ID:              "PRD-3",
			Name:            "Ultimate Developer Software Pack",
			Description:     "A suite of essential software for developers, including IDEs, testing tools, and project management applications.",
			Price:           250.00,
			DiscountPrice:   ptr(199.99),
			DiscountEndDate: ptr(now.Add(3 * 24 * time.Hour)),
			Images:          []string{"https://picsum.photos/seed/dev1/800/600"},
			Category:        "Software",
			Tags:            []string{"Software", "Development", "VIP"},
			IsFeatured:      false,
			IsLive:          true,
			Stock:           30,
			DigitalFile:     "bundles/dev-pack.zip",
		},
		{
			ID:          "PRD-4",
			Name:        "$50 Universal Gift Card",
			Description: "The perfect gift for any occasion. This gift card can be redeemed for any product on our site.",
			Price:       50.00,
			Images:      []string{"https://picsum.photos/seed/gift1/800/600"},
			Category:    "Gift Card",
			Tags:        []string{"Gift Card", "New"},
			IsFeatured:  true,
			IsLive:      true,
			Stock:       200,
		},
		{
			ID:          "PRD-5",
			Name:        "Educational Combo Pack",
			Description: "Access to over 200 online courses on various subjects, from programming to digital marketing.",
			Price:       99.99,
			Images:      []string{"https://picsum.photos/seed/edu1/800/600", "https://picsum.photos/seed/edu2/800/600"},
			Category:    "Education",
			Tags:        []string{"Educational Combo", "Learning"},
			IsFeatured:  false,
			IsLive:      true,
			Stock:       100,
		},
		{
			ID:          "PRD-6",
			Name:        "Pro Video Editing Software",
			Description: "Industry-standard video editing software with advanced features like 4K support, motion tracking, and color grading.",
			Price:       299.00,
			Images:      []string{"https://picsum.photos/seed/video1/800/600"},
			Category:    "Software",
			Tags:        []string{"Software", "Video Editing"},
			IsFeatured:  true,
			IsLive:      true,
			Stock:       45,
		},
	}
}
