package store

import (
	"time"

	"github.com/example/storefront/pkg/models"
)

// Transition maps (state, action) to the next state. It is total: it never
// fails, and a nil or unrecognized action returns the input unchanged. The
// input state is never mutated; every affected collection is rebuilt, so
// snapshots held by readers stay consistent.
//
// Transition performs no validation. Credential checks, email uniqueness,
// quantity bounds and the like are the caller's contract.
func Transition(state models.State, action Action) models.State {
	switch a := action.(type) {
	case AddToCart:
		return addToCart(state, a.Product)

	case RemoveFromCart:
		cart := make([]models.CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.Product.ID != a.ProductID {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case UpdateQuantity:
		cart := make([]models.CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.Product.ID == a.ProductID {
				item.Quantity = a.Quantity
			}
			if item.Quantity > 0 {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case ClearCart:
		state.Cart = []models.CartItem{}
		return state

	case AddOrder:
		state.Orders = prepend(a.Order, state.Orders)
		return state

	case UpdateOrderStatus:
		orders := make([]models.Order, len(state.Orders))
		for i, order := range state.Orders {
			if order.ID == a.OrderID {
				order.Status = a.Status
			}
			orders[i] = order
		}
		state.Orders = orders
		return state

	case AddProduct:
		state.Products = prepend(a.Product, state.Products)
		return state

	case UpdateProduct:
		products := make([]models.Product, len(state.Products))
		for i, product := range state.Products {
			if product.ID == a.Product.ID {
				product = a.Product
			}
			products[i] = product
		}
		state.Products = products
		return state

	case ToggleProductStatus:
		products := make([]models.Product, len(state.Products))
		for i, product := range state.Products {
			if product.ID == a.ProductID {
				product.IsLive = !product.IsLive
			}
			products[i] = product
		}
		state.Products = products
		return state

	case AddHeroSlide:
		slide := a.Slide
		slide.ID = models.NewSlideID()
		slides := make([]models.HeroSlide, 0, len(state.HeroSlides)+1)
		slides = append(slides, state.HeroSlides...)
		state.HeroSlides = append(slides, slide)
		return state

	case DeleteHeroSlide:
		slides := make([]models.HeroSlide, 0, len(state.HeroSlides))
		for _, slide := range state.HeroSlides {
			if slide.ID != a.SlideID {
				slides = append(slides, slide)
			}
		}
		state.HeroSlides = slides
		return state

	case RegisterUser:
		user := a.User
		user.ID = models.NewUserID()
		users := make([]models.User, 0, len(state.Users)+1)
		users = append(users, state.Users...)
		state.Users = append(users, user)
		state.CurrentUser = &user
		state.Authenticated = true
		return state

	case SetCurrentUser:
		state.CurrentUser = a.User
		state.Authenticated = a.User != nil
		return state

	case Logout:
		state.CurrentUser = nil
		state.Authenticated = false
		return state

	case SetAdminAuthenticated:
		state.AdminAuthenticated = a.Authenticated
		return state

	case AddProductRequest:
		request := a.Request
		request.ID = models.NewRequestID()
		request.Date = time.Now()
		state.Requests = prepend(request, state.Requests)
		return state

	default:
		return state
	}
}

func addToCart(state models.State, product models.Product) models.State {
	cart := make([]models.CartItem, len(state.Cart))
	found := false
	for i, item := range state.Cart {
		if item.Product.ID == product.ID {
			item.Quantity++
			found = true
		}
		cart[i] = item
	}
	if !found {
		cart = append(cart, models.CartItem{Product: product, Quantity: 1})
	}
	state.Cart = cart
	return state
}

func prepend[T any](head T, rest []T) []T {
	out := make([]T, 0, len(rest)+1)
	out = append(out, head)
	return append(out, rest...)
}
