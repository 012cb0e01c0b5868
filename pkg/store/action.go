package store

import (
	"github.com/example/storefront/pkg/models"
)

// Action is a tagged request to mutate state, consumed exactly once by
// Transition. The set of actions is closed: the marker method keeps outside
// packages from adding kinds the transition switch does not know about.
type Action interface {
	isAction()
}

// AddToCart adds one unit of the product to the cart. The product is embedded
// as a snapshot; matching against existing lines is by product id.
type AddToCart struct {
	Product models.Product
}

// RemoveFromCart deletes the cart line for the given product id.
type RemoveFromCart struct {
	ProductID string
}

// UpdateQuantity sets the cart line's quantity. Zero or negative quantities
// delete the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// AddOrder prepends the order, keeping the list newest-first. The caller
// assigns the unique id and timestamp before dispatch.
type AddOrder struct {
	Order models.Order
}

// UpdateOrderStatus replaces the status of the order with the given id.
type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}

// AddProduct prepends the product to the catalog. The caller supplies a
// unique id.
type AddProduct struct {
	Product models.Product
}

// UpdateProduct replaces the product with the matching id wholesale.
type UpdateProduct struct {
	Product models.Product
}

// ToggleProductStatus flips the product's live flag.
type ToggleProductStatus struct {
	ProductID string
}

// AddHeroSlide appends the slide to the bottom of the rotation, assigning it
// a fresh id.
type AddHeroSlide struct {
	Slide models.HeroSlide
}

// DeleteHeroSlide removes the slide with the given id.
type DeleteHeroSlide struct {
	SlideID string
}

// RegisterUser appends the user with a fresh id, makes them the current user
// and marks the session authenticated. Email uniqueness is the caller's
// pre-check; the container appends duplicates without complaint.
type RegisterUser struct {
	User models.User
}

// SetCurrentUser replaces the current-user reference. The authenticated flag
// follows: true for a non-nil user, false for nil.
type SetCurrentUser struct {
	User *models.User
}

// Logout clears the current user and the customer authenticated flag. The
// admin flag is untouched.
type Logout struct{}

// SetAdminAuthenticated sets the admin flag directly.
type SetAdminAuthenticated struct {
	Authenticated bool
}

// AddProductRequest prepends the request with a fresh id and the current
// timestamp. Requests are append-only.
type AddProductRequest struct {
	Request models.ProductRequest
}

func (AddToCart) isAction()             {}
func (RemoveFromCart) isAction()        {}
func (UpdateQuantity) isAction()        {}
func (ClearCart) isAction()             {}
func (AddOrder) isAction()              {}
func (UpdateOrderStatus) isAction()     {}
func (AddProduct) isAction()            {}
func (UpdateProduct) isAction()         {}
func (ToggleProductStatus) isAction()   {}
func (AddHeroSlide) isAction()          {}
func (DeleteHeroSlide) isAction()       {}
func (RegisterUser) isAction()          {}
func (SetCurrentUser) isAction()        {}
func (Logout) isAction()                {}
func (SetAdminAuthenticated) isAction() {}
func (AddProductRequest) isAction()     {}
