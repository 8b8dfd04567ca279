// Package selection tracks which record identifiers a user has chosen
// and assembles the submission payload. It is the client-side half of
// the submit flow: selections survive search refreshes, so a selected
// record stays selected even when the current working set no longer
// shows it.
package selection

import (
	"github.com/blogem/export-portal/models"
)

// idSet is an order-preserving set of identifiers. Membership is
// O(1); order is first-selection order.
type idSet[K comparable] struct {
	order  []K
	member map[K]struct{}
}

func newIDSet[K comparable]() idSet[K] {
	return idSet[K]{member: make(map[K]struct{})}
}

// toggle flips membership of id.
func (s *idSet[K]) toggle(id K) {
	if _, ok := s.member[id]; ok {
		delete(s.member, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}

	s.member[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *idSet[K]) ids() []K {
	out := make([]K, len(s.order))
	copy(out, s.order)
	return out
}

// Session holds the selection state for one interactive session.
type Session struct {
	products   idSet[int]
	categories idSet[string]
}

// NewSession creates an empty selection session
func NewSession() *Session {
	return &Session{
		products:   newIDSet[int](),
		categories: newIDSet[string](),
	}
}

// ToggleProduct flips selection of the given product id
func (s *Session) ToggleProduct(id int) {
	s.products.toggle(id)
}

// ToggleCategory flips selection of the given category id
func (s *Session) ToggleCategory(id string) {
	s.categories.toggle(id)
}

// SelectedProductIDs returns the selected product ids in selection order
func (s *Session) SelectedProductIDs() []int {
	return s.products.ids()
}

// SelectedCategoryIDs returns the selected category ids in selection order
func (s *Session) SelectedCategoryIDs() []string {
	return s.categories.ids()
}

// TotalSelected returns the combined size of both selection sets
func (s *Session) TotalSelected() int {
	return len(s.products.order) + len(s.categories.order)
}

// BuildPayload resolves the selected ids against the currently loaded
// collections and assembles a submission request. Ids that no longer
// resolve (the working set moved on since they were selected) are
// skipped; TotalCount still counts every selected id, resolved or not.
func (s *Session) BuildPayload(productsByID map[int]models.Product, categoriesByID map[string]models.Category) models.SubmissionRequest {
	selectedProducts := []models.Product{}
	for _, id := range s.products.order {
		if p, ok := productsByID[id]; ok {
			selectedProducts = append(selectedProducts, p)
		}
	}

	selectedCategories := []models.Category{}
	for _, id := range s.categories.order {
		if c, ok := categoriesByID[id]; ok {
			selectedCategories = append(selectedCategories, c)
		}
	}

	return models.SubmissionRequest{
		SelectedProducts:   selectedProducts,
		SelectedCategories: selectedCategories,
		TotalCount:         s.TotalSelected(),
	}
}

// IndexProducts builds the id lookup BuildPayload expects
func IndexProducts(products []models.Product) map[int]models.Product {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

// IndexCategories builds the id lookup BuildPayload expects
func IndexCategories(categories []models.Category) map[string]models.Category {
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID
}
