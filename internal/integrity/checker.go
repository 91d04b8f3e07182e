package integrity

import (
	"strings"

	"go.uber.org/zap"

	"github.com/adforgehq/adforge/internal/dedup"
	"github.com/adforgehq/adforge/internal/domain"
	"github.com/adforgehq/adforge/internal/repository"
)

// Report holds the referential diagnostics over the two collections.
// A non-valid state is expected during normal operation (a product created
// before its avatar, an avatar auto-filled before its product) and only
// becomes a concern when it persists.
type Report struct {
	OrphanedAvatars        []domain.Avatar  `json:"orphanedAvatars"`
	ProductsWithoutAvatars []domain.Product `json:"productsWithoutAvatars"`
	IsValid                bool             `json:"isValid"`
}

// Checker performs advisory referential-integrity diagnostics and opt-in
// best-effort repair. It is read-only except for Repair, which goes through
// the avatar repository like every other writer.
type Checker struct {
	products repository.ProductRepository
	avatars  repository.AvatarRepository
}

func NewChecker(products repository.ProductRepository, avatars repository.AvatarRepository) *Checker {
	return &Checker{products: products, avatars: avatars}
}

// Validate computes orphaned avatars and unreferenced products in one pass.
// It never mutates anything and never raises integrity violations as errors.
func (c *Checker) Validate() Report {
	products := c.products.List()
	avatars := c.avatars.List()

	productIDs := make(map[string]struct{}, len(products))
	for _, p := range products {
		productIDs[p.ID] = struct{}{}
	}
	referenced := make(map[string]struct{}, len(avatars))

	report := Report{
		OrphanedAvatars:        []domain.Avatar{},
		ProductsWithoutAvatars: []domain.Product{},
	}
	for _, a := range avatars {
		if a.ProductID == "" {
			report.OrphanedAvatars = append(report.OrphanedAvatars, a)
			continue
		}
		if _, ok := productIDs[a.ProductID]; !ok {
			report.OrphanedAvatars = append(report.OrphanedAvatars, a)
			continue
		}
		referenced[a.ProductID] = struct{}{}
	}
	for _, p := range products {
		if _, ok := referenced[p.ID]; !ok {
			report.ProductsWithoutAvatars = append(report.ProductsWithoutAvatars, p)
		}
	}
	report.IsValid = len(report.OrphanedAvatars) == 0 && len(report.ProductsWithoutAvatars) == 0
	return report
}

// Repair reassigns every orphaned avatar to a product whose normalized name
// is a substring of the avatar's normalized name or vice versa. When no
// name-similarity match exists and at least one product does, the avatar is
// assigned to the first product as a last-resort fallback. This is a crude
// heuristic that can mis-associate personas, which is why it only ever runs
// on an explicit call, never implicitly on load.
func (c *Checker) Repair() {
	products := c.products.List()
	if len(products) == 0 {
		return
	}
	productIDs := make(map[string]struct{}, len(products))
	for _, p := range products {
		productIDs[p.ID] = struct{}{}
	}

	for _, a := range c.avatars.List() {
		if a.ProductID != "" {
			if _, ok := productIDs[a.ProductID]; ok {
				continue
			}
		}
		match := matchProductByName(a, products)
		if match == nil {
			match = &products[0]
			zap.S().Warnf("avatar %s has no name-similar product, falling back to %s", a.ID, match.ID)
		}
		a.ProductID = match.ID
		c.avatars.Update(a)
		zap.S().Infof("avatar %s reassigned to product %s", a.ID, match.ID)
	}
}

func matchProductByName(a domain.Avatar, products []domain.Product) *domain.Product {
	avatarName := dedup.NormalizeString(a.Name)
	for i := range products {
		productName := dedup.NormalizeString(products[i].Name)
		if productName == "" || avatarName == "" {
			continue
		}
		if strings.Contains(avatarName, productName) || strings.Contains(productName, avatarName) {
			return &products[i]
		}
	}
	return nil
}
