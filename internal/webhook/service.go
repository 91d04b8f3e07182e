package webhook

import (
	"context"

	"go.uber.org/zap"

	"github.com/adforgehq/adforge/internal/dedup"
	"github.com/adforgehq/adforge/internal/domain"
	"github.com/adforgehq/adforge/internal/repository"
)

// MergeResult reports what a workflow reply contributed to the datastore.
// Created=false with a non-nil entity means a structurally equal record
// already existed and was reused.
type MergeResult struct {
	Product        *domain.Product `json:"product,omitempty"`
	ProductCreated bool            `json:"productCreated"`
	Avatar         *domain.Avatar  `json:"avatar,omitempty"`
	AvatarCreated  bool            `json:"avatarCreated"`
}

// Service drives the generation workflow and merges its reply into the
// repositories.
type Service struct {
	client   *Client
	products repository.ProductRepository
	avatars  repository.AvatarRepository
}

func NewService(client *Client, products repository.ProductRepository, avatars repository.AvatarRepository) *Service {
	return &Service{client: client, products: products, avatars: avatars}
}

// GenerateAndMerge calls the workflow and hands any returned product/avatar
// payloads to the repositories. An AI-inferred avatar arriving without a
// productId is attached to the product from the same reply when one exists.
func (s *Service) GenerateAndMerge(ctx context.Context, req Request) (*MergeResult, error) {
	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{}

	if resp.Product != nil {
		candidate, err := DecodeProduct(resp.Product)
		if err != nil {
			return nil, err
		}
		result.ProductCreated = s.products.Create(candidate)
		if merged := s.lookupProduct(candidate); merged != nil {
			result.Product = merged
		}
		if !result.ProductCreated {
			zap.S().Infof("webhook product %q already exists, reusing", candidate.Name)
		}
	}

	if resp.Avatar != nil {
		candidate, err := DecodeAvatar(resp.Avatar)
		if err != nil {
			return nil, err
		}
		if candidate.ProductID == "" && result.Product != nil {
			candidate.ProductID = result.Product.ID
		}
		result.AvatarCreated = s.avatars.Create(candidate)
		if merged := dedup.FindDuplicateAvatar(candidate, s.avatars.List()); merged != nil {
			result.Avatar = merged
		}
		if !result.AvatarCreated {
			zap.S().Infof("webhook avatar %q already exists, reusing", candidate.Name)
		}
	}

	return result, nil
}

// lookupProduct finds the stored record matching the candidate, whether it
// was just inserted or suppressed as a duplicate of an existing one.
func (s *Service) lookupProduct(candidate domain.Product) *domain.Product {
	return dedup.FindDuplicateProduct(candidate, s.products.List())
}
