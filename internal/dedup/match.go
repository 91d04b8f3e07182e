package dedup

import "github.com/adforgehq/adforge/internal/domain"

// MatchResult reports the outcome of a core-field comparison, including which
// field names matched and which did not, for diagnostics and tests.
type MatchResult struct {
	Match      bool     `json:"match"`
	Matched    []string `json:"matched"`
	Mismatched []string `json:"mismatched"`
}

// CheckCoreFieldsMatch compares every core field of two avatars under
// normalization. ProductID is deliberately excluded: scoping is the caller's
// concern.
func CheckCoreFieldsMatch(a, b domain.Avatar) MatchResult {
	fields := []struct {
		name  string
		equal bool
	}{
		{"name", EqualStrings(a.Name, b.Name)},
		{"age", EqualLists(a.Age, b.Age)},
		{"gender", EqualStrings(a.Gender, b.Gender)},
		{"personality", EqualStrings(a.Personality, b.Personality)},
		{"interests", EqualLists(a.Interests, b.Interests)},
		{"background", EqualStrings(a.Background, b.Background)},
		{"goals", EqualStrings(a.Goals, b.Goals)},
		{"painPoints", EqualLists(a.PainPoints, b.PainPoints)},
		{"objections", EqualLists(a.Objections, b.Objections)},
		{"dreamOutcome", EqualLists(a.DreamOutcome, b.DreamOutcome)},
		{"preferences", EqualMaps(a.Preferences, b.Preferences)},
	}

	result := MatchResult{Match: true}
	for _, f := range fields {
		if f.equal {
			result.Matched = append(result.Matched, f.name)
		} else {
			result.Match = false
			result.Mismatched = append(result.Mismatched, f.name)
		}
	}
	return result
}

// FindDuplicateProduct returns the first product whose normalized name or
// normalized imageUrl matches the candidate's; either match alone suffices.
// Empty imageUrls never match each other.
func FindDuplicateProduct(candidate domain.Product, products []domain.Product) *domain.Product {
	candName := NormalizeString(candidate.Name)
	candImage := NormalizeString(candidate.ImageUrl)
	for i := range products {
		if NormalizeString(products[i].Name) == candName {
			return &products[i]
		}
		if candImage != "" && NormalizeString(products[i].ImageUrl) == candImage {
			return &products[i]
		}
	}
	return nil
}

// FindDuplicateAvatar returns the first avatar in the candidate's productId
// scope whose core fields all match. Avatars referencing a different product
// are never duplicates of each other, even with identical fields.
func FindDuplicateAvatar(candidate domain.Avatar, avatars []domain.Avatar) *domain.Avatar {
	for i := range avatars {
		if avatars[i].ProductID != candidate.ProductID {
			continue
		}
		if CheckCoreFieldsMatch(candidate, avatars[i]).Match {
			return &avatars[i]
		}
	}
	return nil
}
