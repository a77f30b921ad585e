package models

import (
	"strings"

	"github.com/uchannel/uchannel-backend/internal/constants"
)

// Pure derivation rules for presentation defaults. They only apply when
// the corresponding input field is absent or empty; explicit values
// always win.

// DefaultCategoryColor returns the color for a category with no explicit
// color. Unknown categories fall back to the meditation color.
func DefaultCategoryColor(category string) string {
	switch category {
	case constants.CategoryDeepWork:
		return constants.ColorWork
	case constants.CategorySocial:
		return constants.ColorSocial
	case constants.CategoryReview:
		return constants.ColorReview
	case constants.CategoryHighPrio:
		return constants.ColorHighPriority
	default:
		return constants.ColorMeditation
	}
}

// DefaultIconName returns the icon for a category with no explicit icon.
// The high-priority category has no dedicated icon and falls through to
// the meditation icon.
func DefaultIconName(category string) string {
	switch category {
	case constants.CategoryMeditation:
		return constants.IconMeditation
	case constants.CategoryDeepWork:
		return constants.IconWork
	case constants.CategorySocial:
		return constants.IconSocial
	case constants.CategoryReview:
		return constants.IconReview
	default:
		return constants.IconMeditation
	}
}

// DeriveTag resolves the task tag. An explicit non-empty tag wins, then
// priority, then category keywords; anything else stays unset.
func DeriveTag(category, priority, explicit string) string {
	if explicit != "" {
		return explicit
	}

	if priority == constants.PriorityUrgent || priority == constants.PriorityImportant {
		return constants.TagHighPriority
	}

	switch {
	case strings.Contains(category, "冥想") || strings.Contains(category, "晨间"):
		return constants.TagMeditation
	case strings.Contains(category, "工作") || strings.Contains(category, "深度"):
		return constants.TagWork
	case strings.Contains(category, "社交"):
		return constants.TagSocial
	case strings.Contains(category, "回顾") || strings.Contains(category, "晚间"):
		return constants.TagReview
	}

	return ""
}

// ResolveDefaults applies all three rules at once, honoring explicit
// overrides for color, icon and tag.
func ResolveDefaults(category, priority, color, icon, tag string) (string, string, string) {
	if color == "" {
		color = DefaultCategoryColor(category)
	}
	if icon == "" {
		icon = DefaultIconName(category)
	}
	return color, icon, DeriveTag(category, priority, tag)
}
