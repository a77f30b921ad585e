package constants

// DefaultUserID scopes all task rows in this single-tenant deployment.
// Handlers pass it explicitly into the service layer.
const DefaultUserID = "default-user"

// Well-known categories. Free-form values are accepted; these drive
// default derivation and the fixed stat buckets.
const (
	CategoryMeditation = "晨间冥想"
	CategoryDeepWork   = "深度工作"
	CategorySocial     = "社交"
	CategoryReview     = "晚间回顾"
	CategoryHighPrio   = "高优先级"
)

// Well-known priorities, matched by exact label equality.
const (
	PriorityUrgent    = "紧急"
	PriorityImportant = "重要"
	PriorityNormal    = "普通"
)

// Default category colors.
const (
	ColorMeditation   = "#9DC695"
	ColorWork         = "#5A8A83"
	ColorSocial       = "#BFC9C2"
	ColorReview       = "#D48C70"
	ColorHighPriority = "#D6A5A5"
)

// Default icon names.
const (
	IconMeditation = "meditation"
	IconWork       = "auto_awesome"
	IconSocial     = "silverware-fork-knife"
	IconReview     = "note-edit-outline"
)

// Auto-derived tags.
const (
	TagHighPriority = "highPriority"
	TagMeditation   = "meditation"
	TagWork         = "work"
	TagSocial       = "social"
	TagReview       = "review"
)

// Breakdown policy: every generated sub-task uses this template, the
// count depends only on the description length.
const (
	BreakdownShortCount    = 2
	BreakdownLongCount     = 3
	BreakdownLongThreshold = 50
	BreakdownStartTime     = "09:00"
	BreakdownEndTime       = "10:00"
)

// DateLayout is the only accepted task_date format. Zero-padded so that
// lexicographic comparison on the column equals chronological order.
const DateLayout = "2006-01-02"

// HeatmapDefaultDays is the window used when the heatmap query omits days.
const HeatmapDefaultDays = 28
